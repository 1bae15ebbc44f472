package service

// QRCodeService generates QR codes for the public site
type QRCodeService interface {
	// GeneratePNG encodes content as a PNG QR code
	GeneratePNG(content string) ([]byte, error)

	// GenerateDataURI encodes content as a base64 PNG data URI for inline <img> tags
	GenerateDataURI(content string) (string, error)
}
