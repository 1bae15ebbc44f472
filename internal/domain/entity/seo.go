package entity

import (
	"time"

	"github.com/google/uuid"
)

// SeoSettings is the singleton record with site wide metadata and tracking IDs.
type SeoSettings struct {
	ID                 uuid.UUID `json:"id"`
	SiteName           string    `json:"siteName"`
	SiteDescription    string    `json:"siteDescription"`
	GoogleAnalyticsID  string    `json:"googleAnalyticsId"`
	GoogleTagManagerID string    `json:"googleTagManagerId"`
	FacebookPixelID    string    `json:"facebookPixelId"`
	GoogleVerification string    `json:"googleVerification"`
	BingVerification   string    `json:"bingVerification"`
	DefaultOgImage     string    `json:"defaultOgImage"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// DefaultSeoSettings is inserted the first time settings are requested.
func DefaultSeoSettings() *SeoSettings {
	return &SeoSettings{
		SiteName:        "WeBuyHouseCash.com.au",
		SiteDescription: "We buy houses for cash in Melbourne, Australia",
	}
}
