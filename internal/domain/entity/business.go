// Package entity contains the core business objects of the site.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BusinessHour is one day's opening window as entered in the admin.
type BusinessHour struct {
	Day      string `json:"day"`
	Opens    string `json:"opens"`
	Closes   string `json:"closes"`
	IsClosed bool   `json:"isClosed"`
}

// SocialProfile links the business to an external profile page.
type SocialProfile struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// BusinessInfo is the singleton record describing the business.
// It is created on the first admin write and updated in place afterwards.
type BusinessInfo struct {
	ID              uuid.UUID       `json:"id"`
	BusinessName    string          `json:"businessName"`
	LegalName       string          `json:"legalName"`
	Description     string          `json:"description"`
	Telephone       string          `json:"telephone"`
	Email           string          `json:"email"`
	Website         string          `json:"website"`
	StreetAddress   string          `json:"streetAddress"`
	City            string          `json:"city"`
	State           string          `json:"state"`
	PostalCode      string          `json:"postalCode"`
	Country         string          `json:"country"`
	Latitude        *float64        `json:"latitude"`
	Longitude       *float64        `json:"longitude"`
	PriceRange      string          `json:"priceRange"`
	Logo            string          `json:"logo"`
	Image           string          `json:"image"`
	FoundingDate    string          `json:"foundingDate"`
	PaymentAccepted string          `json:"paymentAccepted"`
	AreaServed      string          `json:"areaServed"`
	OpeningHours    OpeningHours    `json:"openingHours"`
	SocialProfiles  []SocialProfile `json:"socialProfiles"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// HasGeo reports whether both coordinates are present and non-zero.
func (b *BusinessInfo) HasGeo() bool {
	return b.Latitude != nil && b.Longitude != nil && *b.Latitude != 0 && *b.Longitude != 0
}

// DefaultOpeningHours is served when no hours have been saved yet.
func DefaultOpeningHours() OpeningHours {
	return OpeningHours{
		{Day: "Monday", Opens: "09:00", Closes: "17:00"},
		{Day: "Tuesday", Opens: "09:00", Closes: "17:00"},
		{Day: "Wednesday", Opens: "09:00", Closes: "17:00"},
		{Day: "Thursday", Opens: "09:00", Closes: "17:00"},
		{Day: "Friday", Opens: "09:00", Closes: "17:00"},
		{Day: "Saturday", Opens: "10:00", Closes: "15:00"},
		{Day: "Sunday", Opens: "10:00", Closes: "15:00", IsClosed: true},
	}
}
