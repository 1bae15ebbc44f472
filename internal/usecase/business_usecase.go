package usecase

import (
	"context"

	"housecash/internal/domain/entity"
)

// BusinessInfoInput is the admin form for the business singleton. Coordinates
// arrive as strings from HTML forms or numbers from JSON clients.
type BusinessInfoInput struct {
	BusinessName    string `json:"businessName" validate:"required"`
	LegalName       string `json:"legalName"`
	Description     string `json:"description"`
	Telephone       string `json:"telephone" validate:"omitempty,phone"`
	Email           string `json:"email" validate:"omitempty,email"`
	Website         string `json:"website" validate:"omitempty,looseurl"`
	StreetAddress   string `json:"streetAddress"`
	City            string `json:"city"`
	State           string `json:"state"`
	PostalCode      string `json:"postalCode" validate:"omitempty,postcode"`
	Country         string `json:"country"`
	Latitude        any    `json:"latitude"`
	Longitude       any    `json:"longitude"`
	PriceRange      string `json:"priceRange"`
	Logo            string `json:"logo" validate:"omitempty,imageurl"`
	Image           string `json:"image" validate:"omitempty,imageurl"`
	FoundingDate    string `json:"foundingDate"`
	PaymentAccepted string `json:"paymentAccepted"`
	AreaServed      string `json:"areaServed"`
}

// BusinessUsecase manages the business singleton and its JSON columns.
type BusinessUsecase interface {
	// GetBusinessInfo returns nil without error when nothing has been saved.
	GetBusinessInfo(ctx context.Context) (*entity.BusinessInfo, error)
	UpdateBusinessInfo(ctx context.Context, input *BusinessInfoInput) (*entity.BusinessInfo, error)

	// GetOpeningHours falls back to the default week when none are stored.
	GetOpeningHours(ctx context.Context) (entity.OpeningHours, error)
	UpdateOpeningHours(ctx context.Context, hours entity.OpeningHours) error

	GetSocialProfiles(ctx context.Context) ([]entity.SocialProfile, error)
	UpdateSocialProfiles(ctx context.Context, profiles []entity.SocialProfile) error
}
