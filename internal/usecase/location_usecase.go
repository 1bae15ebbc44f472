package usecase

import (
	"context"

	"housecash/internal/domain/entity"
)

// LocationInput is one entry of a full locations replace.
type LocationInput struct {
	Name          string   `json:"name" validate:"required"`
	StreetAddress string   `json:"streetAddress"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	PostalCode    string   `json:"postalCode" validate:"omitempty,postcode"`
	Country       string   `json:"country"`
	Phone         string   `json:"phone" validate:"omitempty,phone"`
	Email         string   `json:"email" validate:"omitempty,email"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	IsPrimary     bool     `json:"isPrimary"`
}

// LocationUsecase defines the interface for business location management
type LocationUsecase interface {
	// ListLocations returns the primary location first.
	ListLocations(ctx context.Context) ([]*entity.BusinessLocation, error)

	// ReplaceLocations swaps the whole collection atomically and leaves
	// exactly one primary when the input is non-empty.
	ReplaceLocations(ctx context.Context, inputs []*LocationInput) ([]*entity.BusinessLocation, error)
}
