package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BusinessLocation is an office or branch. Exactly one location is primary
// whenever at least one exists.
type BusinessLocation struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	StreetAddress string    `json:"streetAddress"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	PostalCode    string    `json:"postalCode"`
	Country       string    `json:"country"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	IsPrimary     bool      `json:"isPrimary"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// HasGeo reports whether the location can be placed on a map.
func (l *BusinessLocation) HasGeo() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// FullAddress joins the non-empty address parts with commas.
func (l *BusinessLocation) FullAddress() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{l.StreetAddress, l.City, l.State, l.PostalCode, l.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, ", ")
}

// EnforceSinglePrimary keeps the first location flagged primary and clears
// the rest. With no flag set the first location becomes primary.
func EnforceSinglePrimary(locations []*BusinessLocation) {
	if len(locations) == 0 {
		return
	}

	primary := -1
	for i, loc := range locations {
		if loc.IsPrimary && primary < 0 {
			primary = i
		}
	}
	if primary < 0 {
		primary = 0
	}

	for i, loc := range locations {
		loc.IsPrimary = i == primary
	}
}
