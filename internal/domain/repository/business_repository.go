package repository

import (
	"context"

	"housecash/internal/domain/entity"
)

// BusinessInfoRepository persists the business singleton, including its
// opening hours and social profile columns.
type BusinessInfoRepository interface {
	// Find returns the singleton or ErrBusinessInfoNotFound.
	Find(ctx context.Context) (*entity.BusinessInfo, error)

	// Upsert updates the singleton in place, inserting it when missing.
	// Opening hours and social profiles are left untouched on update.
	Upsert(ctx context.Context, info *entity.BusinessInfo) error

	// UpdateOpeningHours replaces the hours column, creating the row with
	// defaultName when missing.
	UpdateOpeningHours(ctx context.Context, hours entity.OpeningHours, defaultName string) error

	// UpdateSocialProfiles replaces the social profiles column, creating the
	// row with defaultName when missing.
	UpdateSocialProfiles(ctx context.Context, profiles []entity.SocialProfile, defaultName string) error
}
