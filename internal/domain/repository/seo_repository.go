package repository

import (
	"context"

	"housecash/internal/domain/entity"
)

// SeoSettingsRepository persists the SEO singleton.
type SeoSettingsRepository interface {
	// Find returns the singleton or ErrSeoSettingsNotFound.
	Find(ctx context.Context) (*entity.SeoSettings, error)

	// FindOrCreate returns the singleton, inserting defaults when missing.
	FindOrCreate(ctx context.Context, defaults *entity.SeoSettings) (*entity.SeoSettings, error)

	// Upsert updates the singleton in place, inserting it when missing.
	Upsert(ctx context.Context, settings *entity.SeoSettings) error
}
