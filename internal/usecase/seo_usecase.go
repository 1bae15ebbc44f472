package usecase

import (
	"context"

	"housecash/internal/domain/entity"
)

// SeoSettingsInput is the admin form for site metadata. Only the fields
// present in the request are changed; an explicit "" clears a field.
type SeoSettingsInput struct {
	SiteName           *string `json:"siteName,omitempty"`
	SiteDescription    *string `json:"siteDescription,omitempty"`
	GoogleAnalyticsID  *string `json:"googleAnalyticsId,omitempty"`
	GoogleTagManagerID *string `json:"googleTagManagerId,omitempty"`
	FacebookPixelID    *string `json:"facebookPixelId,omitempty"`
	GoogleVerification *string `json:"googleVerification,omitempty"`
	BingVerification   *string `json:"bingVerification,omitempty"`
	DefaultOgImage     *string `json:"defaultOgImage,omitempty" validate:"omitempty,imageurl"`
}

// SeoUsecase manages the SEO singleton.
type SeoUsecase interface {
	// GetSettings creates the default row on first access.
	GetSettings(ctx context.Context) (*entity.SeoSettings, error)
	SaveSettings(ctx context.Context, input *SeoSettingsInput) (*entity.SeoSettings, error)
}
