package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "housecash/internal/delivery/context"
	"housecash/internal/domain/entity"
	"housecash/internal/domain/repository"
	"housecash/internal/usecase"
)

type seoService struct {
	seoRepo repository.SeoSettingsRepository
	logger  *slog.Logger
}

// NewSeoService creates a new SEO settings service instance
func NewSeoService(seoRepo repository.SeoSettingsRepository, logger *slog.Logger) usecase.SeoUsecase {
	return &seoService{
		seoRepo: seoRepo,
		logger:  logger,
	}
}

func (srv *seoService) GetSettings(ctx context.Context) (*entity.SeoSettings, error) {
	settings, err := srv.seoRepo.FindOrCreate(ctx, entity.DefaultSeoSettings())
	if err != nil {
		return nil, fmt.Errorf("failed to load seo settings: %w", err)
	}

	return settings, nil
}

// SaveSettings applies the fields that were sent on top of the stored row,
// creating the defaults first when nothing has been saved.
func (srv *seoService) SaveSettings(ctx context.Context, input *usecase.SeoSettingsInput) (*entity.SeoSettings, error) {
	settings, err := srv.seoRepo.FindOrCreate(ctx, entity.DefaultSeoSettings())
	if err != nil {
		return nil, fmt.Errorf("failed to load seo settings: %w", err)
	}

	applySeoPatch(settings, input)

	if err := srv.seoRepo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to upsert seo settings: %w", err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("SEO settings updated", "settingsID", settings.ID)

	return settings, nil
}

func applySeoPatch(settings *entity.SeoSettings, input *usecase.SeoSettingsInput) {
	for _, field := range []struct {
		value *string
		dst   *string
	}{
		{input.SiteName, &settings.SiteName},
		{input.SiteDescription, &settings.SiteDescription},
		{input.GoogleAnalyticsID, &settings.GoogleAnalyticsID},
		{input.GoogleTagManagerID, &settings.GoogleTagManagerID},
		{input.FacebookPixelID, &settings.FacebookPixelID},
		{input.GoogleVerification, &settings.GoogleVerification},
		{input.BingVerification, &settings.BingVerification},
		{input.DefaultOgImage, &settings.DefaultOgImage},
	} {
		if field.value != nil {
			*field.dst = *field.value
		}
	}
}
