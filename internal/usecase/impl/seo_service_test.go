package impl

import (
	"context"
	"testing"

	"housecash/internal/domain/entity"
	mockRepo "housecash/internal/mocks/repository"
	"housecash/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSeoService_GetSettings_CreatesDefaults(t *testing.T) {
	seoRepo := mockRepo.NewMockSeoSettingsRepository(t)
	service := NewSeoService(seoRepo, discardLogger())
	ctx := context.Background()

	seoRepo.EXPECT().
		FindOrCreate(ctx, entity.DefaultSeoSettings()).
		RunAndReturn(func(_ context.Context, defaults *entity.SeoSettings) (*entity.SeoSettings, error) {
			created := *defaults
			created.ID = uuid.New()

			return &created, nil
		})

	settings, err := service.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "WeBuyHouseCash.com.au", settings.SiteName)
	assert.Equal(t, "We buy houses for cash in Melbourne, Australia", settings.SiteDescription)
	assert.NotEqual(t, uuid.Nil, settings.ID)
}

func TestSeoService_SaveSettings_OnlyChangesSentFields(t *testing.T) {
	seoRepo := mockRepo.NewMockSeoSettingsRepository(t)
	service := NewSeoService(seoRepo, discardLogger())
	ctx := context.Background()
	id := uuid.New()

	stored := &entity.SeoSettings{
		ID:                id,
		SiteName:          "WeBuyHouseCash.com.au",
		SiteDescription:   "We buy houses for cash in Melbourne, Australia",
		GoogleAnalyticsID: "G-OLD",
		FacebookPixelID:   "987",
		DefaultOgImage:    "/media/og.png",
	}
	seoRepo.EXPECT().FindOrCreate(ctx, entity.DefaultSeoSettings()).Return(stored, nil)
	seoRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(settings *entity.SeoSettings) bool {
			return settings.ID == id
		})).
		Return(nil)

	settings, err := service.SaveSettings(ctx, &usecase.SeoSettingsInput{
		SiteName:          ptr("Cash4Houses"),
		GoogleAnalyticsID: ptr(""),
	})
	require.NoError(t, err)

	assert.Equal(t, "Cash4Houses", settings.SiteName)
	assert.Empty(t, settings.GoogleAnalyticsID)
	assert.Equal(t, "We buy houses for cash in Melbourne, Australia", settings.SiteDescription)
	assert.Equal(t, "987", settings.FacebookPixelID)
	assert.Equal(t, "/media/og.png", settings.DefaultOgImage)
}

func TestSeoService_SaveSettings_StartsFromDefaults(t *testing.T) {
	seoRepo := mockRepo.NewMockSeoSettingsRepository(t)
	service := NewSeoService(seoRepo, discardLogger())
	ctx := context.Background()

	seoRepo.EXPECT().
		FindOrCreate(ctx, entity.DefaultSeoSettings()).
		RunAndReturn(func(_ context.Context, defaults *entity.SeoSettings) (*entity.SeoSettings, error) {
			return defaults, nil
		})
	seoRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.SeoSettings")).Return(nil)

	settings, err := service.SaveSettings(ctx, &usecase.SeoSettingsInput{GoogleAnalyticsID: ptr("G-TEST")})
	require.NoError(t, err)
	assert.Equal(t, "WeBuyHouseCash.com.au", settings.SiteName)
	assert.Equal(t, "G-TEST", settings.GoogleAnalyticsID)
}

func TestSeoService_SaveSettings_Error(t *testing.T) {
	t.Run("load fails", func(t *testing.T) {
		seoRepo := mockRepo.NewMockSeoSettingsRepository(t)
		service := NewSeoService(seoRepo, discardLogger())
		ctx := context.Background()

		seoRepo.EXPECT().FindOrCreate(ctx, mock.Anything).Return(nil, errors.New("db down"))

		_, err := service.SaveSettings(ctx, &usecase.SeoSettingsInput{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load seo settings")
	})

	t.Run("upsert fails", func(t *testing.T) {
		seoRepo := mockRepo.NewMockSeoSettingsRepository(t)
		service := NewSeoService(seoRepo, discardLogger())
		ctx := context.Background()

		seoRepo.EXPECT().FindOrCreate(ctx, mock.Anything).Return(entity.DefaultSeoSettings(), nil)
		seoRepo.EXPECT().Upsert(ctx, mock.Anything).Return(errors.New("db down"))

		_, err := service.SaveSettings(ctx, &usecase.SeoSettingsInput{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to upsert seo settings")
	})
}
