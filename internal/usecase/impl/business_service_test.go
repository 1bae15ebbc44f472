package impl

import (
	"context"
	"testing"

	"housecash/config"
	"housecash/internal/domain/entity"
	"housecash/internal/domain/repository"
	mockRepo "housecash/internal/mocks/repository"
	"housecash/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type businessServiceFixtures struct {
	service      usecase.BusinessUsecase
	businessRepo *mockRepo.MockBusinessInfoRepository
}

func createTestBusinessService(t *testing.T) businessServiceFixtures {
	businessRepo := mockRepo.NewMockBusinessInfoRepository(t)
	cfg := &config.Config{}
	cfg.Site.DefaultName = "WeBuyHouseCash Melbourne"

	return businessServiceFixtures{
		service:      NewBusinessService(businessRepo, cfg, discardLogger()),
		businessRepo: businessRepo,
	}
}

func TestBusinessService_GetBusinessInfo_NotFoundIsNil(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().Find(ctx).Return(nil, repository.ErrBusinessInfoNotFound)

	info, err := fx.service.GetBusinessInfo(ctx)
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestBusinessService_GetBusinessInfo_Error(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().Find(ctx).Return(nil, errors.New("db down"))

	_, err := fx.service.GetBusinessInfo(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find business info")
}

func TestBusinessService_UpdateBusinessInfo_CoercesCoordinates(t *testing.T) {
	tests := []struct {
		name      string
		latitude  any
		longitude any
		wantLat   *float64
		wantLng   *float64
	}{
		{name: "numbers", latitude: -37.8136, longitude: 144.9631, wantLat: ptr(-37.8136), wantLng: ptr(144.9631)},
		{name: "strings", latitude: " -37.8136", longitude: "144.9631", wantLat: ptr(-37.8136), wantLng: ptr(144.9631)},
		{name: "blank", latitude: "", longitude: "  ", wantLat: nil, wantLng: nil},
		{name: "invalid", latitude: "north", longitude: nil, wantLat: nil, wantLng: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBusinessService(t)
			ctx := context.Background()

			var saved *entity.BusinessInfo
			fx.businessRepo.EXPECT().
				Upsert(ctx, mock.AnythingOfType("*entity.BusinessInfo")).
				Run(func(_ context.Context, info *entity.BusinessInfo) { saved = info }).
				Return(nil)

			_, err := fx.service.UpdateBusinessInfo(ctx, &usecase.BusinessInfoInput{
				BusinessName: "  Acme Homes ",
				Latitude:     tt.latitude,
				Longitude:    tt.longitude,
			})
			require.NoError(t, err)
			require.NotNil(t, saved)
			assert.Equal(t, "Acme Homes", saved.BusinessName)
			assert.Equal(t, tt.wantLat, saved.Latitude)
			assert.Equal(t, tt.wantLng, saved.Longitude)
		})
	}
}

func TestBusinessService_GetOpeningHours_DefaultsWhenMissing(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().Find(ctx).Return(nil, repository.ErrBusinessInfoNotFound)

	hours, err := fx.service.GetOpeningHours(ctx)
	require.NoError(t, err)
	require.Len(t, hours, 7)
	assert.Equal(t, entity.BusinessHour{Day: "Sunday", Opens: "10:00", Closes: "15:00", IsClosed: true}, hours[6])
}

func TestBusinessService_GetOpeningHours_StoredEmptyListIsKept(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().Find(ctx).Return(&entity.BusinessInfo{OpeningHours: entity.OpeningHours{}}, nil)

	hours, err := fx.service.GetOpeningHours(ctx)
	require.NoError(t, err)
	assert.NotNil(t, hours)
	assert.Empty(t, hours)
}

func TestBusinessService_UpdateOpeningHours_UsesDefaultName(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()
	hours := entity.OpeningHours{{Day: "Monday", Opens: "08:00", Closes: "16:00"}}

	fx.businessRepo.EXPECT().UpdateOpeningHours(ctx, hours, "WeBuyHouseCash Melbourne").Return(nil)

	require.NoError(t, fx.service.UpdateOpeningHours(ctx, hours))
}

func TestBusinessService_GetSocialProfiles_EmptyFallback(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().Find(ctx).Return(&entity.BusinessInfo{BusinessName: "Acme"}, nil)

	profiles, err := fx.service.GetSocialProfiles(ctx)
	require.NoError(t, err)
	assert.NotNil(t, profiles)
	assert.Empty(t, profiles)
}

func TestBusinessService_UpdateSocialProfiles_Error(t *testing.T) {
	fx := createTestBusinessService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().
		UpdateSocialProfiles(ctx, []entity.SocialProfile{}, "WeBuyHouseCash Melbourne").
		Return(errors.New("db down"))

	err := fx.service.UpdateSocialProfiles(ctx, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update social profiles")
}
