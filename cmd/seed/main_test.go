package main

import (
	"io"
	"log/slog"
	"testing"

	"housecash/internal/domain/entity"
	mockRepo "housecash/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type seederFixtures struct {
	seeder          *seeder
	businessRepo    *mockRepo.MockBusinessInfoRepository
	seoRepo         *mockRepo.MockSeoSettingsRepository
	testimonialRepo *mockRepo.MockTestimonialRepository
}

func newTestSeeder(t *testing.T) seederFixtures {
	fx := seederFixtures{
		businessRepo:    mockRepo.NewMockBusinessInfoRepository(t),
		seoRepo:         mockRepo.NewMockSeoSettingsRepository(t),
		testimonialRepo: mockRepo.NewMockTestimonialRepository(t),
	}
	fx.seeder = &seeder{
		businessRepo:    fx.businessRepo,
		seoRepo:         fx.seoRepo,
		testimonialRepo: fx.testimonialRepo,
		defaultName:     "WeBuyHouseCash Melbourne",
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	return fx
}

func TestSeeder_EmptyDatabase(t *testing.T) {
	fx := newTestSeeder(t)

	fx.seoRepo.EXPECT().FindOrCreate(mock.Anything, entity.DefaultSeoSettings()).Return(entity.DefaultSeoSettings(), nil)
	fx.businessRepo.EXPECT().Find(mock.Anything).Return(nil, nil)
	fx.businessRepo.EXPECT().
		Upsert(mock.Anything, mock.MatchedBy(func(info *entity.BusinessInfo) bool {
			return info.BusinessName == "WeBuyHouseCash Melbourne" && len(info.OpeningHours) == 7
		})).
		Return(nil)
	fx.testimonialRepo.EXPECT().Count(mock.Anything).Return(0, nil)
	fx.testimonialRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Times(3)

	require.NoError(t, fx.seeder.seed(t.Context(), true))
}

func TestSeeder_KeepsExistingRows(t *testing.T) {
	fx := newTestSeeder(t)

	fx.seoRepo.EXPECT().FindOrCreate(mock.Anything, mock.Anything).Return(&entity.SeoSettings{SiteName: "Mine"}, nil)
	fx.businessRepo.EXPECT().Find(mock.Anything).Return(&entity.BusinessInfo{BusinessName: "Existing"}, nil)
	fx.testimonialRepo.EXPECT().Count(mock.Anything).Return(4, nil)

	require.NoError(t, fx.seeder.seed(t.Context(), true))
}

func TestSeeder_SkipsTestimonialsByDefault(t *testing.T) {
	fx := newTestSeeder(t)

	fx.seoRepo.EXPECT().FindOrCreate(mock.Anything, mock.Anything).Return(entity.DefaultSeoSettings(), nil)
	fx.businessRepo.EXPECT().Find(mock.Anything).Return(&entity.BusinessInfo{BusinessName: "Existing"}, nil)

	require.NoError(t, fx.seeder.seed(t.Context(), false))
}

func TestSeeder_PropagatesErrors(t *testing.T) {
	fx := newTestSeeder(t)

	fx.seoRepo.EXPECT().FindOrCreate(mock.Anything, mock.Anything).Return(nil, errors.New("relation does not exist"))

	err := fx.seeder.seed(t.Context(), true)

	assert.ErrorContains(t, err, "failed to seed SEO settings")
}
