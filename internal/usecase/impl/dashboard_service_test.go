package impl

import (
	"context"
	"testing"

	"housecash/internal/domain/entity"
	mockRepo "housecash/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_GetStats(t *testing.T) {
	testimonialRepo := mockRepo.NewMockTestimonialRepository(t)
	enquiryRepo := mockRepo.NewMockEnquiryRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	service := NewDashboardService(testimonialRepo, enquiryRepo, locationRepo)
	ctx := context.Background()

	testimonialRepo.EXPECT().Count(ctx).Return(int64(12), nil)
	enquiryRepo.EXPECT().Count(ctx).Return(int64(40), nil)
	locationRepo.EXPECT().List(ctx).Return([]*entity.BusinessLocation{{Name: "HQ"}, {Name: "West"}}, nil)
	enquiryRepo.EXPECT().ListRecent(ctx, 5).Return([]*entity.Enquiry{{Name: "Newest"}}, nil)

	stats, err := service.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.Testimonials)
	assert.Equal(t, int64(40), stats.Enquiries)
	assert.Equal(t, 2, stats.Locations)
	require.Len(t, stats.RecentEnquiries, 1)
}

func TestDashboardService_GetStats_CountFailure(t *testing.T) {
	testimonialRepo := mockRepo.NewMockTestimonialRepository(t)
	service := NewDashboardService(testimonialRepo, mockRepo.NewMockEnquiryRepository(t), mockRepo.NewMockLocationRepository(t))
	ctx := context.Background()

	testimonialRepo.EXPECT().Count(ctx).Return(int64(0), errors.New("db down"))

	_, err := service.GetStats(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count testimonials")
}
