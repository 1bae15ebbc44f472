package impl

import (
	"context"
	"testing"
	"time"

	"housecash/internal/domain/entity"
	domainerrors "housecash/internal/domain/errors"
	"housecash/internal/domain/repository"
	mockRepo "housecash/internal/mocks/repository"
	"housecash/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type testimonialServiceFixtures struct {
	service         *testimonialService
	testimonialRepo *mockRepo.MockTestimonialRepository
}

func createTestTestimonialService(t *testing.T) testimonialServiceFixtures {
	testimonialRepo := mockRepo.NewMockTestimonialRepository(t)
	svc := NewTestimonialService(testimonialRepo, discardLogger()).(*testimonialService)
	svc.now = func() time.Time { return fixedNow }

	return testimonialServiceFixtures{
		service:         svc,
		testimonialRepo: testimonialRepo,
	}
}

func TestTestimonialService_ListTestimonials_PassesFilter(t *testing.T) {
	fx := createTestTestimonialService(t)
	ctx := context.Background()

	fx.testimonialRepo.EXPECT().
		List(ctx, repository.TestimonialFilter{FeaturedOnly: true, Limit: 3}).
		Return([]*entity.Testimonial{{Name: "Jo"}}, nil)

	testimonials, err := fx.service.ListTestimonials(ctx, &usecase.ListTestimonialsInput{FeaturedOnly: true, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, testimonials, 1)
}

func TestTestimonialService_GetTestimonial_NotFound(t *testing.T) {
	fx := createTestTestimonialService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.testimonialRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrTestimonialNotFound)

	_, err := fx.service.GetTestimonial(ctx, id)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTestimonialNotFound)
}

func TestTestimonialService_CreateTestimonial_Defaults(t *testing.T) {
	fx := createTestTestimonialService(t)
	ctx := context.Background()

	fx.testimonialRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Testimonial")).Return(nil)

	testimonial, err := fx.service.CreateTestimonial(ctx, &usecase.TestimonialInput{
		Name:    "Priya",
		Content: "Quick and fair.",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultTestimonialRating, testimonial.Rating)
	assert.False(t, testimonial.Featured)
	assert.Equal(t, fixedNow, testimonial.Date)
	assert.Empty(t, testimonial.Category)
}

func TestTestimonialService_CreateTestimonial_ParsesDate(t *testing.T) {
	fx := createTestTestimonialService(t)
	ctx := context.Background()

	fx.testimonialRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	testimonial, err := fx.service.CreateTestimonial(ctx, &usecase.TestimonialInput{
		Name:    "Priya",
		Content: "Quick and fair.",
		Rating:  4,
		Date:    "2024-11-02",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, testimonial.Rating)
	assert.Equal(t, time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC), testimonial.Date)
}

func TestTestimonialService_CreateTestimonial_InvalidDate(t *testing.T) {
	fx := createTestTestimonialService(t)

	_, err := fx.service.CreateTestimonial(context.Background(), &usecase.TestimonialInput{
		Name:    "Priya",
		Content: "Quick and fair.",
		Date:    "last tuesday",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestTestimonialService_UpdateTestimonial_KeepsDateAndRatingWhenOmitted(t *testing.T) {
	fx := createTestTestimonialService(t)
	ctx := context.Background()
	id := uuid.New()
	originalDate := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)

	fx.testimonialRepo.EXPECT().FindByID(ctx, id).Return(&entity.Testimonial{
		ID:       id,
		Name:     "Old",
		Location: "Richmond",
		Rating:   3,
		Featured: true,
		Date:     originalDate,
	}, nil)
	fx.testimonialRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Testimonial")).Return(nil)

	testimonial, err := fx.service.UpdateTestimonial(ctx, id, &usecase.TestimonialInput{
		Name:     "New",
		Content:  "Updated content",
		Category: entity.CategoryDivorce,
	})
	require.NoError(t, err)
	assert.Equal(t, "New", testimonial.Name)
	assert.Empty(t, testimonial.Location)
	assert.False(t, testimonial.Featured)
	assert.Equal(t, 3, testimonial.Rating)
	assert.Equal(t, originalDate, testimonial.Date)
	assert.Equal(t, entity.CategoryDivorce, testimonial.Category)
}

func TestTestimonialService_PatchTestimonial_OnlyProvidedFields(t *testing.T) {
	fx := createTestTestimonialService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.testimonialRepo.EXPECT().FindByID(ctx, id).Return(&entity.Testimonial{
		ID:       id,
		Name:     "Sam",
		Content:  "Great",
		Location: "Kew",
		Rating:   5,
	}, nil)
	fx.testimonialRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)

	testimonial, err := fx.service.PatchTestimonial(ctx, id, &usecase.TestimonialPatchInput{
		Featured: ptr(true),
	})
	require.NoError(t, err)
	assert.True(t, testimonial.Featured)
	assert.Equal(t, "Sam", testimonial.Name)
	assert.Equal(t, "Kew", testimonial.Location)
	assert.Equal(t, 5, testimonial.Rating)
}

func TestTestimonialService_PatchTestimonial_UpdateLosesRow(t *testing.T) {
	fx := createTestTestimonialService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.testimonialRepo.EXPECT().FindByID(ctx, id).Return(&entity.Testimonial{ID: id}, nil)
	fx.testimonialRepo.EXPECT().Update(ctx, mock.Anything).Return(repository.ErrTestimonialNotFound)

	_, err := fx.service.PatchTestimonial(ctx, id, &usecase.TestimonialPatchInput{Name: ptr("x")})
	assert.ErrorIs(t, err, domainerrors.ErrTestimonialNotFound)
}

func TestTestimonialService_DeleteTestimonial(t *testing.T) {
	fx := createTestTestimonialService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.testimonialRepo.EXPECT().Delete(ctx, id).Return(nil)

	require.NoError(t, fx.service.DeleteTestimonial(ctx, id))
}

func TestTestimonialService_DeleteTestimonial_Failure(t *testing.T) {
	fx := createTestTestimonialService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.testimonialRepo.EXPECT().Delete(ctx, id).Return(errors.New("db down"))

	err := fx.service.DeleteTestimonial(ctx, id)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrTestimonialNotFound)
}
