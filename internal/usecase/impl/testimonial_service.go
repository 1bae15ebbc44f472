package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "housecash/internal/delivery/context"
	"housecash/internal/domain/entity"
	domainerrors "housecash/internal/domain/errors"
	"housecash/internal/domain/repository"
	"housecash/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// testimonialDateLayouts are tried in order when parsing a submitted date.
var testimonialDateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

type testimonialService struct {
	testimonialRepo repository.TestimonialRepository
	logger          *slog.Logger
	now             func() time.Time
}

// NewTestimonialService creates a new testimonial service instance
func NewTestimonialService(testimonialRepo repository.TestimonialRepository, logger *slog.Logger) usecase.TestimonialUsecase {
	return &testimonialService{
		testimonialRepo: testimonialRepo,
		logger:          logger,
		now:             time.Now,
	}
}

func (srv *testimonialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *testimonialService) ListTestimonials(ctx context.Context, input *usecase.ListTestimonialsInput) ([]*entity.Testimonial, error) {
	filter := repository.TestimonialFilter{}
	if input != nil {
		filter.FeaturedOnly = input.FeaturedOnly
		filter.Limit = input.Limit
	}

	testimonials, err := srv.testimonialRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}

	return testimonials, nil
}

func (srv *testimonialService) GetTestimonial(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error) {
	testimonial, err := srv.testimonialRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapTestimonialError(err, "failed to find testimonial")
	}

	return testimonial, nil
}

// CreateTestimonial applies rating 5, featured false and date now when omitted.
func (srv *testimonialService) CreateTestimonial(ctx context.Context, input *usecase.TestimonialInput) (*entity.Testimonial, error) {
	date := srv.now()
	if input.Date != "" {
		parsed, err := parseTestimonialDate(input.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	rating := input.Rating
	if rating == 0 {
		rating = entity.DefaultTestimonialRating
	}

	testimonial := &entity.Testimonial{
		Name:     input.Name,
		Location: input.Location,
		Content:  input.Content,
		Rating:   rating,
		Category: input.Category,
		Featured: input.Featured,
		Image:    input.Image,
		Date:     date,
	}

	if err := srv.testimonialRepo.Create(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}

	srv.log(ctx).Info("Testimonial created", "testimonialID", testimonial.ID)

	return testimonial, nil
}

// UpdateTestimonial overwrites the record. Rating and date are kept when omitted.
func (srv *testimonialService) UpdateTestimonial(ctx context.Context, id uuid.UUID, input *usecase.TestimonialInput) (*entity.Testimonial, error) {
	testimonial, err := srv.testimonialRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapTestimonialError(err, "failed to find testimonial")
	}

	testimonial.Name = input.Name
	testimonial.Location = input.Location
	testimonial.Content = input.Content
	testimonial.Category = input.Category
	testimonial.Featured = input.Featured
	testimonial.Image = input.Image
	if input.Rating != 0 {
		testimonial.Rating = input.Rating
	}
	if input.Date != "" {
		date, err := parseTestimonialDate(input.Date)
		if err != nil {
			return nil, err
		}
		testimonial.Date = date
	}

	return srv.save(ctx, testimonial)
}

// PatchTestimonial changes only the fields present in input.
func (srv *testimonialService) PatchTestimonial(ctx context.Context, id uuid.UUID, input *usecase.TestimonialPatchInput) (*entity.Testimonial, error) {
	testimonial, err := srv.testimonialRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapTestimonialError(err, "failed to find testimonial")
	}

	if err := applyTestimonialPatch(testimonial, input); err != nil {
		return nil, err
	}

	return srv.save(ctx, testimonial)
}

func (srv *testimonialService) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	if err := srv.testimonialRepo.Delete(ctx, id); err != nil {
		return mapTestimonialError(err, "failed to delete testimonial")
	}

	srv.log(ctx).Info("Testimonial deleted", "testimonialID", id)

	return nil
}

func (srv *testimonialService) save(ctx context.Context, testimonial *entity.Testimonial) (*entity.Testimonial, error) {
	if err := srv.testimonialRepo.Update(ctx, testimonial); err != nil {
		return nil, mapTestimonialError(err, "failed to update testimonial")
	}

	srv.log(ctx).Info("Testimonial updated", "testimonialID", testimonial.ID)

	return testimonial, nil
}

func applyTestimonialPatch(testimonial *entity.Testimonial, input *usecase.TestimonialPatchInput) error {
	if input.Name != nil {
		testimonial.Name = *input.Name
	}
	if input.Location != nil {
		testimonial.Location = *input.Location
	}
	if input.Content != nil {
		testimonial.Content = *input.Content
	}
	if input.Rating != nil {
		testimonial.Rating = *input.Rating
	}
	if input.Category != nil {
		testimonial.Category = *input.Category
	}
	if input.Featured != nil {
		testimonial.Featured = *input.Featured
	}
	if input.Image != nil {
		testimonial.Image = *input.Image
	}
	if input.Date != nil {
		date, err := parseTestimonialDate(*input.Date)
		if err != nil {
			return err
		}
		testimonial.Date = date
	}

	return nil
}

func parseTestimonialDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range testimonialDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Wrap(
		domainerrors.ErrValidationFailed.WithDetails("date must be YYYY-MM-DD or RFC 3339"),
		"invalid testimonial date",
	)
}

func mapTestimonialError(err error, message string) error {
	if errors.Is(err, repository.ErrTestimonialNotFound) {
		return errors.Wrap(domainerrors.ErrTestimonialNotFound, message)
	}

	return fmt.Errorf("%s: %w", message, err)
}
