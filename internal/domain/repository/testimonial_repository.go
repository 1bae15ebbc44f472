package repository

import (
	"context"

	"housecash/internal/domain/entity"

	"github.com/google/uuid"
)

// TestimonialFilter narrows a testimonial listing.
type TestimonialFilter struct {
	FeaturedOnly bool
	Limit        int
}

// TestimonialRepository persists testimonials.
type TestimonialRepository interface {
	// List returns testimonials ordered by date, newest first.
	List(ctx context.Context, filter TestimonialFilter) ([]*entity.Testimonial, error)

	// FindByID returns ErrTestimonialNotFound when the id is unknown.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error)

	Create(ctx context.Context, testimonial *entity.Testimonial) error

	// Update saves every field. ErrTestimonialNotFound when the id is unknown.
	Update(ctx context.Context, testimonial *entity.Testimonial) error

	// Delete returns ErrTestimonialNotFound when nothing was removed.
	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int64, error)
}
