package usecase

import (
	"context"

	"housecash/internal/domain/entity"

	"github.com/google/uuid"
)

// ListTestimonialsInput narrows a listing.
type ListTestimonialsInput struct {
	FeaturedOnly bool `query:"featured"`
	Limit        int  `query:"limit" validate:"omitempty,min=1,max=100"`
}

// TestimonialInput is the body for create and full update.
// A zero Rating or empty Date means not provided.
type TestimonialInput struct {
	Name     string                     `json:"name" validate:"required"`
	Location string                     `json:"location"`
	Content  string                     `json:"content" validate:"required"`
	Rating   int                        `json:"rating" validate:"omitempty,min=1,max=5"`
	Category entity.TestimonialCategory `json:"category" validate:"omitempty,oneof=foreclosure inherited divorce damage"`
	Featured bool                       `json:"featured"`
	Image    string                     `json:"image"`
	Date     string                     `json:"date"`
}

// TestimonialPatchInput changes only the fields that are present.
type TestimonialPatchInput struct {
	Name     *string                     `json:"name,omitempty"`
	Location *string                     `json:"location,omitempty"`
	Content  *string                     `json:"content,omitempty"`
	Rating   *int                        `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Category *entity.TestimonialCategory `json:"category,omitempty" validate:"omitempty,oneof=foreclosure inherited divorce damage"`
	Featured *bool                       `json:"featured,omitempty"`
	Image    *string                     `json:"image,omitempty"`
	Date     *string                     `json:"date,omitempty"`
}

// TestimonialUsecase defines the interface for testimonial management
type TestimonialUsecase interface {
	ListTestimonials(ctx context.Context, input *ListTestimonialsInput) ([]*entity.Testimonial, error)
	GetTestimonial(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error)
	CreateTestimonial(ctx context.Context, input *TestimonialInput) (*entity.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id uuid.UUID, input *TestimonialInput) (*entity.Testimonial, error)
	PatchTestimonial(ctx context.Context, id uuid.UUID, input *TestimonialPatchInput) (*entity.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id uuid.UUID) error
}
