package entity

import (
	"time"

	"github.com/google/uuid"
)

// TestimonialCategory tags a testimonial with the seller's situation.
type TestimonialCategory string

const (
	CategoryForeclosure TestimonialCategory = "foreclosure"
	CategoryInherited   TestimonialCategory = "inherited"
	CategoryDivorce     TestimonialCategory = "divorce"
	CategoryDamage      TestimonialCategory = "damage"
)

// TestimonialCategories lists the categories in the order the testimonials page shows them.
var TestimonialCategories = []TestimonialCategory{
	CategoryForeclosure,
	CategoryInherited,
	CategoryDivorce,
	CategoryDamage,
}

// Label is the tab title for a category.
func (c TestimonialCategory) Label() string {
	switch c {
	case CategoryForeclosure:
		return "Foreclosure"
	case CategoryInherited:
		return "Inherited Property"
	case CategoryDivorce:
		return "Divorce Sale"
	case CategoryDamage:
		return "Damaged Property"
	default:
		return "Other"
	}
}

// DefaultTestimonialRating is applied when a new testimonial has no rating.
const DefaultTestimonialRating = 5

// Testimonial is a customer quote shown on the public site.
type Testimonial struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	Location  string              `json:"location"`
	Content   string              `json:"content"`
	Rating    int                 `json:"rating"`
	Category  TestimonialCategory `json:"category"`
	Featured  bool                `json:"featured"`
	Image     string              `json:"image"`
	Date      time.Time           `json:"date"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// GroupTestimonialsByCategory buckets testimonials by their category, keeping input order.
func GroupTestimonialsByCategory(items []*Testimonial) map[TestimonialCategory][]*Testimonial {
	grouped := make(map[TestimonialCategory][]*Testimonial, len(TestimonialCategories))
	for _, t := range items {
		grouped[t.Category] = append(grouped[t.Category], t)
	}

	return grouped
}
