package usecase

import (
	"context"

	"housecash/internal/domain/entity"
	"housecash/internal/jsonld"
)

// TestimonialGroup is one category tab on the testimonials page.
type TestimonialGroup struct {
	Category     entity.TestimonialCategory
	Label        string
	Testimonials []*entity.Testimonial
}

// Page is everything a public template needs to render one route.
type Page struct {
	Path          string
	Title         string
	DocumentTitle string
	Type          entity.PageType
	Description   string
	CanonicalURL  string

	Seo      *entity.SeoSettings
	Business *entity.BusinessInfo
	Hours    []entity.HoursGroup
	Social   []entity.SocialProfile

	// Schemas are the page's structured data, Graph the single nested
	// document embedded in the layout.
	Schemas []jsonld.Schema
	Graph   jsonld.Schema

	Testimonials      []*entity.Testimonial
	TestimonialGroups []TestimonialGroup
	FAQs              []entity.FAQ
	ServiceAreas      []entity.ServiceArea
	PrimaryLocation   *entity.BusinessLocation
	QRCode            string
}

// SitemapEntry is one public URL.
type SitemapEntry struct {
	Loc      string
	Priority string
}

// PageUsecase composes public pages from cached site data.
type PageUsecase interface {
	// GetPage returns domainerrors.ErrNotFound for an unknown path.
	GetPage(ctx context.Context, path string) (*Page, error)

	// Sitemap lists every public route as an absolute URL.
	Sitemap() []SitemapEntry

	BaseURL() string
}
