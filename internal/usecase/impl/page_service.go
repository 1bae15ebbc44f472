package impl

import (
	"context"
	"fmt"
	"log/slog"

	"housecash/config"
	deliverycontext "housecash/internal/delivery/context"
	"housecash/internal/content"
	"housecash/internal/domain/entity"
	domainerrors "housecash/internal/domain/errors"
	"housecash/internal/domain/repository"
	"housecash/internal/domain/service"
	"housecash/internal/jsonld"
	"housecash/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	homeTestimonialCount = 3

	cacheKeySeo                  = "seo"
	cacheKeyBusiness             = "business"
	cacheKeyLocations            = "locations"
	cacheKeyFeaturedTestimonials = "testimonials:featured"
	cacheKeyAllTestimonials      = "testimonials:all"
)

type pageRoute struct {
	path        string
	title       string
	pageType    entity.PageType
	description string
	priority    string
}

// pageRoutes are the public pages in sitemap order.
var pageRoutes = []pageRoute{
	{
		path:        "/",
		title:       "WeBuyHouseCash Melbourne | Sell Your House Fast For Cash",
		pageType:    entity.PageTypeHome,
		description: "Sell your Melbourne house fast for cash. No fees, no repairs, no hassle. Get a fair cash offer in 24 hours and close in as little as 7 days.",
		priority:    "1.0",
	},
	{
		path:        "/about",
		title:       "About Us",
		pageType:    entity.PageTypeAbout,
		description: "Learn about WeBuyHouseCash Melbourne, our mission, and why homeowners trust us to buy their properties for cash.",
		priority:    "0.8",
	},
	{
		path:     "/contact",
		title:    "Contact Us",
		pageType: entity.PageTypeContact,
		priority: "0.8",
	},
	{
		path:        "/faq",
		title:       "Frequently Asked Questions",
		pageType:    entity.PageTypeFAQ,
		description: "Answers to common questions about selling your Melbourne house for cash: timing, repairs, fees and how the process works.",
		priority:    "0.7",
	},
	{
		path:        "/how-it-works",
		title:       "How It Works",
		pageType:    entity.PageTypeService,
		description: "Learn how to sell your house for cash in Melbourne in 3 simple steps. Get a fair cash offer in 24 hours and close in as little as 7 days.",
		priority:    "0.8",
	},
	{
		path:        "/areas-we-serve",
		title:       "Areas We Serve",
		pageType:    entity.PageTypeService,
		description: "We buy houses for cash throughout Melbourne and surrounding suburbs. Get a fast, fair offer no matter where you're located in the Melbourne area.",
		priority:    "0.7",
	},
	{
		path:        "/testimonials",
		title:       "Customer Testimonials",
		pageType:    entity.PageTypeDefault,
		description: "Read real testimonials from homeowners who have sold their Melbourne properties to WeBuyHouseCash Melbourne. Fast, fair cash offers and hassle-free closings.",
		priority:    "0.6",
	},
}

// PageServiceParams holds the dependencies of the page service.
type PageServiceParams struct {
	fx.In

	Config          *config.Config
	SeoRepo         repository.SeoSettingsRepository
	BusinessRepo    repository.BusinessInfoRepository
	LocationRepo    repository.LocationRepository
	TestimonialRepo repository.TestimonialRepository
	Cache           service.Cache
	Assembler       *jsonld.Assembler
	QRCode          service.QRCodeService
	Logger          *slog.Logger
}

type pageService struct {
	seoRepo         repository.SeoSettingsRepository
	businessRepo    repository.BusinessInfoRepository
	locationRepo    repository.LocationRepository
	testimonialRepo repository.TestimonialRepository
	cache           service.Cache
	assembler       *jsonld.Assembler
	qrcode          service.QRCodeService
	defaultName     string
	logger          *slog.Logger
}

// NewPageService creates a new page composition service
func NewPageService(params PageServiceParams) usecase.PageUsecase {
	return &pageService{
		seoRepo:         params.SeoRepo,
		businessRepo:    params.BusinessRepo,
		locationRepo:    params.LocationRepo,
		testimonialRepo: params.TestimonialRepo,
		cache:           params.Cache,
		assembler:       params.Assembler,
		qrcode:          params.QRCode,
		defaultName:     params.Config.Site.DefaultName,
		logger:          params.Logger,
	}
}

func (srv *pageService) BaseURL() string {
	return srv.assembler.BaseURL()
}

func (srv *pageService) Sitemap() []usecase.SitemapEntry {
	entries := make([]usecase.SitemapEntry, 0, len(pageRoutes))
	for _, route := range pageRoutes {
		entries = append(entries, usecase.SitemapEntry{
			Loc:      srv.assembler.BaseURL() + route.path,
			Priority: route.priority,
		})
	}

	return entries
}

// GetPage composes the route's data, schemas and page specific content.
func (srv *pageService) GetPage(ctx context.Context, path string) (*usecase.Page, error) {
	route, ok := findRoute(path)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrNotFound, "no page at %s", path)
	}

	seo, err := srv.seoSettings(ctx)
	if err != nil {
		return nil, err
	}
	info, err := srv.businessInfo(ctx)
	if err != nil {
		return nil, err
	}

	hours := info.OpeningHours
	if hours == nil {
		hours = entity.DefaultOpeningHours()
	}

	page := &usecase.Page{
		Path:          route.path,
		Title:         route.title,
		DocumentTitle: documentTitle(route, seo, srv.defaultName),
		Type:          route.pageType,
		Description:   route.description,
		CanonicalURL:  srv.assembler.BaseURL() + route.path,
		Seo:           seo,
		Business:      info,
		Hours:         hours.DisplayGroups(),
		Social:        info.SocialProfiles,
		Schemas:       srv.assembler.PageSchemas(route.pageType, route.path, route.title, seo, info),
	}
	if page.Description == "" {
		page.Description = fmt.Sprintf("Contact %s for fast cash offers on your property. No fees, no repairs, no hassle.", info.BusinessName)
	}

	if err := srv.fillContent(ctx, page); err != nil {
		return nil, err
	}
	page.Graph = jsonld.Nest(page.Schemas)

	return page, nil
}

func (srv *pageService) fillContent(ctx context.Context, page *usecase.Page) error {
	switch page.Path {
	case "/":
		featured, err := cached(ctx, srv.cache, cacheKeyFeaturedTestimonials, func(ctx context.Context) ([]*entity.Testimonial, error) {
			return srv.testimonialRepo.List(ctx, repository.TestimonialFilter{FeaturedOnly: true, Limit: homeTestimonialCount})
		})
		if err != nil {
			return fmt.Errorf("failed to load featured testimonials: %w", err)
		}
		if len(featured) == 0 {
			featured = content.FallbackTestimonials()
		}
		page.Testimonials = featured

	case "/faq":
		page.FAQs = content.FAQs()
		page.Schemas = append(page.Schemas, jsonld.FAQSchema(page.FAQs))

	case "/areas-we-serve":
		page.ServiceAreas = content.ServiceAreas()

	case "/testimonials":
		all, err := cached(ctx, srv.cache, cacheKeyAllTestimonials, func(ctx context.Context) ([]*entity.Testimonial, error) {
			return srv.testimonialRepo.List(ctx, repository.TestimonialFilter{})
		})
		if err != nil {
			return fmt.Errorf("failed to load testimonials: %w", err)
		}
		page.Testimonials = all
		page.TestimonialGroups = groupTestimonials(all)

	case "/contact":
		locations, err := cached(ctx, srv.cache, cacheKeyLocations, srv.locationRepo.List)
		if err != nil {
			return fmt.Errorf("failed to load locations: %w", err)
		}
		if len(locations) > 0 {
			page.PrimaryLocation = locations[0]
		}
		page.QRCode = srv.contactQRCode(ctx, page.Business)
	}

	return nil
}

// contactQRCode encodes a tel: link, or the site URL when no phone is set.
// A generation failure only drops the image.
func (srv *pageService) contactQRCode(ctx context.Context, info *entity.BusinessInfo) string {
	target := srv.assembler.BaseURL()
	if info.Telephone != "" {
		target = "tel:" + info.Telephone
	}

	uri, err := srv.qrcode.GenerateDataURI(target)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Failed to generate contact QR code", "error", err)

		return ""
	}

	return uri
}

func (srv *pageService) seoSettings(ctx context.Context) (*entity.SeoSettings, error) {
	seo, err := cached(ctx, srv.cache, cacheKeySeo, func(ctx context.Context) (*entity.SeoSettings, error) {
		seo, err := srv.seoRepo.Find(ctx)
		if errors.Is(err, repository.ErrSeoSettingsNotFound) {
			return &entity.SeoSettings{}, nil
		}

		return seo, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load seo settings: %w", err)
	}

	return seo, nil
}

func (srv *pageService) businessInfo(ctx context.Context) (*entity.BusinessInfo, error) {
	info, err := cached(ctx, srv.cache, cacheKeyBusiness, func(ctx context.Context) (*entity.BusinessInfo, error) {
		info, err := srv.businessRepo.Find(ctx)
		if errors.Is(err, repository.ErrBusinessInfoNotFound) {
			return &entity.BusinessInfo{BusinessName: srv.defaultName}, nil
		}

		return info, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load business info: %w", err)
	}

	return info, nil
}

func findRoute(path string) (pageRoute, bool) {
	for _, route := range pageRoutes {
		if route.path == path {
			return route, true
		}
	}

	return pageRoute{}, false
}

func documentTitle(route pageRoute, seo *entity.SeoSettings, defaultName string) string {
	if route.pageType == entity.PageTypeHome {
		return route.title
	}

	siteName := seo.SiteName
	if siteName == "" {
		siteName = defaultName
	}

	return route.title + " | " + siteName
}

func groupTestimonials(testimonials []*entity.Testimonial) []usecase.TestimonialGroup {
	grouped := entity.GroupTestimonialsByCategory(testimonials)

	groups := make([]usecase.TestimonialGroup, 0, len(entity.TestimonialCategories))
	for _, category := range entity.TestimonialCategories {
		groups = append(groups, usecase.TestimonialGroup{
			Category:     category,
			Label:        category.Label(),
			Testimonials: grouped[category],
		})
	}

	return groups
}

// cached is the typed form of service.Cache.GetOrFetch.
func cached[T any](ctx context.Context, c service.Cache, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	v, err := c.GetOrFetch(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}

	typed, ok := v.(T)
	if !ok {
		return zero, errors.Errorf("cache entry %q has type %T", key, v)
	}

	return typed, nil
}
