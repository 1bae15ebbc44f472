package impl

import (
	"context"
	"testing"

	"housecash/config"
	"housecash/internal/content"
	"housecash/internal/domain/entity"
	domainerrors "housecash/internal/domain/errors"
	"housecash/internal/domain/repository"
	"housecash/internal/jsonld"
	mockRepo "housecash/internal/mocks/repository"
	mockSvc "housecash/internal/mocks/service"
	"housecash/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://example.test"

type pageServiceFixtures struct {
	service         usecase.PageUsecase
	seoRepo         *mockRepo.MockSeoSettingsRepository
	businessRepo    *mockRepo.MockBusinessInfoRepository
	locationRepo    *mockRepo.MockLocationRepository
	testimonialRepo *mockRepo.MockTestimonialRepository
	qrcode          *mockSvc.MockQRCodeService
}

func createTestPageService(t *testing.T) pageServiceFixtures {
	cfg := &config.Config{}
	cfg.Site.DefaultName = "WeBuyHouseCash Melbourne"

	cache := mockSvc.NewMockCache(t)
	cache.EXPECT().
		GetOrFetch(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, fetch func(context.Context) (any, error)) (any, error) {
			return fetch(ctx)
		}).
		Maybe()

	fx := pageServiceFixtures{
		seoRepo:         mockRepo.NewMockSeoSettingsRepository(t),
		businessRepo:    mockRepo.NewMockBusinessInfoRepository(t),
		locationRepo:    mockRepo.NewMockLocationRepository(t),
		testimonialRepo: mockRepo.NewMockTestimonialRepository(t),
		qrcode:          mockSvc.NewMockQRCodeService(t),
	}
	fx.service = NewPageService(PageServiceParams{
		Config:          cfg,
		SeoRepo:         fx.seoRepo,
		BusinessRepo:    fx.businessRepo,
		LocationRepo:    fx.locationRepo,
		TestimonialRepo: fx.testimonialRepo,
		Cache:           cache,
		Assembler:       jsonld.NewAssemblerWithBaseURL(testBaseURL),
		QRCode:          fx.qrcode,
		Logger:          discardLogger(),
	})

	return fx
}

func (fx pageServiceFixtures) withEmptySite(ctx context.Context) {
	fx.seoRepo.EXPECT().Find(ctx).Return(nil, repository.ErrSeoSettingsNotFound)
	fx.businessRepo.EXPECT().Find(ctx).Return(nil, repository.ErrBusinessInfoNotFound)
}

func TestPageService_GetPage_HomeFallsBackToDefaults(t *testing.T) {
	fx := createTestPageService(t)
	ctx := context.Background()
	fx.withEmptySite(ctx)

	fx.testimonialRepo.EXPECT().
		List(ctx, repository.TestimonialFilter{FeaturedOnly: true, Limit: 3}).
		Return([]*entity.Testimonial{}, nil)

	page, err := fx.service.GetPage(ctx, "/")
	require.NoError(t, err)

	assert.Equal(t, "WeBuyHouseCash Melbourne", page.Business.BusinessName)
	assert.Equal(t, "WeBuyHouseCash Melbourne | Sell Your House Fast For Cash", page.DocumentTitle)
	assert.Equal(t, content.FallbackTestimonials(), page.Testimonials)

	require.Len(t, page.Schemas, 3)
	assert.Equal(t, "WebSite", page.Schemas[0].Type())
	assert.Equal(t, "BreadcrumbList", page.Schemas[1].Type())
	assert.Equal(t, "RealEstateAgent", page.Schemas[2].Type())
	assert.Equal(t, "ItemList", page.Graph.Type())

	assert.Len(t, page.Hours, 3)
}

func TestPageService_GetPage_FAQAddsSchema(t *testing.T) {
	fx := createTestPageService(t)
	ctx := context.Background()
	fx.withEmptySite(ctx)

	page, err := fx.service.GetPage(ctx, "/faq")
	require.NoError(t, err)

	assert.Len(t, page.FAQs, 5)
	require.Len(t, page.Schemas, 3)
	assert.Equal(t, "FAQPage", page.Schemas[2].Type())
	assert.Equal(t, "Frequently Asked Questions | WeBuyHouseCash Melbourne", page.DocumentTitle)
}

func TestPageService_GetPage_TestimonialsGroupedByCategory(t *testing.T) {
	fx := createTestPageService(t)
	ctx := context.Background()
	fx.seoRepo.EXPECT().Find(ctx).Return(&entity.SeoSettings{SiteName: "Cash4Houses"}, nil)
	fx.businessRepo.EXPECT().Find(ctx).Return(&entity.BusinessInfo{BusinessName: "Acme"}, nil)

	fx.testimonialRepo.EXPECT().List(ctx, repository.TestimonialFilter{}).Return([]*entity.Testimonial{
		{Name: "A", Category: entity.CategoryDivorce},
		{Name: "B", Category: entity.CategoryForeclosure},
		{Name: "C", Category: entity.CategoryDivorce},
	}, nil)

	page, err := fx.service.GetPage(ctx, "/testimonials")
	require.NoError(t, err)

	assert.Equal(t, "Customer Testimonials | Cash4Houses", page.DocumentTitle)
	require.Len(t, page.TestimonialGroups, 4)
	assert.Equal(t, entity.CategoryForeclosure, page.TestimonialGroups[0].Category)
	assert.Len(t, page.TestimonialGroups[0].Testimonials, 1)
	assert.Equal(t, "Divorce Sale", page.TestimonialGroups[2].Label)
	assert.Len(t, page.TestimonialGroups[2].Testimonials, 2)
	assert.Empty(t, page.TestimonialGroups[3].Testimonials)
	assert.Len(t, page.Schemas, 2)
}

func TestPageService_GetPage_ContactQRCodeUsesTelephone(t *testing.T) {
	fx := createTestPageService(t)
	ctx := context.Background()
	fx.seoRepo.EXPECT().Find(ctx).Return(&entity.SeoSettings{}, nil)
	fx.businessRepo.EXPECT().Find(ctx).Return(&entity.BusinessInfo{BusinessName: "Acme", Telephone: "+61 3 9000 0000"}, nil)
	fx.locationRepo.EXPECT().List(ctx).Return([]*entity.BusinessLocation{{Name: "HQ", IsPrimary: true}}, nil)
	fx.qrcode.EXPECT().GenerateDataURI("tel:+61 3 9000 0000").Return("data:image/png;base64,AAA", nil)

	page, err := fx.service.GetPage(ctx, "/contact")
	require.NoError(t, err)

	assert.Equal(t, "data:image/png;base64,AAA", page.QRCode)
	require.NotNil(t, page.PrimaryLocation)
	assert.Equal(t, "HQ", page.PrimaryLocation.Name)
	assert.Contains(t, page.Description, "Contact Acme")
}

func TestPageService_GetPage_ContactQRCodeFailureIsSoft(t *testing.T) {
	fx := createTestPageService(t)
	ctx := context.Background()
	fx.withEmptySite(ctx)
	fx.locationRepo.EXPECT().List(ctx).Return(nil, nil)
	fx.qrcode.EXPECT().GenerateDataURI(testBaseURL).Return("", errors.New("encode failed"))

	page, err := fx.service.GetPage(ctx, "/contact")
	require.NoError(t, err)
	assert.Empty(t, page.QRCode)
	assert.Nil(t, page.PrimaryLocation)
}

func TestPageService_GetPage_UnknownPath(t *testing.T) {
	fx := createTestPageService(t)

	_, err := fx.service.GetPage(context.Background(), "/nope")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestPageService_GetPage_SeoFailure(t *testing.T) {
	fx := createTestPageService(t)
	ctx := context.Background()
	fx.seoRepo.EXPECT().Find(ctx).Return(nil, errors.New("db down"))

	_, err := fx.service.GetPage(ctx, "/about")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load seo settings")
}

func TestPageService_Sitemap(t *testing.T) {
	fx := createTestPageService(t)

	entries := fx.service.Sitemap()
	require.Len(t, entries, 7)
	assert.Equal(t, testBaseURL+"/", entries[0].Loc)
	assert.Equal(t, testBaseURL+"/testimonials", entries[6].Loc)
}
