package handler

import (
	"net/http"
	"testing"
	"time"

	"housecash/internal/domain/entity"
	domainerrors "housecash/internal/domain/errors"
	mockUC "housecash/internal/mocks/usecase"
	"housecash/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testimonialHandlerFixtures struct {
	echo          *echo.Echo
	testimonialUC *mockUC.MockTestimonialUsecase
}

func createTestTestimonialHandler(t *testing.T) testimonialHandlerFixtures {
	testimonialUC := mockUC.NewMockTestimonialUsecase(t)
	h := NewTestimonialHandler(TestimonialHandlerParams{TestimonialUC: testimonialUC, Logger: discardLogger()})

	e := newEcho()
	e.GET("/api/testimonials", h.ListTestimonials)
	e.POST("/api/testimonials", h.CreateTestimonial)
	e.GET("/api/testimonials/:id", h.GetTestimonial)
	e.PUT("/api/testimonials/:id", h.UpdateTestimonial)
	e.PATCH("/api/testimonials/:id", h.PatchTestimonial)
	e.DELETE("/api/testimonials/:id", h.DeleteTestimonial)

	return testimonialHandlerFixtures{echo: e, testimonialUC: testimonialUC}
}

func TestTestimonialHandler_GetTestimonial_NotFound(t *testing.T) {
	fx := createTestTestimonialHandler(t)
	id := uuid.New()

	fx.testimonialUC.EXPECT().GetTestimonial(mock.Anything, id).
		Return(nil, errors.Wrap(domainerrors.ErrTestimonialNotFound, "failed to find testimonial"))

	rec := serve(fx.echo, http.MethodGet, "/api/testimonials/"+id.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Testimonial not found", decode[errorBody](t, rec).Error)
}

func TestTestimonialHandler_GetTestimonial_MalformedID(t *testing.T) {
	fx := createTestTestimonialHandler(t)

	rec := serve(fx.echo, http.MethodGet, "/api/testimonials/not-a-uuid", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "TESTIMONIAL_NOT_FOUND", decode[errorBody](t, rec).Code)
}

func TestTestimonialHandler_ListTestimonials_Query(t *testing.T) {
	fx := createTestTestimonialHandler(t)
	items := []*entity.Testimonial{{ID: uuid.New(), Name: "Sam", Rating: 5, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}}

	fx.testimonialUC.EXPECT().
		ListTestimonials(mock.Anything, &usecase.ListTestimonialsInput{FeaturedOnly: true, Limit: 3}).
		Return(items, nil)

	rec := serve(fx.echo, http.MethodGet, "/api/testimonials?featured=true&limit=3", "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[[]entity.Testimonial](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "Sam", got[0].Name)
}

func TestTestimonialHandler_CreateTestimonial(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(fx testimonialHandlerFixtures)
		wantStatus int
		wantCode   string
	}{
		{
			name: "created",
			body: `{"name":"Sam","content":"Great","category":"inherited"}`,
			setup: func(fx testimonialHandlerFixtures) {
				fx.testimonialUC.EXPECT().
					CreateTestimonial(mock.Anything, &usecase.TestimonialInput{Name: "Sam", Content: "Great", Category: entity.CategoryInherited}).
					Return(&entity.Testimonial{ID: uuid.New(), Name: "Sam", Rating: 5}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "rating out of range",
			body:       `{"name":"Sam","content":"Great","rating":9}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "unknown category",
			body:       `{"name":"Sam","content":"Great","category":"probate"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "malformed json",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTestimonialHandler(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			rec := serve(fx.echo, http.MethodPost, "/api/testimonials", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decode[errorBody](t, rec).Code)
			}
		})
	}
}

func TestTestimonialHandler_PatchTestimonial_OnlyPresentFields(t *testing.T) {
	fx := createTestTestimonialHandler(t)
	id := uuid.New()

	fx.testimonialUC.EXPECT().
		PatchTestimonial(mock.Anything, id, mock.MatchedBy(func(in *usecase.TestimonialPatchInput) bool {
			return in.Featured != nil && *in.Featured && in.Name == nil && in.Rating == nil
		})).
		Return(&entity.Testimonial{ID: id, Featured: true}, nil)

	rec := serve(fx.echo, http.MethodPatch, "/api/testimonials/"+id.String(), `{"featured":true}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTestimonialHandler_DeleteTestimonial(t *testing.T) {
	fx := createTestTestimonialHandler(t)
	id := uuid.New()

	fx.testimonialUC.EXPECT().DeleteTestimonial(mock.Anything, id).Return(nil)

	rec := serve(fx.echo, http.MethodDelete, "/api/testimonials/"+id.String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}
