package handler

import (
	"log/slog"
	"net/http"

	"housecash/internal/delivery/api/response"
	domainerrors "housecash/internal/domain/errors"
	"housecash/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TestimonialHandlerParams holds dependencies for TestimonialHandler, injected by Fx.
type TestimonialHandlerParams struct {
	fx.In

	TestimonialUC usecase.TestimonialUsecase
	Logger        *slog.Logger
}

// TestimonialHandler holds dependencies for testimonial-related handlers
type TestimonialHandler struct {
	testimonialUC usecase.TestimonialUsecase
	logger        *slog.Logger
}

// NewTestimonialHandler is the constructor for TestimonialHandler
func NewTestimonialHandler(params TestimonialHandlerParams) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialUC: params.TestimonialUC,
		logger:        params.Logger,
	}
}

// ListTestimonials supports ?featured=true and ?limit=n.
func (h *TestimonialHandler) ListTestimonials(c echo.Context) error {
	var req usecase.ListTestimonialsInput
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return response.BindingError(c, "Invalid query parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	testimonials, err := h.testimonialUC.ListTestimonials(c.Request().Context(), &req)
	if err != nil {
		return response.Fail(c, h.logger, err, domainerrors.ErrTestimonialsFetchFailed)
	}

	return response.Success(c, http.StatusOK, testimonials)
}

func (h *TestimonialHandler) GetTestimonial(c echo.Context) error {
	id, ok := testimonialID(c)
	if !ok {
		return response.Fail(c, h.logger, domainerrors.ErrTestimonialNotFound, domainerrors.ErrTestimonialNotFound)
	}

	testimonial, err := h.testimonialUC.GetTestimonial(c.Request().Context(), id)
	if err != nil {
		return response.Fail(c, h.logger, err, domainerrors.ErrTestimonialsFetchFailed)
	}

	return response.Success(c, http.StatusOK, testimonial)
}

func (h *TestimonialHandler) CreateTestimonial(c echo.Context) error {
	var req usecase.TestimonialInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid testimonial input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	testimonial, err := h.testimonialUC.CreateTestimonial(c.Request().Context(), &req)
	if err != nil {
		return response.Fail(c, h.logger, err, domainerrors.ErrTestimonialCreateFailed)
	}

	return response.Success(c, http.StatusCreated, testimonial)
}

// UpdateTestimonial replaces every field. Rating and date are kept when omitted.
func (h *TestimonialHandler) UpdateTestimonial(c echo.Context) error {
	id, ok := testimonialID(c)
	if !ok {
		return response.Fail(c, h.logger, domainerrors.ErrTestimonialNotFound, domainerrors.ErrTestimonialNotFound)
	}

	var req usecase.TestimonialInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid testimonial input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	testimonial, err := h.testimonialUC.UpdateTestimonial(c.Request().Context(), id, &req)
	if err != nil {
		return response.Fail(c, h.logger, err, domainerrors.ErrTestimonialUpdateFailed)
	}

	return response.Success(c, http.StatusOK, testimonial)
}

func (h *TestimonialHandler) PatchTestimonial(c echo.Context) error {
	id, ok := testimonialID(c)
	if !ok {
		return response.Fail(c, h.logger, domainerrors.ErrTestimonialNotFound, domainerrors.ErrTestimonialNotFound)
	}

	var req usecase.TestimonialPatchInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid testimonial input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	testimonial, err := h.testimonialUC.PatchTestimonial(c.Request().Context(), id, &req)
	if err != nil {
		return response.Fail(c, h.logger, err, domainerrors.ErrTestimonialUpdateFailed)
	}

	return response.Success(c, http.StatusOK, testimonial)
}

func (h *TestimonialHandler) DeleteTestimonial(c echo.Context) error {
	id, ok := testimonialID(c)
	if !ok {
		return response.Fail(c, h.logger, domainerrors.ErrTestimonialNotFound, domainerrors.ErrTestimonialNotFound)
	}

	if err := h.testimonialUC.DeleteTestimonial(c.Request().Context(), id); err != nil {
		return response.Fail(c, h.logger, err, domainerrors.ErrTestimonialDeleteFailed)
	}

	return response.OK(c)
}

// testimonialID treats a malformed id like an unknown one.
func testimonialID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))

	return id, err == nil
}
