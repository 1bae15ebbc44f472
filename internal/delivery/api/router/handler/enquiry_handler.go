package handler

import (
	"log/slog"
	"net/http"

	"housecash/internal/delivery/api/response"
	domainerrors "housecash/internal/domain/errors"
	"housecash/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"go.uber.org/fx"
)

const defaultEnquiryListLimit = 50

// EnquiryHandlerParams holds dependencies for EnquiryHandler, injected by Fx.
type EnquiryHandlerParams struct {
	fx.In

	EnquiryUC usecase.EnquiryUsecase
	Logger    *slog.Logger
}

type EnquiryHandler struct {
	enquiryUC usecase.EnquiryUsecase
	logger    *slog.Logger
}

func NewEnquiryHandler(params EnquiryHandlerParams) *EnquiryHandler {
	return &EnquiryHandler{
		enquiryUC: params.EnquiryUC,
		logger:    params.Logger,
	}
}

// SubmitEnquiry accepts the contact form as JSON or form-encoded.
func (h *EnquiryHandler) SubmitEnquiry(c echo.Context) error {
	var req usecase.EnquiryInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid enquiry input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	enquiry, err := h.enquiryUC.SubmitEnquiry(c.Request().Context(), &req)
	if err != nil {
		return response.Fail(c, h.logger, err, domainerrors.ErrEnquiryCreateFailed)
	}

	return response.Success(c, http.StatusCreated, enquiry)
}

// ListEnquiries returns the newest enquiries. ?limit=0 returns all.
func (h *EnquiryHandler) ListEnquiries(c echo.Context) error {
	limit := defaultEnquiryListLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := cast.ToIntE(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid limit")
		}
		limit = parsed
	}

	enquiries, err := h.enquiryUC.ListEnquiries(c.Request().Context(), limit)
	if err != nil {
		return response.Fail(c, h.logger, err, domainerrors.ErrEnquiriesFetchFailed)
	}

	return response.Success(c, http.StatusOK, enquiries)
}
