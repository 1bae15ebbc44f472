package handler

import (
	"log/slog"
	"net/http"

	"housecash/internal/delivery/api/response"
	domainerrors "housecash/internal/domain/errors"
	"housecash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SeoHandlerParams holds dependencies for SeoHandler, injected by Fx.
type SeoHandlerParams struct {
	fx.In

	SeoUC  usecase.SeoUsecase
	Logger *slog.Logger
}

type SeoHandler struct {
	seoUC  usecase.SeoUsecase
	logger *slog.Logger
}

func NewSeoHandler(params SeoHandlerParams) *SeoHandler {
	return &SeoHandler{
		seoUC:  params.SeoUC,
		logger: params.Logger,
	}
}

// GetSeoSettings creates the default row on first access.
func (h *SeoHandler) GetSeoSettings(c echo.Context) error {
	settings, err := h.seoUC.GetSettings(c.Request().Context())
	if err != nil {
		return response.Fail(c, h.logger, err, domainerrors.ErrSeoSettingsFetchFailed)
	}

	return response.Success(c, http.StatusOK, settings)
}

func (h *SeoHandler) SaveSeoSettings(c echo.Context) error {
	var req usecase.SeoSettingsInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid SEO settings input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	settings, err := h.seoUC.SaveSettings(c.Request().Context(), &req)
	if err != nil {
		return response.Fail(c, h.logger, err, domainerrors.ErrSeoSettingsUpdateFailed)
	}

	return response.Success(c, http.StatusOK, settings)
}
