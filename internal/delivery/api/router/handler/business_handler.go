package handler

import (
	"log/slog"
	"net/http"

	"housecash/internal/delivery/api/response"
	"housecash/internal/domain/entity"
	domainerrors "housecash/internal/domain/errors"
	"housecash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
	Logger     *slog.Logger
}

// BusinessHandler serves the business singleton and its hours and social columns.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
	logger     *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		businessUC: params.BusinessUC,
		logger:     params.Logger,
	}
}

// GetBusinessInfo returns the record, or {} when none is stored.
func (h *BusinessHandler) GetBusinessInfo(c echo.Context) error {
	info, err := h.businessUC.GetBusinessInfo(c.Request().Context())
	if err != nil {
		return response.Fail(c, h.logger, err, domainerrors.ErrBusinessInfoFetchFailed)
	}
	if info == nil {
		return response.Success(c, http.StatusOK, struct{}{})
	}

	return response.Success(c, http.StatusOK, info)
}

func (h *BusinessHandler) UpdateBusinessInfo(c echo.Context) error {
	var req usecase.BusinessInfoInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid business info input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if _, err := h.businessUC.UpdateBusinessInfo(c.Request().Context(), &req); err != nil {
		return response.Fail(c, h.logger, err, domainerrors.ErrBusinessInfoUpdateFailed)
	}

	return response.OK(c)
}

func (h *BusinessHandler) GetBusinessHours(c echo.Context) error {
	hours, err := h.businessUC.GetOpeningHours(c.Request().Context())
	if err != nil {
		return response.Fail(c, h.logger, err, domainerrors.ErrBusinessHoursFetchFailed)
	}

	return response.Success(c, http.StatusOK, hours)
}

// UpdateBusinessHours accepts {"openingHours": [...]} or a bare array.
func (h *BusinessHandler) UpdateBusinessHours(c echo.Context) error {
	hours, err := bindList[entity.BusinessHour](c, "openingHours")
	if err != nil {
		return response.BindingError(c, "Invalid business hours input")
	}

	if err := h.businessUC.UpdateOpeningHours(c.Request().Context(), hours); err != nil {
		return response.Fail(c, h.logger, err, domainerrors.ErrBusinessHoursUpdateFailed)
	}

	return response.OK(c)
}

func (h *BusinessHandler) GetSocialProfiles(c echo.Context) error {
	profiles, err := h.businessUC.GetSocialProfiles(c.Request().Context())
	if err != nil {
		return response.Fail(c, h.logger, err, domainerrors.ErrSocialProfilesFetchFailed)
	}

	return response.Success(c, http.StatusOK, profiles)
}

// UpdateSocialProfiles accepts {"socialProfiles": [...]} or a bare array.
func (h *BusinessHandler) UpdateSocialProfiles(c echo.Context) error {
	profiles, err := bindList[entity.SocialProfile](c, "socialProfiles")
	if err != nil {
		return response.BindingError(c, "Invalid social profiles input")
	}

	if err := h.businessUC.UpdateSocialProfiles(c.Request().Context(), profiles); err != nil {
		return response.Fail(c, h.logger, err, domainerrors.ErrSocialProfilesUpdateFailed)
	}

	return response.OK(c)
}
