package handler

import (
	"log/slog"
	"net/http"

	"housecash/internal/delivery/api/response"
	domainerrors "housecash/internal/domain/errors"
	"housecash/internal/infra/geo"
	"housecash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

func (h *LocationHandler) ListLocations(c echo.Context) error {
	locations, err := h.locationUC.ListLocations(c.Request().Context())
	if err != nil {
		return response.Fail(c, h.logger, err, domainerrors.ErrLocationsFetchFailed)
	}

	return response.Success(c, http.StatusOK, locations)
}

// ReplaceLocations swaps the whole collection. Accepts {"locations": [...]} or a bare array.
func (h *LocationHandler) ReplaceLocations(c echo.Context) error {
	inputs, err := bindList[usecase.LocationInput](c, "locations")
	if err != nil {
		return response.BindingError(c, "Invalid locations input")
	}

	locations := make([]*usecase.LocationInput, 0, len(inputs))
	for i := range inputs {
		if err := c.Validate(&inputs[i]); err != nil {
			return response.ValidationError(c, err)
		}
		locations = append(locations, &inputs[i])
	}

	if _, err := h.locationUC.ReplaceLocations(c.Request().Context(), locations); err != nil {
		return response.Fail(c, h.logger, err, domainerrors.ErrLocationsUpdateFailed)
	}

	return response.OK(c)
}

// LocationsGeoJSON returns the locations with coordinates as a FeatureCollection.
func (h *LocationHandler) LocationsGeoJSON(c echo.Context) error {
	locations, err := h.locationUC.ListLocations(c.Request().Context())
	if err != nil {
		return response.Fail(c, h.logger, err, domainerrors.ErrLocationsFetchFailed)
	}

	body, err := geo.LocationsFeatureCollection(locations).MarshalJSON()
	if err != nil {
		return response.Fail(c, h.logger, err, domainerrors.ErrLocationsFetchFailed)
	}

	return c.Blob(http.StatusOK, "application/geo+json", body)
}
