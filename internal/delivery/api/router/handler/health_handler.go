package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "housecash/internal/delivery/context"
	"housecash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	HealthUC usecase.HealthUsecase
	Logger   *slog.Logger
}

type HealthHandler struct {
	healthUC usecase.HealthUsecase
	logger   *slog.Logger
}

func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		healthUC: params.HealthUC,
		logger:   params.Logger,
	}
}

type dbCheckResponse struct {
	Status  string     `json:"status"`
	Message string     `json:"message"`
	Time    *time.Time `json:"time,omitempty"`
	Error   string     `json:"error,omitempty"`
}

// HealthCheck is the liveness probe.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// DBCheck runs SELECT NOW() against the primary.
func (h *HealthHandler) DBCheck(c echo.Context) error {
	ctx := c.Request().Context()

	now, err := h.healthUC.CheckDatabase(ctx)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Database check failed", slog.Any("error", err))

		return c.JSON(http.StatusInternalServerError, dbCheckResponse{
			Status:  "error",
			Message: "Database connection failed",
			Error:   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, dbCheckResponse{
		Status:  "ok",
		Message: "Database connection successful",
		Time:    &now,
	})
}
