package handler

import (
	"net/http"
	"testing"
	"time"

	mockUC "housecash/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	e := newEcho()
	e.GET("/health", HealthCheck)

	rec := serve(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHealthHandler_DBCheck(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		healthUC := mockUC.NewMockHealthUsecase(t)
		h := NewHealthHandler(HealthHandlerParams{HealthUC: healthUC, Logger: discardLogger()})
		e := newEcho()
		e.GET("/api/db-check", h.DBCheck)

		now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		healthUC.EXPECT().CheckDatabase(mock.Anything).Return(now, nil)

		rec := serve(e, http.MethodGet, "/api/db-check", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","message":"Database connection successful","time":"2024-05-01T10:00:00Z"}`, rec.Body.String())
	})

	t.Run("failure", func(t *testing.T) {
		healthUC := mockUC.NewMockHealthUsecase(t)
		h := NewHealthHandler(HealthHandlerParams{HealthUC: healthUC, Logger: discardLogger()})
		e := newEcho()
		e.GET("/api/db-check", h.DBCheck)

		healthUC.EXPECT().CheckDatabase(mock.Anything).Return(time.Time{}, errors.New("database ping failed: dial tcp"))

		rec := serve(e, http.MethodGet, "/api/db-check", "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decode[dbCheckResponse](t, rec)
		assert.Equal(t, "error", body.Status)
		assert.Equal(t, "Database connection failed", body.Message)
		assert.Contains(t, body.Error, "database ping failed")
	})
}
