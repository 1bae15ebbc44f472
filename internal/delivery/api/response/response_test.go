package response

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "housecash/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFail(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantError  string
		wantLogged bool
	}{
		{
			name:       "client error passes through",
			err:        errors.WithStack(domainerrors.ErrTestimonialNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "TESTIMONIAL_NOT_FOUND",
			wantError:  "Testimonial not found",
		},
		{
			name:       "database error uses the endpoint message",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("pq: deadlock detected"), "failed to replace locations"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "LOCATIONS_UPDATE_FAILED",
			wantError:  "Failed to update locations",
			wantLogged: true,
		},
		{
			name:       "plain error uses the endpoint message",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "LOCATIONS_UPDATE_FAILED",
			wantError:  "Failed to update locations",
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, nil))

			e := echo.New()
			req := httptest.NewRequest(http.MethodPut, "/api/locations", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, Fail(c, logger, tt.err, domainerrors.ErrLocationsUpdateFailed))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantError, body.Error)
			assert.Empty(t, body.Details)

			if tt.wantLogged {
				assert.Contains(t, logs.String(), "Failed to update locations")
				assert.Contains(t, logs.String(), "path=/api/locations")
			} else {
				assert.Empty(t, logs.String())
			}
		})
	}
}
