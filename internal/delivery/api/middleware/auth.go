package middleware

import (
	"net/http"
	"strings"

	"housecash/internal/delivery/api/response"
	deliverycontext "housecash/internal/delivery/context"
	"housecash/internal/domain/constants"
	"housecash/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminLoginPath is where unauthenticated page requests are sent.
const AdminLoginPath = "/admin/login"

// AuthMiddleware guards the admin pages and API writes with the session cookie.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: sessionUC}
}

// RequireAdmin rejects requests without a valid admin session. When sessions
// are disabled every request passes.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.sessionUC.Enabled() {
			return next(c)
		}

		cookie, err := c.Cookie(constants.AuthCookieName)
		if err != nil || cookie.Value == "" {
			return m.reject(c, "Authentication required")
		}

		admin, err := m.sessionUC.Authenticate(c.Request().Context(), cookie.Value)
		if err != nil {
			return m.reject(c, "Invalid or expired session")
		}

		ctx := deliverycontext.WithAdmin(c.Request().Context(), admin)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireAdminForWrites applies RequireAdmin to every method except GET and HEAD.
func (m *AuthMiddleware) RequireAdminForWrites(next echo.HandlerFunc) echo.HandlerFunc {
	guarded := m.RequireAdmin(next)

	return func(c echo.Context) error {
		switch c.Request().Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return next(c)
		default:
			return guarded(c)
		}
	}
}

func (m *AuthMiddleware) reject(c echo.Context, message string) error {
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		return response.Unauthorized(c, message)
	}

	return c.Redirect(http.StatusSeeOther, AdminLoginPath)
}
