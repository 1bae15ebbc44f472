package handler

import (
	"log/slog"
	"net/http"
	"time"

	"housecash/config"
	"housecash/internal/delivery/api/response"
	"housecash/internal/domain/constants"
	domainerrors "housecash/internal/domain/errors"
	"housecash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// SessionHandler issues and clears the admin session cookie.
type SessionHandler struct {
	sessionUC    usecase.SessionUsecase
	secureCookie bool
	logger       *slog.Logger
}

func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC:    params.SessionUC,
		secureCookie: params.Config.Env.Env != constants.EnvDevelop,
		logger:       params.Logger,
	}
}

type loginResponse struct {
	Success bool `json:"success"`
	User    any  `json:"user"`
}

// Login accepts JSON or form credentials and sets the auth-token cookie.
func (h *SessionHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	session, err := h.sessionUC.Login(c.Request().Context(), &req)
	if err != nil {
		return response.Fail(c, h.logger, err, domainerrors.ErrInvalidCredentials)
	}

	c.SetCookie(h.cookie(session.Token, session.ExpiresIn))

	return response.Success(c, http.StatusOK, loginResponse{Success: true, User: session.User})
}

func (h *SessionHandler) Logout(c echo.Context) error {
	c.SetCookie(h.cookie("", -1))

	return response.OK(c)
}

func (h *SessionHandler) cookie(value string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}

	if ttl < 0 {
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
	} else {
		cookie.MaxAge = int(ttl.Seconds())
	}

	return cookie
}
