package handler

import (
	"net/http"
	"testing"
	"time"

	"housecash/config"
	"housecash/internal/domain/constants"
	"housecash/internal/domain/entity"
	domainerrors "housecash/internal/domain/errors"
	mockUC "housecash/internal/mocks/usecase"
	"housecash/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSessionTestHandler(t *testing.T) (*SessionHandler, *mockUC.MockSessionUsecase) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvProduction

	return NewSessionHandler(SessionHandlerParams{SessionUC: sessionUC, Config: cfg, Logger: discardLogger()}), sessionUC
}

func TestSessionHandler_Login_SetsCookie(t *testing.T) {
	h, sessionUC := newSessionTestHandler(t)
	e := newEcho()
	e.POST("/api/admin/login", h.Login)

	sessionUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "admin@example.com", Password: "secret"}).
		Return(&usecase.Session{
			Token:     "signed-token",
			ExpiresIn: time.Hour,
			User:      &entity.AdminUser{ID: "1", Email: "admin@example.com", Role: constants.RoleAdmin},
		}, nil)

	rec := serve(e, http.MethodPost, "/api/admin/login", `{"email":"admin@example.com","password":"secret"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, constants.AuthCookieName, cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.Equal(t, 3600, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
}

func TestSessionHandler_Login_Rejected(t *testing.T) {
	h, sessionUC := newSessionTestHandler(t)
	e := newEcho()
	e.POST("/api/admin/login", h.Login)

	sessionUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := serve(e, http.MethodPost, "/api/admin/login", `{"email":"a@b.co","password":"x"}`)

	assert.Equal(t, domainerrors.ErrInvalidCredentials.HTTPCode(), rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestSessionHandler_Logout_ClearsCookie(t *testing.T) {
	h, _ := newSessionTestHandler(t)
	e := newEcho()
	e.POST("/api/admin/logout", h.Logout)

	rec := serve(e, http.MethodPost, "/api/admin/logout", "")

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
