package impl

import (
	"context"
	"testing"
	"time"

	"housecash/config"
	"housecash/internal/domain/constants"
	domainerrors "housecash/internal/domain/errors"
	"housecash/internal/domain/service"
	mockSvc "housecash/internal/mocks/service"
	"housecash/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminHash = "$2a$12$hash"

type sessionServiceFixtures struct {
	service      usecase.SessionUsecase
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestSessionService(t *testing.T, enabled bool) sessionServiceFixtures {
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	tokenService.EXPECT().AccessTokenDuration().Return(7 * 24 * time.Hour).Maybe()

	cfg := &config.Config{Auth: &config.AuthConfig{
		Enabled:           enabled,
		AdminEmail:        "owner@example.com",
		AdminPasswordHash: testAdminHash,
	}}

	return sessionServiceFixtures{
		service: NewSessionService(SessionServiceParams{
			Config:       cfg,
			Hasher:       hasher,
			TokenService: tokenService,
			Logger:       discardLogger(),
		}),
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestSessionService_Disabled_AcceptsAnything(t *testing.T) {
	fx := createTestSessionService(t, false)
	ctx := context.Background()

	session, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "who@ever", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, stubSessionToken, session.Token)
	assert.Equal(t, 7*24*time.Hour, session.ExpiresIn)
	assert.Equal(t, constants.RoleAdmin, session.User.Role)

	user, err := fx.service.Authenticate(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "Admin User", user.Name)
	assert.False(t, fx.service.Enabled())
}

func TestSessionService_Login_Success(t *testing.T) {
	fx := createTestSessionService(t, true)
	ctx := context.Background()

	fx.hasher.EXPECT().Check("s3cret", testAdminHash).Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken("owner@example.com", []string{constants.RoleAdmin}).Return("signed.jwt", nil)

	session, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "Owner@Example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", session.Token)
	assert.Equal(t, "owner@example.com", session.User.Email)
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	fx := createTestSessionService(t, true)

	fx.hasher.EXPECT().Check("nope", testAdminHash).Return(false)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "owner@example.com", Password: "nope"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_Login_WrongEmailSkipsHash(t *testing.T) {
	fx := createTestSessionService(t, true)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "intruder@example.com", Password: "s3cret"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_Authenticate(t *testing.T) {
	fx := createTestSessionService(t, true)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateToken("good").Return(&service.Claims{
		Subject: "owner@example.com",
		Roles:   []string{constants.RoleAdmin},
		Type:    "access",
	}, nil)
	fx.tokenService.EXPECT().ValidateToken("bad").Return(nil, errors.New("token is expired"))
	fx.tokenService.EXPECT().ValidateToken("norole").Return(&service.Claims{Subject: "x"}, nil)

	user, err := fx.service.Authenticate(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", user.Email)

	_, err = fx.service.Authenticate(ctx, "bad")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = fx.service.Authenticate(ctx, "norole")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = fx.service.Authenticate(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
