package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"housecash/config"
	deliverycontext "housecash/internal/delivery/context"
	"housecash/internal/domain/constants"
	"housecash/internal/domain/entity"
	domainerrors "housecash/internal/domain/errors"
	"housecash/internal/domain/service"
	"housecash/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// stubSessionToken is the cookie value issued while auth is disabled.
const stubSessionToken = "mock-token"

const adminDisplayName = "Admin User"

// SessionServiceParams holds the dependencies of the session service.
type SessionServiceParams struct {
	fx.In

	Config       *config.Config
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

type sessionService struct {
	auth         *config.AuthConfig
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewSessionService creates the admin session service.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	auth := params.Config.Auth
	if auth == nil {
		auth = &config.AuthConfig{}
	}

	return &sessionService{
		auth:         auth,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) Enabled() bool {
	return srv.auth.Enabled
}

// Login accepts any credentials while auth is disabled.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.Session, error) {
	if !srv.auth.Enabled {
		return &usecase.Session{
			Token:     stubSessionToken,
			ExpiresIn: srv.tokenService.AccessTokenDuration(),
			User:      srv.stubUser(),
		}, nil
	}

	email := strings.TrimSpace(input.Email)
	if !strings.EqualFold(email, srv.auth.AdminEmail) || srv.auth.AdminPasswordHash == "" ||
		!srv.hasher.Check(input.Password, srv.auth.AdminPasswordHash) {
		srv.log(ctx).Warn("Admin login rejected", "email", email)

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateAccessToken(srv.auth.AdminEmail, []string{constants.RoleAdmin})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("Admin logged in", "email", srv.auth.AdminEmail)

	return &usecase.Session{
		Token:     token,
		ExpiresIn: srv.tokenService.AccessTokenDuration(),
		User:      adminUser(srv.auth.AdminEmail),
	}, nil
}

// Authenticate accepts any token while auth is disabled.
func (srv *sessionService) Authenticate(ctx context.Context, token string) (*entity.AdminUser, error) {
	if !srv.auth.Enabled {
		return srv.stubUser(), nil
	}
	if token == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Invalid admin session token", "error", err)

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, err.Error())
	}
	if !slices.Contains(claims.Roles, constants.RoleAdmin) {
		return nil, domainerrors.ErrUnauthorized
	}

	return adminUser(claims.Subject), nil
}

func (srv *sessionService) stubUser() *entity.AdminUser {
	email := srv.auth.AdminEmail
	if email == "" {
		email = "admin@webuyhousecash.com.au"
	}

	return &entity.AdminUser{ID: "1", Name: adminDisplayName, Email: email, Role: constants.RoleAdmin}
}

func adminUser(email string) *entity.AdminUser {
	return &entity.AdminUser{ID: email, Name: adminDisplayName, Email: email, Role: constants.RoleAdmin}
}
