// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"housecash/internal/domain/entity"
)

// LoginInput is the admin login form.
type LoginInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Session is the cookie value and lifetime issued on login.
type Session struct {
	Token     string
	ExpiresIn time.Duration
	User      *entity.AdminUser
}

// SessionUsecase defines the interface for admin session management.
type SessionUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*Session, error)

	// Authenticate resolves a cookie token to the admin it belongs to.
	Authenticate(ctx context.Context, token string) (*entity.AdminUser, error)

	// Enabled reports whether credentials are actually checked.
	Enabled() bool
}
