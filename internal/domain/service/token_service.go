package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for admin session tokens.
type Claims struct {
	Subject string
	Roles   []string
	Type    string
	jwt.RegisteredClaims
}

// TokenService issues and validates admin session tokens.
type TokenService interface {
	// GenerateAccessToken creates a signed token for subject with roles.
	GenerateAccessToken(subject string, roles []string) (string, error)

	// ValidateToken checks signature, expiry and type of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the session lifetime.
	AccessTokenDuration() time.Duration
}
