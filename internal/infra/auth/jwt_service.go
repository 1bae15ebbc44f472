// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"housecash/config"
	"housecash/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	tokenTypeAccess   = "access"
	defaultSessionTTL = 7 * 24 * time.Hour
)

var (
	errMissingSecret       = errors.New("jwt access secret must be provided")
	errInvalidToken        = errors.New("invalid token")
	errUnexpectedTokenType = errors.New("unexpected token type")
)

// jwtService signs admin session tokens with HS256.
type jwtService struct {
	accessSecret string
	accessTTL    time.Duration
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errMissingSecret
	}

	ttl := defaultSessionTTL
	if cfg.Auth != nil && cfg.Auth.SessionTTL > 0 {
		ttl = cfg.Auth.SessionTTL
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    ttl,
		now:          time.Now,
	}, nil
}

// GenerateAccessToken creates a token carrying subject and roles.
func (s *jwtService) GenerateAccessToken(subject string, roles []string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   subject,
		"iat":   now.Unix(),
		"exp":   now.Add(s.accessTTL).Unix(),
		"type":  tokenTypeAccess,
		"roles": roles,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks signature, expiry and token type.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(s.accessSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errInvalidToken
	}

	tokenType, _ := mapClaims["type"].(string)
	if tokenType != tokenTypeAccess {
		return nil, errUnexpectedTokenType
	}

	subject, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject")
	}
	expiresAt, _ := mapClaims.GetExpirationTime()
	issuedAt, _ := mapClaims.GetIssuedAt()

	return &service.Claims{
		Subject: subject,
		Roles:   rolesFromClaim(mapClaims["roles"]),
		Type:    tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: expiresAt,
			IssuedAt:  issuedAt,
		},
	}, nil
}

func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

func rolesFromClaim(raw any) []string {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}

	roles := make([]string, 0, len(list))
	for _, r := range list {
		if role, ok := r.(string); ok {
			roles = append(roles, role)
		}
	}

	return roles
}
