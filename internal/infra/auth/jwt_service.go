// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ecomshop/config"
	"ecomshop/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Access and refresh tokens never share a signing key, so a refresh token can
// never pass access-token verification or vice versa.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("access and refresh secrets must differ")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     cfg.Auth.AccessTokenTTL,
		refreshTTL:    cfg.Auth.RefreshTokenTTL,
	}, nil
}

// IssueAccessToken mints a short-lived token carrying both the session and user IDs.
func (s *jwtService) IssueAccessToken(sessionID, userID uuid.UUID) (string, error) {
	claims := &service.AccessClaims{
		SessionID: sessionID,
		UserID:    userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.accessTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.accessSecret))
}

// IssueRefreshToken mints a long-lived token carrying only the session ID.
func (s *jwtService) IssueRefreshToken(sessionID uuid.UUID) (string, error) {
	claims := &service.RefreshClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.refreshTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.refreshSecret))
}

// VerifyAccessToken parses and validates an access token string.
func (s *jwtService) VerifyAccessToken(tokenString string) (*service.AccessClaims, error) {
	claims := &service.AccessClaims{}
	if err := s.parseInto(tokenString, claims, s.accessSecret); err != nil {
		return nil, err
	}

	return claims, nil
}

// VerifyRefreshToken parses and validates a refresh token string.
func (s *jwtService) VerifyRefreshToken(tokenString string) (*service.RefreshClaims, error) {
	claims := &service.RefreshClaims{}
	if err := s.parseInto(tokenString, claims, s.refreshSecret); err != nil {
		return nil, err
	}

	return claims, nil
}

// RefreshTokenDuration returns the configured lifetime of refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) parseInto(tokenString string, claims jwt.Claims, secret string) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return jwt.ErrTokenUnverifiable
	}

	return nil
}
