package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessClaims are the claims carried by a short-lived access token.
type AccessClaims struct {
	SessionID uuid.UUID `json:"sessionId"`
	UserID    uuid.UUID `json:"userId"`
	jwt.RegisteredClaims
}

// RefreshClaims are the claims carried by a long-lived refresh token.
// Deliberately minimal: the session row holds the link to the user.
type RefreshClaims struct {
	SessionID uuid.UUID `json:"sessionId"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for minting and verifying the two JWT kinds.
// Access and refresh tokens are signed with distinct keys so one can never be
// presented in place of the other. Verification reports failures as plain
// errors; callers treat any error as "no token".
type TokenService interface {
	// IssueAccessToken mints an access token bound to a session and user.
	IssueAccessToken(sessionID, userID uuid.UUID) (string, error)

	// IssueRefreshToken mints a refresh token bound to a session.
	IssueRefreshToken(sessionID uuid.UUID) (string, error)

	// VerifyAccessToken parses and validates an access token string.
	VerifyAccessToken(tokenString string) (*AccessClaims, error)

	// VerifyRefreshToken parses and validates a refresh token string.
	VerifyRefreshToken(tokenString string) (*RefreshClaims, error)

	// RefreshTokenDuration returns the configured lifetime of refresh tokens,
	// used to size the cookie's Max-Age.
	RefreshTokenDuration() time.Duration
}
