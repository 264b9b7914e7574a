// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"ecomshop/internal/domain/entity"

	"github.com/google/uuid"
)

// RefreshSessionInput carries the state resolved by the middleware chain:
// the session behind the refresh cookie, the authenticated user, and the raw
// access token from the Authorization header (possibly empty).
type RefreshSessionInput struct {
	SessionID   uuid.UUID
	User        *entity.User
	AccessToken string
}

// RefreshSessionOutput reports whether the session was rotated and, if so,
// carries the replacement tokens.
type RefreshSessionOutput struct {
	AccessToken  string
	RefreshToken string
	Rotated      bool
}

// MeUsecase defines the interface for the session lifecycle behind GET /me and sign-out.
type MeUsecase interface {
	// RefreshSession rotates the session when the access token is missing,
	// invalid, or about to expire. The replacement session is persisted before
	// the old one is deleted; if persisting fails the old session stays valid.
	RefreshSession(ctx context.Context, input RefreshSessionInput) (*RefreshSessionOutput, error)

	// SignOut deletes the session row, invalidating every token minted for it.
	SignOut(ctx context.Context, sessionID uuid.UUID) error
}
