// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"ecomshop/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session row does not exist.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines the operations for session persistence.
// A session row is the source of truth for a login: tokens referencing a
// deleted session are worthless regardless of their signature or expiry.
type SessionRepository interface {
	// CreateSession persists a new session row.
	CreateSession(ctx context.Context, session *entity.Session) error

	// FindSessionByID retrieves a session by its unique ID.
	FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// DeleteSession removes a single session row by its ID.
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// DeleteSessionsByOwner removes every session belonging to a user.
	DeleteSessionsByOwner(ctx context.Context, ownerID uuid.UUID) error
}
