// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a long-lived, authorized login.
// Its ID is carried inside both the refresh and access tokens; deleting the row
// invalidates every token minted for it.
type Session struct {
	ID        uuid.UUID `json:"id"`         // The unique ID for this session, referenced by token claims.
	OwnerID   uuid.UUID `json:"owner_id"`   // Links this session to the User it belongs to.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this session was created (i.e., when the user logged in).
}
