// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
type User struct {
	ID                 uuid.UUID  `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Username           string     `json:"username"`   // The user's display name, at least three characters after trimming.
	Email              string     `json:"email"`      // The user's login identifier, stored trimmed and lower-cased.
	PasswordHash       string     `json:"-"`          // The bcrypt-hashed password, never serialized.
	Role               Role       `json:"role"`       // The user's role, which gates access to protected route groups.
	ResetPasswordToken *string    `json:"-"`          // Pending password-reset token, nil when no reset is in flight.
	ResetTokenExpiry   *time.Time `json:"-"`          // Expiry of the pending reset token.
	StripeCustomerID   *string    `json:"-"`          // The Stripe customer ID, set lazily on the first checkout.
	CreatedAt          time.Time  `json:"created_at"` // Timestamp of when this user account was created.
	UpdatedAt          time.Time  `json:"updated_at"` // Timestamp of the last modification to this user's data.
}

// HasPendingReset reports whether a password reset is currently in flight.
func (u *User) HasPendingReset(now time.Time) bool {
	return u.ResetPasswordToken != nil && u.ResetTokenExpiry != nil && u.ResetTokenExpiry.After(now)
}
