package context

import (
	"ecomshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyCurrentUser is the key for storing the authenticated user in context.
	KeyCurrentUser ContextKey = "current_user"

	// KeySessionID is the key for storing the resolved session ID in context.
	KeySessionID ContextKey = "session_id"
)

// SetCurrentUser stores the authenticated user on the request context.
func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyCurrentUser), user)
}

// GetCurrentUser returns the authenticated user, or nil for anonymous requests.
func GetCurrentUser(c echo.Context) *entity.User {
	if user, ok := c.Get(string(KeyCurrentUser)).(*entity.User); ok {
		return user
	}

	return nil
}

// SetSessionID stores the session ID resolved from the refresh cookie.
func SetSessionID(c echo.Context, sessionID uuid.UUID) {
	c.Set(string(KeySessionID), sessionID)
}

// GetSessionID returns the resolved session ID, or uuid.Nil for anonymous requests.
func GetSessionID(c echo.Context) uuid.UUID {
	if id, ok := c.Get(string(KeySessionID)).(uuid.UUID); ok {
		return id
	}

	return uuid.Nil
}
