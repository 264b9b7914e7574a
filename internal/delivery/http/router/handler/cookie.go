package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// setRefreshCookie attaches the refresh token as an http-only cookie scoped to
// the whole site. The token is never exposed to client-side scripts.
func setRefreshCookie(c echo.Context, name, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearRefreshCookie expires the refresh cookie immediately.
func clearRefreshCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
