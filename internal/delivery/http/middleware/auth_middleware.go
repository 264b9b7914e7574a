package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"ecomshop/config"
	deliverycontext "ecomshop/internal/delivery/context"
	"ecomshop/internal/domain/entity"
	domainerrors "ecomshop/internal/domain/errors"
	"ecomshop/internal/domain/repository"
	"ecomshop/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the caller's identity from the refresh cookie and
// guards route groups by role.
type AuthMiddleware struct {
	tokenService service.TokenService
	sessionRepo  repository.SessionRepository
	userRepo     repository.UserRepository
	cfg          *config.Config
	logger       *slog.Logger
}

// NewAuthMiddleware creates the authentication middleware.
func NewAuthMiddleware(
	tokenService service.TokenService,
	sessionRepo repository.SessionRepository,
	userRepo repository.UserRepository,
	cfg *config.Config,
	logger *slog.Logger,
) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		sessionRepo:  sessionRepo,
		userRepo:     userRepo,
		cfg:          cfg,
		logger:       logger,
	}
}

// Authenticate resolves the refresh cookie into a session and user and stores
// both on the request context. It never rejects: requests without a valid
// cookie simply continue anonymously, and the route guards decide access.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cfg.Auth.RefreshCookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		claims, err := m.tokenService.VerifyRefreshToken(cookie.Value)
		if err != nil {
			// Expired or tampered cookie: drop it so the client stops sending it.
			m.clearCookie(c)

			return next(c)
		}

		ctx := c.Request().Context()

		session, err := m.sessionRepo.FindSessionByID(ctx, claims.SessionID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				// Signed-out elsewhere; the cookie is stale.
				m.clearCookie(c)

				return next(c)
			}

			return errors.Wrap(domainerrors.ErrInternalError, err.Error())
		}

		user, err := m.userRepo.FindByID(ctx, session.OwnerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				m.clearCookie(c)

				return next(c)
			}

			return errors.Wrap(domainerrors.ErrInternalError, err.Error())
		}

		deliverycontext.SetSessionID(c, session.ID)
		deliverycontext.SetCurrentUser(c, user)

		return next(c)
	}
}

// Authorize guards a route group: the caller must be authenticated, hold one
// of the allowed roles, and present an access token matching their identity.
func (m *AuthMiddleware) Authorize(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := deliverycontext.GetCurrentUser(c)
			if user == nil {
				return domainerrors.ErrUnauthorized
			}

			if !allowed.Contains(user.Role) {
				return domainerrors.ErrForbidden
			}

			accessToken := extractBearerToken(c)
			if accessToken == "" {
				return domainerrors.ErrUnauthorized
			}

			claims, err := m.tokenService.VerifyAccessToken(accessToken)
			if err != nil {
				return domainerrors.ErrUnauthorized
			}

			// The access token must belong to the user behind the cookie.
			if claims.UserID != user.ID {
				m.logger.Warn("Access token user mismatch",
					slog.String("tokenUserId", claims.UserID.String()),
					slog.String("cookieUserId", user.ID.String()),
				)

				return domainerrors.ErrUnauthorized
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) clearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     m.cfg.Auth.RefreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func extractBearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
}
