package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"ecomshop/config"
	deliverycontext "ecomshop/internal/delivery/context"
	"ecomshop/internal/delivery/http/response"
	"ecomshop/internal/domain/service"
	"ecomshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MeHandlerParams holds dependencies for MeHandler, injected by Fx.
type MeHandlerParams struct {
	fx.In

	MeUC         usecase.MeUsecase
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// MeHandler holds dependencies for the session-lifecycle handlers.
type MeHandler struct {
	meUC         usecase.MeUsecase
	tokenService service.TokenService
	cfg          *config.Config
	logger       *slog.Logger
}

// NewMeHandler is the constructor for MeHandler.
func NewMeHandler(params MeHandlerParams) *MeHandler {
	return &MeHandler{
		meUC:         params.MeUC,
		tokenService: params.TokenService,
		cfg:          params.Config,
		logger:       params.Logger,
	}
}

// mePayload is the response body for GET /me. Authenticated responses carry an
// access token: the replacement token when the session was rotated on this
// request, the presented one echoed back otherwise.
type mePayload struct {
	User        any    `json:"user"`
	AccessToken string `json:"access_token,omitempty"`
}

// Me returns the authenticated user, rotating the session when the access
// token is missing, invalid or about to expire. Anonymous requests receive
// {"user": null} rather than an error so the storefront can render either way.
func (h *MeHandler) Me(c echo.Context) error {
	user := deliverycontext.GetCurrentUser(c)
	if user == nil {
		return response.Success(c, http.StatusOK, mePayload{User: nil})
	}

	output, err := h.meUC.RefreshSession(c.Request().Context(), usecase.RefreshSessionInput{
		SessionID:   deliverycontext.GetSessionID(c),
		User:        user,
		AccessToken: bearerToken(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// The client always gets a usable access token back: the replacement when
	// the session rotated, the one it presented otherwise.
	payload := mePayload{User: user, AccessToken: bearerToken(c)}
	if output.Rotated {
		setRefreshCookie(c, h.cfg.Auth.RefreshCookieName, output.RefreshToken, h.tokenService.RefreshTokenDuration())
		payload.AccessToken = output.AccessToken
	}

	return response.Success(c, http.StatusOK, payload)
}

// SignOut deletes the session behind the refresh cookie and clears it
func (h *MeHandler) SignOut(c echo.Context) error {
	sessionID := deliverycontext.GetSessionID(c)
	if sessionID == uuid.Nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "No active session")
	}

	if err := h.meUC.SignOut(c.Request().Context(), sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	clearRefreshCookie(c, h.cfg.Auth.RefreshCookieName)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Signed out successfully"})
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}

	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
