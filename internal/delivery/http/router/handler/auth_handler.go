package handler

import (
	"log/slog"
	"net/http"

	"ecomshop/config"
	"ecomshop/internal/delivery/http/response"
	"ecomshop/internal/domain/service"
	"ecomshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC       usecase.AuthUsecase
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// AuthHandler holds dependencies for account and credential handlers.
type AuthHandler struct {
	authUC       usecase.AuthUsecase
	tokenService service.TokenService
	cfg          *config.Config
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:       params.AuthUC,
		tokenService: params.TokenService,
		cfg:          params.Config,
		logger:       params.Logger,
	}
}

// SignupRequest represents the request body for registering an account.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SigninRequest represents the request body for logging in.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResetPasswordRequest represents the request body for starting a password reset.
type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ConfirmResetRequest represents the request body for completing a password reset.
type ConfirmResetRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// authPayload is the response body shared by signup and signin.
type authPayload struct {
	User        any    `json:"user"`
	AccessToken string `json:"access_token"`
}

// Signup handles account registration
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.Signup(c.Request().Context(), usecase.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	setRefreshCookie(c, h.cfg.Auth.RefreshCookieName, output.RefreshToken, h.tokenService.RefreshTokenDuration())

	return response.Success(c, http.StatusCreated, authPayload{
		User:        output.User,
		AccessToken: output.AccessToken,
	})
}

// Signin handles credential verification and session creation
func (h *AuthHandler) Signin(c echo.Context) error {
	var req SigninRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signin input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.Signin(c.Request().Context(), usecase.SigninInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	setRefreshCookie(c, h.cfg.Auth.RefreshCookieName, output.RefreshToken, h.tokenService.RefreshTokenDuration())

	return response.Success(c, http.StatusOK, authPayload{
		User:        output.User,
		AccessToken: output.AccessToken,
	})
}

// ResetPassword mints a reset token and mails it to the account's address
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password reset email sent"})
}

// ConfirmResetPassword exchanges a valid reset token for a new password
func (h *AuthHandler) ConfirmResetPassword(c echo.Context) error {
	var req ConfirmResetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirmation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.authUC.ConfirmPasswordReset(c.Request().Context(), usecase.ConfirmResetInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password updated successfully"})
}
