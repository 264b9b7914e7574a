package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "ecomshop/internal/delivery/context"
	"ecomshop/internal/delivery/http/response"
	"ecomshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler holds dependencies for the payment-flow handlers.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler.
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// SelectAddressRequest represents the request body for pinning a shipping address.
type SelectAddressRequest struct {
	AddressID uuid.UUID `json:"address_id" validate:"required"`
}

// CardRequest represents the request body for card management operations.
type CardRequest struct {
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
}

// checkoutPayload is the response body for a checkout.
type checkoutPayload struct {
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
}

// SelectAddress pins a shipping address to the caller's cart
func (h *CheckoutHandler) SelectAddress(c echo.Context) error {
	user := deliverycontext.GetCurrentUser(c)

	var req SelectAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address selection")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.checkoutUC.SelectAddress(c.Request().Context(), user.ID, req.AddressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Address selected"})
}

// Checkout creates or updates the payment intent for the cart's current total
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	user := deliverycontext.GetCurrentUser(c)

	output, err := h.checkoutUC.Checkout(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkoutPayload{
		ClientSecret: output.ClientSecret,
		Amount:       output.Amount,
	})
}

// ListCards returns the caller's saved cards
func (h *CheckoutHandler) ListCards(c echo.Context) error {
	user := deliverycontext.GetCurrentUser(c)

	cards, err := h.checkoutUC.ListCards(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cards)
}

// SetDefaultCard marks a saved card as the default payment method
func (h *CheckoutHandler) SetDefaultCard(c echo.Context) error {
	user := deliverycontext.GetCurrentUser(c)

	var req CardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid card input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.checkoutUC.SetDefaultCard(c.Request().Context(), user.ID, req.PaymentMethodID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Default card updated"})
}

// RemoveCard detaches a saved card
func (h *CheckoutHandler) RemoveCard(c echo.Context) error {
	user := deliverycontext.GetCurrentUser(c)

	var req CardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid card input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.checkoutUC.RemoveCard(c.Request().Context(), user.ID, req.PaymentMethodID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Card removed"})
}
