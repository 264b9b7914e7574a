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

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for the shopping cart handlers.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddItemRequest represents the request body for putting a product in the cart.
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// AdjustItemRequest represents the request body for changing a line's quantity.
type AdjustItemRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// GetCart returns the caller's cart
func (h *CartHandler) GetCart(c echo.Context) error {
	user := deliverycontext.GetCurrentUser(c)

	cart, err := h.cartUC.GetCart(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// AddItem puts a product in the cart, merging quantities
func (h *CartHandler) AddItem(c echo.Context) error {
	user := deliverycontext.GetCurrentUser(c)

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), user.ID, req.ProductID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// AdjustItem applies a quantity delta to a cart line
func (h *CartHandler) AdjustItem(c echo.Context) error {
	user := deliverycontext.GetCurrentUser(c)

	itemID, err := uuid.Parse(c.Param("cartItemId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart item ID")
	}

	var req AdjustItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.AdjustItem(c.Request().Context(), user.ID, itemID, req.Delta)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// RemoveItem deletes a cart line outright
func (h *CartHandler) RemoveItem(c echo.Context) error {
	user := deliverycontext.GetCurrentUser(c)

	itemID, err := uuid.Parse(c.Param("cartItemId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart item ID")
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), user.ID, itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}
