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

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler holds dependencies for the shipping address handlers.
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler.
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// AddressRequest represents the request body for creating or updating an address.
type AddressRequest struct {
	Fullname string `json:"fullname" validate:"required"`
	Address1 string `json:"address1" validate:"required"`
	Address2 string `json:"address2"`
	City     string `json:"city" validate:"required"`
	ZipCode  string `json:"zip_code" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

func (r *AddressRequest) toInput() usecase.AddressInput {
	return usecase.AddressInput{
		Fullname: r.Fullname,
		Address1: r.Address1,
		Address2: r.Address2,
		City:     r.City,
		ZipCode:  r.ZipCode,
		Phone:    r.Phone,
	}
}

// ListAddresses returns all of the caller's addresses
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	user := deliverycontext.GetCurrentUser(c)

	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, addresses)
}

// GetAddress returns a single address the caller owns
func (h *AddressHandler) GetAddress(c echo.Context) error {
	user := deliverycontext.GetCurrentUser(c)

	addressID, err := uuid.Parse(c.Param("addressId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	address, err := h.addressUC.GetAddress(c.Request().Context(), user.ID, addressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address)
}

// CreateAddress stores a new address for the caller
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	user := deliverycontext.GetCurrentUser(c)

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.addressUC.CreateAddress(c.Request().Context(), user.ID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, address)
}

// UpdateAddress overwrites an address the caller owns
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	user := deliverycontext.GetCurrentUser(c)

	addressID, err := uuid.Parse(c.Param("addressId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), user.ID, addressID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address)
}

// DeleteAddress removes an address the caller owns
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	user := deliverycontext.GetCurrentUser(c)

	addressID, err := uuid.Parse(c.Param("addressId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), user.ID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Address deleted successfully"})
}
