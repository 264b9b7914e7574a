package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	deliverycontext "ecomshop/internal/delivery/context"
	"ecomshop/internal/delivery/http/response"
	"ecomshop/internal/domain/entity"
	domainerrors "ecomshop/internal/domain/errors"
	"ecomshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// maxImageSize caps product image uploads at 5 MB.
const maxImageSize = 5 << 20

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler holds dependencies for the store administration handlers.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// ProductFormRequest represents the multipart form fields of a product write.
type ProductFormRequest struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description" validate:"required"`
	Price       int64  `form:"price" validate:"required,gt=0"`
	Category    string `form:"category" validate:"required"`
	Inventory   int    `form:"inventory" validate:"gte=0"`
}

// UpdateOrderStatusRequest represents the request body for moving an order
// through fulfilment.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateUserRoleRequest represents the request body for changing an account's role.
type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// userListPayload is the response body for the paginated account list.
type userListPayload struct {
	Users        any  `json:"users"`
	TotalQueries int  `json:"total_queries"`
	HasMore      bool `json:"has_more"`
}

// CreateProduct stores a new product with its uploaded image
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	user := deliverycontext.GetCurrentUser(c)

	var req ProductFormRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	image, closeImage, err := h.formImage(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if closeImage != nil {
		defer closeImage()
	}

	product, err := h.adminUC.CreateProduct(c.Request().Context(), user.ID, usecase.ProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    entity.Category(req.Category),
		Inventory:   req.Inventory,
	}, image)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// UpdateProduct overwrites a product's fields, optionally swapping its image
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req ProductFormRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	image, closeImage, err := h.formImage(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if closeImage != nil {
		defer closeImage()
	}

	product, err := h.adminUC.UpdateProduct(c.Request().Context(), productID, usecase.ProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    entity.Category(req.Category),
		Inventory:   req.Inventory,
	}, image)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct removes a product and its hosted image
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.adminUC.DeleteProduct(c.Request().Context(), productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// ListOrders returns every order in the store
func (h *AdminHandler) ListOrders(c echo.Context) error {
	orders, err := h.adminUC.ListOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder returns any order by ID
func (h *AdminHandler) GetOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.adminUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// UpdateOrderStatus moves an order to a new shipment status
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.adminUC.UpdateOrderStatus(c.Request().Context(), orderID, entity.ShipmentStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ListUsers returns one page of store accounts
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("q"))
	limit, _ := strconv.Atoi(c.QueryParam("l"))

	output, err := h.adminUC.ListUsers(c.Request().Context(), page, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, userListPayload{
		Users:        output.Users,
		TotalQueries: output.TotalQueries,
		HasMore:      output.HasMore,
	})
}

// GetUser returns a single account by ID
func (h *AdminHandler) GetUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	user, err := h.adminUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateUserRole changes an account's role
func (h *AdminHandler) UpdateUserRole(c echo.Context) error {
	actor := deliverycontext.GetCurrentUser(c)

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req UpdateUserRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.adminUC.UpdateUserRole(c.Request().Context(), actor.ID, userID, entity.Role(req.Role))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// DeleteUser removes an account and its sessions
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	actor := deliverycontext.GetCurrentUser(c)

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := h.adminUC.DeleteUser(c.Request().Context(), actor.ID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

// formImage extracts the uploaded product image from the multipart form.
// A missing file is not an error here; catalog rules decide whether the
// image is required.
func (h *AdminHandler) formImage(c echo.Context) (*usecase.ImageInput, func(), error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, nil, nil
	}

	if fileHeader.Size > maxImageSize {
		return nil, nil, domainerrors.ErrImageTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, domainerrors.ErrImageUploadFailed
	}

	return &usecase.ImageInput{
		FileName: fileHeader.Filename,
		Content:  file,
	}, func() { closeMultipartFile(file) }, nil
}

func closeMultipartFile(file multipart.File) {
	_ = file.Close()
}
