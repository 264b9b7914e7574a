package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"ecomshop/internal/delivery/http/response"
	"ecomshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for the public catalog handlers.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// productListPayload is the response body for the paginated catalog.
type productListPayload struct {
	Products     any  `json:"products"`
	TotalQueries int  `json:"total_queries"`
	HasMore      bool `json:"has_more"`
}

// ListProducts returns one page of the catalog. The page is selected with the
// `q` query parameter and the page size with `l`; both fall back to defaults.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("q"))
	limit, _ := strconv.Atoi(c.QueryParam("l"))

	output, err := h.productUC.ListProducts(c.Request().Context(), page, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, productListPayload{
		Products:     output.Products,
		TotalQueries: output.TotalQueries,
		HasMore:      output.HasMore,
	})
}

// GetProduct returns a single product by ID
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}
