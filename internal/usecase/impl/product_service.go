package impl

import (
	"context"
	"log/slog"

	deliverycontext "ecomshop/internal/delivery/context"
	"ecomshop/internal/domain/entity"
	domainerrors "ecomshop/internal/domain/errors"
	"ecomshop/internal/domain/repository"
	"ecomshop/internal/infra/cache"
	"ecomshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Catalog pagination defaults, applied when the query parameters are absent or
// out of range.
const (
	defaultPageLimit = 3
	defaultPage      = 1
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo  repository.ProductRepository
	productCache *cache.ProductCache
	logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	productRepo repository.ProductRepository,
	productCache *cache.ProductCache,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		productRepo:  productRepo,
		productCache: productCache,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns one page of products.
func (srv *productService) ListProducts(ctx context.Context, page, limit int) (*usecase.ProductListOutput, error) {
	if limit < 1 {
		limit = defaultPageLimit
	}
	if page < 1 {
		page = defaultPage
	}

	offset := (page - 1) * limit

	products, total, err := srv.productRepo.ListProducts(ctx, offset, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	// Ceiling division; an empty catalog yields zero pages.
	totalQueries := int((total + int64(limit) - 1) / int64(limit))

	return &usecase.ProductListOutput{
		Products:     products,
		TotalQueries: totalQueries,
		HasMore:      page+1 <= totalQueries,
	}, nil
}

// GetProduct returns a single product by ID, served from the cache when possible.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if product := srv.productCache.Get(ctx, id); product != nil {
		return product, nil
	}

	product, err := srv.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		srv.log(ctx).Error("Failed to find product", slog.Any("error", err), slog.Any("product_id", id))

		return nil, errors.Wrap(err, "failed to find product")
	}

	srv.productCache.Set(ctx, product)

	return product, nil
}
