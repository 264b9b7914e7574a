package impl

import (
	"context"
	"log/slog"

	deliverycontext "ecomshop/internal/delivery/context"
	"ecomshop/internal/domain/entity"
	domainerrors "ecomshop/internal/domain/errors"
	"ecomshop/internal/domain/repository"
	"ecomshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	txManager repository.TransactionManager,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		txManager:   txManager,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the user's cart with items and products loaded.
// A user who never touched their cart gets an empty, unsaved one back.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindCartByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return &entity.Cart{OwnerID: userID}, nil
		}

		srv.log(ctx).Error("Failed to find cart", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return cart, nil
}

// AddItem puts a product in the cart, merging quantities when the product is
// already there.
func (srv *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrNegativeQuantity
	}

	srv.log(ctx).Info("Adding cart item", slog.Any("user_id", userID), slog.Any("product_id", productID), slog.Int("quantity", quantity))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()
		productRepo := repoFactory.NewProductRepository()

		// 1. The product must exist and the requested total must fit in stock.
		product, err := productRepo.FindProductByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}

		// 2. Carts are created lazily on the first write.
		cart, err := cartRepo.FindCartByOwner(ctx, userID)
		if errors.Is(err, repository.ErrCartNotFound) {
			cart = &entity.Cart{OwnerID: userID}
			if err := cartRepo.CreateCart(ctx, cart); err != nil {
				return errors.Wrap(err, "failed to create cart")
			}
		} else if err != nil {
			return errors.Wrap(err, "failed to find cart")
		}

		// 3. Merge into the existing line for this product, if any.
		item, err := cartRepo.FindItemByProduct(ctx, cart.ID, productID)
		switch {
		case err == nil:
			newQuantity := item.Quantity + quantity
			if newQuantity > product.Inventory {
				return domainerrors.ErrInsufficientInventory
			}

			return cartRepo.UpdateItemQuantity(ctx, item.ID, newQuantity)
		case errors.Is(err, repository.ErrCartItemNotFound):
			if quantity > product.Inventory {
				return domainerrors.ErrInsufficientInventory
			}

			return cartRepo.CreateItem(ctx, &entity.CartItem{
				CartID:    cart.ID,
				ProductID: productID,
				Quantity:  quantity,
			})
		default:
			return errors.Wrap(err, "failed to find cart item")
		}
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add cart item", slog.Any("error", err), slog.Any("user_id", userID), slog.Any("product_id", productID))

		return nil, err
	}

	return srv.GetCart(ctx, userID)
}

// AdjustItem applies a quantity delta to a cart line.
func (srv *cartService) AdjustItem(ctx context.Context, userID, itemID uuid.UUID, delta int) (*entity.Cart, error) {
	srv.log(ctx).Info("Adjusting cart item", slog.Any("user_id", userID), slog.Any("item_id", itemID), slog.Int("delta", delta))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		item, err := srv.ownedItem(ctx, cartRepo, userID, itemID)
		if err != nil {
			return err
		}

		newQuantity := item.Quantity + delta
		switch {
		case newQuantity < 0:
			return domainerrors.ErrNegativeQuantity
		case newQuantity == 0:
			return cartRepo.DeleteItem(ctx, item.ID)
		}

		// Only an increase can push the line past the available stock.
		if delta > 0 && item.Product != nil && newQuantity > item.Product.Inventory {
			return domainerrors.ErrInsufficientInventory
		}

		return cartRepo.UpdateItemQuantity(ctx, item.ID, newQuantity)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to adjust cart item", slog.Any("error", err), slog.Any("user_id", userID), slog.Any("item_id", itemID))

		return nil, err
	}

	return srv.GetCart(ctx, userID)
}

// RemoveItem deletes a cart line outright.
func (srv *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.Cart, error) {
	srv.log(ctx).Info("Removing cart item", slog.Any("user_id", userID), slog.Any("item_id", itemID))

	item, err := srv.ownedItem(ctx, srv.cartRepo, userID, itemID)
	if err != nil {
		return nil, err
	}

	if err := srv.cartRepo.DeleteItem(ctx, item.ID); err != nil {
		srv.log(ctx).Error("Failed to delete cart item", slog.Any("error", err), slog.Any("item_id", itemID))

		return nil, errors.Wrap(err, "failed to delete cart item")
	}

	return srv.GetCart(ctx, userID)
}

// ownedItem loads a cart item and verifies it sits in the user's own cart.
// Foreign items are reported as not found rather than forbidden, so item IDs
// can't be probed across accounts.
func (srv *cartService) ownedItem(ctx context.Context, cartRepo repository.CartRepository, userID, itemID uuid.UUID) (*entity.CartItem, error) {
	item, err := cartRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	cart, err := cartRepo.FindCartByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	if item.CartID != cart.ID {
		return nil, domainerrors.ErrCartItemNotFound
	}

	return item, nil
}
