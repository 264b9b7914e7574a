package postgres

import (
	"context"

	"ecomshop/internal/domain/entity"
	domainerrors "ecomshop/internal/domain/errors"
	"ecomshop/internal/domain/repository"
	"ecomshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cartRepository implements the domain.CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindCartByOwner retrieves a user's cart with its items and their products.
func (repo *cartRepository) FindCartByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel
	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at ASC")
		}).
		Preload("Items.Product").
		Where("owner_id = ?", ownerID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by owner")
	}

	return cartM.ToDomain(), nil
}

// CreateCart persists a new empty cart for a user.
func (repo *cartRepository) CreateCart(ctx context.Context, cart *entity.Cart) error {
	cartM := model.FromCartDomain(cart)

	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	cart.ID = cartM.ID
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// UpdateCart updates the cart's checkout state (selected address, payment intent).
func (repo *cartRepository) UpdateCart(ctx context.Context, cart *entity.Cart) error {
	cartM := model.FromCartDomain(cart)

	result := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("id = ?", cartM.ID).
		Select("address_id", "payment_intent_id").
		Updates(cartM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// FindItemByID retrieves a cart item with its product loaded.
func (repo *cartRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error) {
	var itemM model.CartItemModel
	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by id")
	}

	return itemM.ToDomain(), nil
}

// FindItemByProduct retrieves the line for a product inside a cart.
func (repo *cartRepository) FindItemByProduct(ctx context.Context, cartID, productID uuid.UUID) (*entity.CartItem, error) {
	var itemM model.CartItemModel
	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by product")
	}

	return itemM.ToDomain(), nil
}

// CreateItem persists a new cart item.
func (repo *cartRepository) CreateItem(ctx context.Context, item *entity.CartItem) error {
	itemM := model.FromCartItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("product already in cart")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// UpdateItemQuantity sets the quantity of an existing cart item.
func (repo *cartRepository) UpdateItemQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart item quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// DeleteItem removes a cart item by its ID.
func (repo *cartRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CartItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// DeleteItemsByCart removes every item in a cart.
func (repo *cartRepository) DeleteItemsByCart(ctx context.Context, cartID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart items")
	}

	return nil
}
