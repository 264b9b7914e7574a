// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"ecomshop/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase defines the interface for shopping cart operations.
// Every operation is scoped to the authenticated user; a cart is created
// lazily on the first write.
type CartUsecase interface {
	// GetCart returns the user's cart with items and products loaded.
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// AddItem puts a product in the cart, merging quantities when the product
	// is already there. The requested total must not exceed the inventory.
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.Cart, error)

	// AdjustItem applies a quantity delta to a cart line. The line is removed
	// when the quantity reaches zero; a negative result is rejected.
	AdjustItem(ctx context.Context, userID, itemID uuid.UUID, delta int) (*entity.Cart, error)

	// RemoveItem deletes a cart line outright.
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.Cart, error)
}
