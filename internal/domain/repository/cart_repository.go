// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"ecomshop/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when a user has no cart yet.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartItemNotFound is returned when a cart item is not found.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository defines the interface for cart persistence. Reads load the
// cart with its items and their products.
type CartRepository interface {
	// FindCartByOwner retrieves a user's cart with its items, or ErrCartNotFound.
	FindCartByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Cart, error)

	// CreateCart persists a new empty cart for a user.
	CreateCart(ctx context.Context, cart *entity.Cart) error

	// UpdateCart updates the cart's checkout state (selected address, payment intent).
	UpdateCart(ctx context.Context, cart *entity.Cart) error

	// FindItemByID retrieves a cart item with its product loaded.
	FindItemByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error)

	// FindItemByProduct retrieves the line for a product inside a cart, or ErrCartItemNotFound.
	FindItemByProduct(ctx context.Context, cartID, productID uuid.UUID) (*entity.CartItem, error)

	// CreateItem persists a new cart item.
	CreateItem(ctx context.Context, item *entity.CartItem) error

	// UpdateItemQuantity sets the quantity of an existing cart item.
	UpdateItemQuantity(ctx context.Context, id uuid.UUID, quantity int) error

	// DeleteItem removes a cart item by its ID.
	DeleteItem(ctx context.Context, id uuid.UUID) error

	// DeleteItemsByCart removes every item in a cart, used after an order is placed.
	DeleteItemsByCart(ctx context.Context, cartID uuid.UUID) error
}
