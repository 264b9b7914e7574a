// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"ecomshop/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines the interface for order placement and history.
type OrderUsecase interface {
	// CreateOrder converts the user's checked-out cart into an order snapshot,
	// decrements inventory, clears the cart and publishes an order event.
	CreateOrder(ctx context.Context, userID uuid.UUID) (*entity.Order, error)

	// ListOrders returns the user's order history, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// GetOrder returns a single order the user placed.
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
}
