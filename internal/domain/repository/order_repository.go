// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"ecomshop/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order persistence. Orders are
// written once with their items and only the shipment status changes afterwards.
type OrderRepository interface {
	// CreateOrder persists a new order together with its items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order with its items.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByOwner retrieves all orders placed by a user, newest first.
	FindOrdersByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Order, error)

	// ListOrders retrieves every order in the store, newest first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// UpdateShipmentStatus sets the shipment status of an order.
	UpdateShipmentStatus(ctx context.Context, id uuid.UUID, status entity.ShipmentStatus) error
}
