// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"ecomshop/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrInventoryConflict is returned when a decrement would push inventory below zero.
	ErrInventoryConflict = errors.New("insufficient inventory")
)

// ProductRepository defines the interface for product catalog persistence.
type ProductRepository interface {
	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts retrieves a page of products ordered by creation time, plus the total count.
	ListProducts(ctx context.Context, offset, limit int) ([]*entity.Product, int64, error)

	// UpdateProduct updates an existing product record.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DecrementInventory atomically subtracts sold units from a product's stock.
	// Returns ErrInventoryConflict when the product doesn't hold enough units.
	DecrementInventory(ctx context.Context, id uuid.UUID, quantity int) error

	// DeleteProduct removes a product by its ID.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
