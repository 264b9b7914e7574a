// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"ecomshop/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductListOutput is one page of the catalog.
type ProductListOutput struct {
	Products     []*entity.Product
	TotalQueries int  // Total number of pages at the requested limit.
	HasMore      bool // Whether another page follows the requested one.
}

// ProductUsecase defines the interface for public catalog reads.
type ProductUsecase interface {
	// ListProducts returns one page of products. Page and limit are 1-based
	// and fall back to defaults when out of range.
	ListProducts(ctx context.Context, page, limit int) (*ProductListOutput, error)

	// GetProduct returns a single product by ID.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}
