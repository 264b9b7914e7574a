// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"

	"ecomshop/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ProductInput defines the editable fields of a catalog product.
type ProductInput struct {
	Title       string
	Description string
	Price       int64
	Category    entity.Category
	Inventory   int
}

// ImageInput carries an uploaded product image.
type ImageInput struct {
	FileName string
	Content  io.Reader
}

// --- Output DTOs ---

// UserListOutput is one page of store accounts.
type UserListOutput struct {
	Users        []*entity.User
	TotalQueries int
	HasMore      bool
}

// AdminUsecase defines the interface for store administration: catalog
// writes, order fulfilment and account management.
type AdminUsecase interface {
	// CreateProduct stores a new product; the image is uploaded to the image
	// host first and its URL recorded on the product.
	CreateProduct(ctx context.Context, creatorID uuid.UUID, input ProductInput, image *ImageInput) (*entity.Product, error)

	// UpdateProduct overwrites a product's fields. With a new image the old
	// asset is deleted from the host after the swap; without one, a payload
	// identical to the stored product is rejected.
	UpdateProduct(ctx context.Context, productID uuid.UUID, input ProductInput, image *ImageInput) (*entity.Product, error)

	// DeleteProduct removes a product and its hosted image.
	DeleteProduct(ctx context.Context, productID uuid.UUID) error

	// ListOrders returns every order in the store, newest first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// GetOrder returns any order by ID.
	GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// UpdateOrderStatus moves an order to a new shipment status. Invalid and
	// unchanged statuses are rejected.
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.ShipmentStatus) (*entity.Order, error)

	// ListUsers returns one page of accounts.
	ListUsers(ctx context.Context, page, limit int) (*UserListOutput, error)

	// GetUser returns a single account by ID.
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateUserRole changes an account's role. Editing one's own account,
	// an invalid role, or the role already held are rejected.
	UpdateUserRole(ctx context.Context, actorID, userID uuid.UUID, role entity.Role) (*entity.User, error)

	// DeleteUser removes an account and its sessions.
	DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error
}
