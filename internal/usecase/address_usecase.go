// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"ecomshop/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput defines the fields of a shipping address.
type AddressInput struct {
	Fullname string
	Address1 string
	Address2 string
	City     string
	ZipCode  string
	Phone    string
}

// AddressUsecase defines the interface for shipping address management.
// Reads and writes against another user's address are rejected.
type AddressUsecase interface {
	// ListAddresses returns all of the user's addresses, newest first.
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// GetAddress returns a single address owned by the user.
	GetAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error)

	// CreateAddress stores a new address for the user.
	CreateAddress(ctx context.Context, userID uuid.UUID, input AddressInput) (*entity.Address, error)

	// UpdateAddress overwrites an address the user owns. A payload identical
	// to the stored address is rejected.
	UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input AddressInput) (*entity.Address, error)

	// DeleteAddress removes an address the user owns.
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error
}
