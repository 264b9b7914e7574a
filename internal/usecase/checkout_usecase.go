// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"ecomshop/internal/domain/service"

	"github.com/google/uuid"
)

// CheckoutOutput carries what the storefront needs to confirm the payment.
type CheckoutOutput struct {
	ClientSecret string
	Amount       int64
}

// CheckoutUsecase defines the interface for the payment flow. The amount is
// always recomputed from the cart server-side; client-supplied totals are
// never trusted.
type CheckoutUsecase interface {
	// SelectAddress pins a shipping address to the user's cart. Selecting the
	// address already on the cart is a no-op.
	SelectAddress(ctx context.Context, userID, addressID uuid.UUID) error

	// Checkout creates or updates the cart's payment intent for the current
	// total and returns the client secret. The user's payment-provider
	// customer is created on first use.
	Checkout(ctx context.Context, userID uuid.UUID) (*CheckoutOutput, error)

	// ListCards returns the user's saved cards.
	ListCards(ctx context.Context, userID uuid.UUID) ([]service.Card, error)

	// SetDefaultCard marks a saved card as the default payment method.
	SetDefaultCard(ctx context.Context, userID uuid.UUID, paymentMethodID string) error

	// RemoveCard detaches a saved card.
	RemoveCard(ctx context.Context, userID uuid.UUID, paymentMethodID string) error
}
