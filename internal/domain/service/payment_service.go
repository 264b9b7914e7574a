package service

import "context"

// PaymentIntent is the provider-side record of an attempted charge.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       int64
}

// Card is a saved payment method attached to a customer.
type Card struct {
	ID       string
	Brand    string
	Last4    string
	ExpMonth int
	ExpYear  int
	Default  bool
}

// PaymentService defines the interface to the card payment provider.
// Amounts are in cents throughout.
type PaymentService interface {
	// CreateCustomer registers the user with the payment provider and returns the customer ID.
	CreateCustomer(ctx context.Context, email string) (string, error)

	// CreatePaymentIntent opens a new payment intent for a customer.
	CreatePaymentIntent(ctx context.Context, customerID string, amount int64) (*PaymentIntent, error)

	// UpdatePaymentIntent changes the amount of an existing payment intent.
	UpdatePaymentIntent(ctx context.Context, intentID string, amount int64) (*PaymentIntent, error)

	// ListCards returns the customer's saved cards.
	ListCards(ctx context.Context, customerID string) ([]Card, error)

	// SetDefaultCard marks a saved card as the customer's default payment method.
	SetDefaultCard(ctx context.Context, customerID, paymentMethodID string) error

	// RemoveCard detaches a saved card from its customer.
	RemoveCard(ctx context.Context, paymentMethodID string) error
}
