package service

import "context"

// EmailService defines the interface for sending transactional mail.
type EmailService interface {
	// SendPasswordReset mails a reset link containing the token to the recipient.
	SendPasswordReset(ctx context.Context, to, resetToken string) error

	// SendOrderConfirmation mails a receipt for a freshly placed order.
	SendOrderConfirmation(ctx context.Context, to, orderID string, amount int64) error

	// SendShipmentUpdate mails a fulfilment progress notice for an order.
	SendShipmentUpdate(ctx context.Context, to, orderID, status string) error
}
