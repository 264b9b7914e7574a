// Package email implements the EmailService interface against the SendGrid v3 API.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"ecomshop/config"
	"ecomshop/internal/domain/service"

	"github.com/pkg/errors"
)

const sendgridMailURL = "https://api.sendgrid.com/v3/mail/send"

// sendgridService is a concrete implementation of the EmailService interface.
type sendgridService struct {
	apiKey     string
	fromEmail  string
	fromName   string
	clientURL  string
	mailURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewSendGridService is the constructor for sendgridService.
func NewSendGridService(cfg *config.Config, logger *slog.Logger) (service.EmailService, error) {
	if cfg.SendGrid == nil || cfg.SendGrid.APIKey == "" {
		return nil, errors.New("sendgrid api key must be provided")
	}

	return &sendgridService{
		apiKey:    cfg.SendGrid.APIKey,
		fromEmail: cfg.SendGrid.FromEmail,
		fromName:  cfg.SendGrid.FromName,
		clientURL: cfg.SendGrid.ClientURL,
		mailURL:   sendgridMailURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}, nil
}

type mailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type mailPayload struct {
	Personalizations []struct {
		To []mailAddress `json:"to"`
	} `json:"personalizations"`
	From    mailAddress `json:"from"`
	Subject string      `json:"subject"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

// SendPasswordReset mails a reset link containing the token to the recipient.
func (s *sendgridService) SendPasswordReset(ctx context.Context, to, resetToken string) error {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.clientURL, resetToken)

	html := fmt.Sprintf(
		"<p>A password reset was requested for your account.</p>"+
			"<p><a href=%q>Click here to choose a new password.</a></p>"+
			"<p>The link expires in 30 minutes. If you didn't request this, you can ignore this email.</p>",
		resetLink,
	)

	if err := s.sendMail(ctx, to, "Reset your password", html); err != nil {
		return err
	}

	s.logger.Info("Password reset email queued", slog.String("to", to))

	return nil
}

// SendOrderConfirmation mails a receipt for a freshly placed order.
func (s *sendgridService) SendOrderConfirmation(ctx context.Context, to, orderID string, amount int64) error {
	html := fmt.Sprintf(
		"<p>Thanks for your order!</p>"+
			"<p>Order <strong>%s</strong> for $%.2f has been received and is being prepared.</p>"+
			"<p><a href=%q>View your order history.</a></p>",
		orderID, float64(amount)/100, s.clientURL+"/orders",
	)

	if err := s.sendMail(ctx, to, "Your order confirmation", html); err != nil {
		return err
	}

	s.logger.Info("Order confirmation email queued",
		slog.String("to", to),
		slog.String("order_id", orderID),
	)

	return nil
}

// SendShipmentUpdate mails a fulfilment progress notice for an order.
func (s *sendgridService) SendShipmentUpdate(ctx context.Context, to, orderID, status string) error {
	html := fmt.Sprintf(
		"<p>Your order <strong>%s</strong> is now <strong>%s</strong>.</p>"+
			"<p><a href=%q>View your order history.</a></p>",
		orderID, status, s.clientURL+"/orders",
	)

	if err := s.sendMail(ctx, to, "Your order status changed", html); err != nil {
		return err
	}

	s.logger.Info("Shipment update email queued",
		slog.String("to", to),
		slog.String("order_id", orderID),
		slog.String("status", status),
	)

	return nil
}

// sendMail posts one HTML mail through the SendGrid v3 API.
// SendGrid answers 202 Accepted on success; anything else is a failure.
func (s *sendgridService) sendMail(ctx context.Context, to, subject, html string) error {
	payload := mailPayload{
		From:    mailAddress{Email: s.fromEmail, Name: s.fromName},
		Subject: subject,
	}
	payload.Personalizations = append(payload.Personalizations, struct {
		To []mailAddress `json:"to"`
	}{To: []mailAddress{{Email: to}}})
	payload.Content = append(payload.Content, struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}{
		Type:  "text/html",
		Value: html,
	})

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.mailURL, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "sendgrid request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		s.logger.Warn("SendGrid rejected mail", slog.Int("status", resp.StatusCode))

		return errors.Errorf("sendgrid returned status %d", resp.StatusCode)
	}

	return nil
}
