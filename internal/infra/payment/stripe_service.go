// Package payment implements the PaymentService interface against the Stripe REST API.
// Stripe speaks form-encoded requests authenticated with the secret key, so a
// plain HTTP client is all that's needed.
package payment

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ecomshop/config"
	"ecomshop/internal/domain/service"

	"github.com/pkg/errors"
)

const stripeBaseURL = "https://api.stripe.com/v1"

// stripeService is a concrete implementation of the PaymentService interface.
type stripeService struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewStripeService is the constructor for stripeService.
func NewStripeService(cfg *config.Config, logger *slog.Logger) (service.PaymentService, error) {
	if cfg.Stripe == nil || cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe secret key must be provided")
	}

	return &stripeService{
		secretKey: cfg.Stripe.SecretKey,
		baseURL:   stripeBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}, nil
}

type stripeCustomer struct {
	ID              string `json:"id"`
	InvoiceSettings struct {
		DefaultPaymentMethod string `json:"default_payment_method"`
	} `json:"invoice_settings"`
}

type stripePaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
}

type stripePaymentMethod struct {
	ID   string `json:"id"`
	Card struct {
		Brand    string `json:"brand"`
		Last4    string `json:"last4"`
		ExpMonth int    `json:"exp_month"`
		ExpYear  int    `json:"exp_year"`
	} `json:"card"`
}

type stripeError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateCustomer registers the user with Stripe and returns the customer ID.
func (s *stripeService) CreateCustomer(ctx context.Context, email string) (string, error) {
	form := url.Values{}
	form.Set("email", email)

	var customer stripeCustomer
	if err := s.do(ctx, http.MethodPost, "/customers", form, &customer); err != nil {
		return "", err
	}

	return customer.ID, nil
}

// CreatePaymentIntent opens a new payment intent for a customer.
func (s *stripeService) CreatePaymentIntent(ctx context.Context, customerID string, amount int64) (*service.PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", "usd")
	form.Set("customer", customerID)
	form.Add("payment_method_types[]", "card")

	var intent stripePaymentIntent
	if err := s.do(ctx, http.MethodPost, "/payment_intents", form, &intent); err != nil {
		return nil, err
	}

	return &service.PaymentIntent{ID: intent.ID, ClientSecret: intent.ClientSecret, Amount: intent.Amount}, nil
}

// UpdatePaymentIntent changes the amount of an existing payment intent.
func (s *stripeService) UpdatePaymentIntent(ctx context.Context, intentID string, amount int64) (*service.PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))

	var intent stripePaymentIntent
	if err := s.do(ctx, http.MethodPost, "/payment_intents/"+intentID, form, &intent); err != nil {
		return nil, err
	}

	return &service.PaymentIntent{ID: intent.ID, ClientSecret: intent.ClientSecret, Amount: intent.Amount}, nil
}

// ListCards returns the customer's saved cards, with the default flagged.
func (s *stripeService) ListCards(ctx context.Context, customerID string) ([]service.Card, error) {
	var customer stripeCustomer
	if err := s.do(ctx, http.MethodGet, "/customers/"+customerID, nil, &customer); err != nil {
		return nil, err
	}

	var list struct {
		Data []stripePaymentMethod `json:"data"`
	}
	query := url.Values{}
	query.Set("customer", customerID)
	query.Set("type", "card")
	if err := s.do(ctx, http.MethodGet, "/payment_methods?"+query.Encode(), nil, &list); err != nil {
		return nil, err
	}

	cards := make([]service.Card, 0, len(list.Data))
	for _, pm := range list.Data {
		cards = append(cards, service.Card{
			ID:       pm.ID,
			Brand:    pm.Card.Brand,
			Last4:    pm.Card.Last4,
			ExpMonth: pm.Card.ExpMonth,
			ExpYear:  pm.Card.ExpYear,
			Default:  pm.ID == customer.InvoiceSettings.DefaultPaymentMethod,
		})
	}

	return cards, nil
}

// SetDefaultCard marks a saved card as the customer's default payment method.
func (s *stripeService) SetDefaultCard(ctx context.Context, customerID, paymentMethodID string) error {
	form := url.Values{}
	form.Set("invoice_settings[default_payment_method]", paymentMethodID)

	return s.do(ctx, http.MethodPost, "/customers/"+customerID, form, &stripeCustomer{})
}

// RemoveCard detaches a saved card from its customer.
func (s *stripeService) RemoveCard(ctx context.Context, paymentMethodID string) error {
	return s.do(ctx, http.MethodPost, "/payment_methods/"+paymentMethodID+"/detach", nil, &stripePaymentMethod{})
}

func (s *stripeService) do(ctx context.Context, method, path string, form url.Values, out any) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return errors.WithStack(err)
	}
	req.SetBasicAuth(s.secretKey, "")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "stripe request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read stripe response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var stripeErr stripeError
		if jsonErr := json.Unmarshal(raw, &stripeErr); jsonErr == nil && stripeErr.Error.Message != "" {
			s.logger.Warn("Stripe rejected request",
				slog.String("path", path),
				slog.Int("status", resp.StatusCode),
				slog.String("type", stripeErr.Error.Type),
			)

			return errors.Errorf("stripe: %s", stripeErr.Error.Message)
		}

		return errors.Errorf("stripe returned status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrap(err, "failed to decode stripe response")
	}

	return nil
}
