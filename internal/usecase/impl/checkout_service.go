package impl

import (
	"context"
	"log/slog"

	deliverycontext "ecomshop/internal/delivery/context"
	domainerrors "ecomshop/internal/domain/errors"
	"ecomshop/internal/domain/repository"
	"ecomshop/internal/domain/service"
	"ecomshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	cartRepo       repository.CartRepository
	addressRepo    repository.AddressRepository
	userRepo       repository.UserRepository
	paymentService service.PaymentService
	logger         *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	cartRepo repository.CartRepository,
	addressRepo repository.AddressRepository,
	userRepo repository.UserRepository,
	paymentService service.PaymentService,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		cartRepo:       cartRepo,
		addressRepo:    addressRepo,
		userRepo:       userRepo,
		paymentService: paymentService,
		logger:         logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SelectAddress pins a shipping address to the user's cart.
func (srv *checkoutService) SelectAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	srv.log(ctx).Info("Selecting shipping address", slog.Any("user_id", userID), slog.Any("address_id", addressID))

	address, err := srv.addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}

		return errors.Wrap(err, "failed to find address")
	}
	if address.OwnerID != userID {
		return domainerrors.ErrAddressOwnershipViolation
	}

	cart, err := srv.cartRepo.FindCartByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return domainerrors.ErrEmptyCart
		}

		return errors.Wrap(err, "failed to find cart")
	}

	// Re-selecting the pinned address is a no-op, not an error.
	if cart.AddressID != nil && *cart.AddressID == addressID {
		return nil
	}

	cart.AddressID = &addressID
	if err := srv.cartRepo.UpdateCart(ctx, cart); err != nil {
		srv.log(ctx).Error("Failed to pin address to cart", slog.Any("error", err), slog.Any("cart_id", cart.ID))

		return errors.Wrap(err, "failed to update cart")
	}

	return nil
}

// Checkout creates or updates the cart's payment intent for the current total.
// The amount is always recomputed server-side from the cart lines.
func (srv *checkoutService) Checkout(ctx context.Context, userID uuid.UUID) (*usecase.CheckoutOutput, error) {
	srv.log(ctx).Info("Checking out", slog.Any("user_id", userID))

	cart, err := srv.cartRepo.FindCartByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrEmptyCart
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	if len(cart.Items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}
	if cart.AddressID == nil {
		return nil, domainerrors.ErrNoShippingAddress
	}

	amount := cart.TotalAmount()

	customerID, err := srv.ensureCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Re-checking out an amended cart updates the existing intent in place so
	// the provider never holds two competing charges for one cart.
	var intent *service.PaymentIntent
	if cart.PaymentIntentID == nil {
		intent, err = srv.paymentService.CreatePaymentIntent(ctx, customerID, amount)
	} else {
		intent, err = srv.paymentService.UpdatePaymentIntent(ctx, *cart.PaymentIntentID, amount)
	}
	if err != nil {
		srv.log(ctx).Error("Payment intent request failed", slog.Any("error", err), slog.Any("cart_id", cart.ID))

		return nil, errors.Wrap(domainerrors.ErrPaymentFailed, err.Error())
	}

	if cart.PaymentIntentID == nil || *cart.PaymentIntentID != intent.ID {
		cart.PaymentIntentID = &intent.ID
		if err := srv.cartRepo.UpdateCart(ctx, cart); err != nil {
			srv.log(ctx).Error("Failed to store payment intent on cart", slog.Any("error", err), slog.Any("cart_id", cart.ID))

			return nil, errors.Wrap(err, "failed to update cart")
		}
	}
	srv.log(ctx).Info("Successfully checked out", slog.Any("user_id", userID), slog.Int64("amount", amount))

	return &usecase.CheckoutOutput{
		ClientSecret: intent.ClientSecret,
		Amount:       amount,
	}, nil
}

// ListCards returns the user's saved cards. A user without a payment profile
// simply has no cards yet.
func (srv *checkoutService) ListCards(ctx context.Context, userID uuid.UUID) ([]service.Card, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if user.StripeCustomerID == nil {
		return []service.Card{}, nil
	}

	cards, err := srv.paymentService.ListCards(ctx, *user.StripeCustomerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list cards", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, errors.Wrap(domainerrors.ErrPaymentFailed, err.Error())
	}

	return cards, nil
}

// SetDefaultCard marks a saved card as the default payment method.
func (srv *checkoutService) SetDefaultCard(ctx context.Context, userID uuid.UUID, paymentMethodID string) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}

	if user.StripeCustomerID == nil {
		return domainerrors.ErrNoPaymentProfile
	}

	if err := srv.paymentService.SetDefaultCard(ctx, *user.StripeCustomerID, paymentMethodID); err != nil {
		srv.log(ctx).Error("Failed to set default card", slog.Any("error", err), slog.Any("user_id", userID))

		return errors.Wrap(domainerrors.ErrPaymentFailed, err.Error())
	}

	return nil
}

// RemoveCard detaches a saved card.
func (srv *checkoutService) RemoveCard(ctx context.Context, userID uuid.UUID, paymentMethodID string) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}

	if user.StripeCustomerID == nil {
		return domainerrors.ErrNoPaymentProfile
	}

	if err := srv.paymentService.RemoveCard(ctx, paymentMethodID); err != nil {
		srv.log(ctx).Error("Failed to remove card", slog.Any("error", err), slog.Any("user_id", userID))

		return errors.Wrap(domainerrors.ErrPaymentFailed, err.Error())
	}

	return nil
}

// ensureCustomer returns the user's payment-provider customer ID, registering
// the user with the provider on first use.
func (srv *checkoutService) ensureCustomer(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", errors.Wrap(err, "failed to find user")
	}

	if user.StripeCustomerID != nil {
		return *user.StripeCustomerID, nil
	}

	customerID, err := srv.paymentService.CreateCustomer(ctx, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to create payment customer", slog.Any("error", err), slog.Any("user_id", userID))

		return "", errors.Wrap(domainerrors.ErrPaymentFailed, err.Error())
	}

	user.StripeCustomerID = &customerID
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return "", errors.Wrap(domainerrors.ErrUserUpdateFailed, err.Error())
	}

	return customerID, nil
}
