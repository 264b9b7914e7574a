package impl

import (
	"context"
	"testing"

	"ecomshop/internal/domain/entity"
	domainerrors "ecomshop/internal/domain/errors"
	"ecomshop/internal/domain/repository"
	"ecomshop/internal/domain/service"
	mockRepo "ecomshop/internal/mocks/repository"
	mockService "ecomshop/internal/mocks/service"
	"ecomshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutServiceMocks struct {
	cartRepo       *mockRepo.MockCartRepository
	addressRepo    *mockRepo.MockAddressRepository
	userRepo       *mockRepo.MockUserRepository
	paymentService *mockService.MockPaymentService
}

func newCheckoutService(t *testing.T) (usecase.CheckoutUsecase, *checkoutServiceMocks) {
	m := &checkoutServiceMocks{
		cartRepo:       mockRepo.NewMockCartRepository(t),
		addressRepo:    mockRepo.NewMockAddressRepository(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		paymentService: mockService.NewMockPaymentService(t),
	}
	svc := NewCheckoutService(m.cartRepo, m.addressRepo, m.userRepo, m.paymentService, newDiscardLogger())

	return svc, m
}

func cartWithItems(ownerID uuid.UUID, unitPrice int64, quantity int) *entity.Cart {
	productID := uuid.New()

	return &entity.Cart{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Items: []entity.CartItem{
			{
				ID:        uuid.New(),
				ProductID: productID,
				Quantity:  quantity,
				Product:   &entity.Product{ID: productID, Price: unitPrice, Inventory: quantity},
			},
		},
	}
}

func TestCheckoutService_SelectAddress_SameAddressIsNoOp(t *testing.T) {
	svc, m := newCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	m.addressRepo.EXPECT().FindAddressByID(ctx, addressID).Return(&entity.Address{ID: addressID, OwnerID: userID}, nil)
	// No UpdateCart expectation: re-selecting the pinned address writes nothing.
	m.cartRepo.EXPECT().FindCartByOwner(ctx, userID).Return(&entity.Cart{ID: uuid.New(), OwnerID: userID, AddressID: &addressID}, nil)

	require.NoError(t, svc.SelectAddress(ctx, userID, addressID))
}

func TestCheckoutService_SelectAddress_ForeignAddress(t *testing.T) {
	svc, m := newCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	m.addressRepo.EXPECT().FindAddressByID(ctx, addressID).Return(&entity.Address{ID: addressID, OwnerID: uuid.New()}, nil)

	err := svc.SelectAddress(ctx, userID, addressID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAddressOwnershipViolation)
}

func TestCheckoutService_Checkout_FirstTime(t *testing.T) {
	svc, m := newCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	cart := cartWithItems(userID, 2500, 2)
	cart.AddressID = &addressID
	user := &entity.User{ID: userID, Email: "ada@example.com"}

	m.cartRepo.EXPECT().FindCartByOwner(ctx, userID).Return(cart, nil)
	m.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	m.paymentService.EXPECT().CreateCustomer(ctx, "ada@example.com").Return("cus_123", nil)
	m.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, u *entity.User) {
			require.NotNil(t, u.StripeCustomerID)
			assert.Equal(t, "cus_123", *u.StripeCustomerID)
		}).
		Return(nil)
	m.paymentService.EXPECT().
		CreatePaymentIntent(ctx, "cus_123", int64(5000)).
		Return(&service.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret", Amount: 5000}, nil)
	m.cartRepo.EXPECT().
		UpdateCart(ctx, mock.AnythingOfType("*entity.Cart")).
		Run(func(_ context.Context, c *entity.Cart) {
			require.NotNil(t, c.PaymentIntentID)
			assert.Equal(t, "pi_123", *c.PaymentIntentID)
		}).
		Return(nil)

	output, err := svc.Checkout(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret", output.ClientSecret)
	assert.Equal(t, int64(5000), output.Amount)
}

func TestCheckoutService_Checkout_AmendedCartUpdatesIntent(t *testing.T) {
	svc, m := newCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	intentID := "pi_123"
	customerID := "cus_123"
	cart := cartWithItems(userID, 2500, 3)
	cart.AddressID = &addressID
	cart.PaymentIntentID = &intentID
	user := &entity.User{ID: userID, Email: "ada@example.com", StripeCustomerID: &customerID}

	m.cartRepo.EXPECT().FindCartByOwner(ctx, userID).Return(cart, nil)
	m.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	m.paymentService.EXPECT().
		UpdatePaymentIntent(ctx, intentID, int64(7500)).
		Return(&service.PaymentIntent{ID: intentID, ClientSecret: "pi_123_secret", Amount: 7500}, nil)

	output, err := svc.Checkout(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(7500), output.Amount)
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	svc, m := newCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.cartRepo.EXPECT().FindCartByOwner(ctx, userID).Return(nil, repository.ErrCartNotFound)

	_, err := svc.Checkout(ctx, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCheckoutService_Checkout_NoShippingAddress(t *testing.T) {
	svc, m := newCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	cart := cartWithItems(userID, 2500, 1)

	m.cartRepo.EXPECT().FindCartByOwner(ctx, userID).Return(cart, nil)

	_, err := svc.Checkout(ctx, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNoShippingAddress)
}

func TestCheckoutService_ListCards_NoProfileYet(t *testing.T) {
	svc, m := newCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

	cards, err := svc.ListCards(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestCheckoutService_SetDefaultCard_NoProfile(t *testing.T) {
	svc, m := newCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

	err := svc.SetDefaultCard(ctx, userID, "pm_123")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNoPaymentProfile)
}
