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

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_CreateOrder_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	eventPublisher := mockService.NewMockEventPublisher(t)
	svc := NewOrderService(txManager, orderRepo, eventPublisher, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	intentID := "pi_123"
	orderID := uuid.New()
	productID := uuid.New()

	cart := &entity.Cart{
		ID:              uuid.New(),
		OwnerID:         userID,
		AddressID:       &addressID,
		PaymentIntentID: &intentID,
		Items: []entity.CartItem{
			{
				ID:        uuid.New(),
				ProductID: productID,
				Quantity:  2,
				Product:   &entity.Product{ID: productID, Title: "Leather Watch", Price: 12900, Inventory: 4},
			},
		},
	}
	address := &entity.Address{
		ID: addressID, OwnerID: userID,
		Fullname: "Ada Lovelace", Address1: "12 Analytical Way", City: "London", ZipCode: "EC1A", Phone: "555-0100",
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
			mockFactory.EXPECT().NewAddressRepository().Return(mockAddressRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockCartRepo.EXPECT().FindCartByOwner(ctx, userID).Return(cart, nil)
			mockAddressRepo.EXPECT().FindAddressByID(ctx, addressID).Return(address, nil)
			mockProductRepo.EXPECT().DecrementInventory(ctx, productID, 2).Return(nil)
			mockOrderRepo.EXPECT().
				CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(_ context.Context, order *entity.Order) {
					assert.Equal(t, int64(25800), order.Amount)
					assert.Equal(t, 2, order.TotalQuantity)
					assert.Equal(t, intentID, order.PaymentIntentID)
					assert.Equal(t, entity.ShipmentNew, order.ShipmentStatus)
					assert.Equal(t, "Ada Lovelace", order.Fullname)
					require.Len(t, order.Items, 1)
					assert.Equal(t, "Leather Watch", order.Items[0].Title)
					assert.Equal(t, int64(12900), order.Items[0].Price)
					order.ID = orderID
				}).
				Return(nil)
			mockCartRepo.EXPECT().DeleteItemsByCart(ctx, cart.ID).Return(nil)
			mockCartRepo.EXPECT().
				UpdateCart(ctx, mock.AnythingOfType("*entity.Cart")).
				Run(func(_ context.Context, c *entity.Cart) {
					assert.Nil(t, c.AddressID)
					assert.Nil(t, c.PaymentIntentID)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(_ context.Context, event *service.OrderEvent) {
			assert.Equal(t, service.OrderEventPlaced, event.Kind)
			assert.Equal(t, orderID.String(), event.OrderID)
			assert.Equal(t, int64(25800), event.Amount)
		}).
		Return(nil)

	order, err := svc.CreateOrder(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
}

func TestOrderService_CreateOrder_CheckoutIncomplete(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	eventPublisher := mockService.NewMockEventPublisher(t)
	svc := NewOrderService(txManager, orderRepo, eventPublisher, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	cart := &entity.Cart{
		ID:        uuid.New(),
		OwnerID:   userID,
		AddressID: &addressID,
		Items:     []entity.CartItem{{ID: uuid.New(), Quantity: 1, Product: &entity.Product{Price: 100}}},
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
			mockFactory.EXPECT().NewAddressRepository().Return(mockAddressRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockCartRepo.EXPECT().FindCartByOwner(ctx, userID).Return(cart, nil)

			return fn(mockFactory)
		})

	_, err := svc.CreateOrder(ctx, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutIncomplete)
}

func TestOrderService_CreateOrder_InventoryConflict(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	eventPublisher := mockService.NewMockEventPublisher(t)
	svc := NewOrderService(txManager, orderRepo, eventPublisher, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	intentID := "pi_123"
	productID := uuid.New()
	cart := &entity.Cart{
		ID:              uuid.New(),
		OwnerID:         userID,
		AddressID:       &addressID,
		PaymentIntentID: &intentID,
		Items: []entity.CartItem{
			{ID: uuid.New(), ProductID: productID, Quantity: 5, Product: &entity.Product{ID: productID, Price: 100, Inventory: 1}},
		},
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockAddressRepo := mockRepo.NewMockAddressRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
			mockFactory.EXPECT().NewAddressRepository().Return(mockAddressRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockCartRepo.EXPECT().FindCartByOwner(ctx, userID).Return(cart, nil)
			mockAddressRepo.EXPECT().FindAddressByID(ctx, addressID).Return(&entity.Address{ID: addressID, OwnerID: userID}, nil)
			mockProductRepo.EXPECT().DecrementInventory(ctx, productID, 5).Return(repository.ErrInventoryConflict)

			return fn(mockFactory)
		})

	// No PublishOrderEvent expectation: nothing was sold.
	_, err := svc.CreateOrder(ctx, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientInventory)
}

func TestOrderService_GetOrder_ForeignOrder(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	eventPublisher := mockService.NewMockEventPublisher(t)
	svc := NewOrderService(txManager, orderRepo, eventPublisher, newDiscardLogger())

	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.EXPECT().FindOrderByID(ctx, orderID).Return(&entity.Order{ID: orderID, OwnerID: uuid.New()}, nil)

	_, err := svc.GetOrder(ctx, uuid.New(), orderID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
