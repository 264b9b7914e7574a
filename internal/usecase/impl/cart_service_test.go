package impl

import (
	"context"
	"testing"

	"ecomshop/internal/domain/entity"
	domainerrors "ecomshop/internal/domain/errors"
	"ecomshop/internal/domain/repository"
	mockRepo "ecomshop/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_GetCart_NoCartYet(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	svc := NewCartService(txManager, cartRepo, productRepo, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()

	cartRepo.EXPECT().FindCartByOwner(ctx, userID).Return(nil, repository.ErrCartNotFound)

	cart, err := svc.GetCart(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, cart.OwnerID)
	assert.Empty(t, cart.Items)
}

func TestCartService_AddItem_CreatesCartLazily(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	svc := NewCartService(txManager, cartRepo, productRepo, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	cartID := uuid.New()
	product := &entity.Product{ID: productID, Inventory: 5}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)

			mockProductRepo.EXPECT().FindProductByID(ctx, productID).Return(product, nil)
			mockCartRepo.EXPECT().FindCartByOwner(ctx, userID).Return(nil, repository.ErrCartNotFound)
			mockCartRepo.EXPECT().
				CreateCart(ctx, mock.AnythingOfType("*entity.Cart")).
				Run(func(_ context.Context, cart *entity.Cart) {
					assert.Equal(t, userID, cart.OwnerID)
					cart.ID = cartID
				}).
				Return(nil)
			mockCartRepo.EXPECT().FindItemByProduct(ctx, cartID, productID).Return(nil, repository.ErrCartItemNotFound)
			mockCartRepo.EXPECT().
				CreateItem(ctx, mock.AnythingOfType("*entity.CartItem")).
				Run(func(_ context.Context, item *entity.CartItem) {
					assert.Equal(t, cartID, item.CartID)
					assert.Equal(t, 2, item.Quantity)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	cartRepo.EXPECT().FindCartByOwner(ctx, userID).Return(&entity.Cart{ID: cartID, OwnerID: userID}, nil)

	cart, err := svc.AddItem(ctx, userID, productID, 2)

	require.NoError(t, err)
	assert.Equal(t, cartID, cart.ID)
}

func TestCartService_AddItem_MergeExceedsInventory(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	svc := NewCartService(txManager, cartRepo, productRepo, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	cartID := uuid.New()
	product := &entity.Product{ID: productID, Inventory: 3}
	existing := &entity.CartItem{ID: uuid.New(), CartID: cartID, ProductID: productID, Quantity: 2}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)

			mockProductRepo.EXPECT().FindProductByID(ctx, productID).Return(product, nil)
			mockCartRepo.EXPECT().FindCartByOwner(ctx, userID).Return(&entity.Cart{ID: cartID, OwnerID: userID}, nil)
			mockCartRepo.EXPECT().FindItemByProduct(ctx, cartID, productID).Return(existing, nil)

			return fn(mockFactory)
		})

	_, err := svc.AddItem(ctx, userID, productID, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientInventory)
}

func TestCartService_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	svc := NewCartService(txManager, cartRepo, productRepo, newDiscardLogger())

	_, err := svc.AddItem(context.Background(), uuid.New(), uuid.New(), 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNegativeQuantity)
}

func TestCartService_AdjustItem_ToZeroDeletesLine(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	svc := NewCartService(txManager, cartRepo, productRepo, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	itemID := uuid.New()
	item := &entity.CartItem{ID: itemID, CartID: cartID, Quantity: 1, Product: &entity.Product{Inventory: 5}}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)

			mockCartRepo.EXPECT().FindItemByID(ctx, itemID).Return(item, nil)
			mockCartRepo.EXPECT().FindCartByOwner(ctx, userID).Return(&entity.Cart{ID: cartID, OwnerID: userID}, nil)
			mockCartRepo.EXPECT().DeleteItem(ctx, itemID).Return(nil)

			return fn(mockFactory)
		})

	cartRepo.EXPECT().FindCartByOwner(ctx, userID).Return(&entity.Cart{ID: cartID, OwnerID: userID}, nil)

	_, err := svc.AdjustItem(ctx, userID, itemID, -1)

	require.NoError(t, err)
}

func TestCartService_AdjustItem_BelowZero(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	svc := NewCartService(txManager, cartRepo, productRepo, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	itemID := uuid.New()
	item := &entity.CartItem{ID: itemID, CartID: cartID, Quantity: 1}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)

			mockCartRepo.EXPECT().FindItemByID(ctx, itemID).Return(item, nil)
			mockCartRepo.EXPECT().FindCartByOwner(ctx, userID).Return(&entity.Cart{ID: cartID, OwnerID: userID}, nil)

			return fn(mockFactory)
		})

	_, err := svc.AdjustItem(ctx, userID, itemID, -2)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNegativeQuantity)
}

func TestCartService_RemoveItem_ForeignItem(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	svc := NewCartService(txManager, cartRepo, productRepo, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	// The item sits in somebody else's cart.
	item := &entity.CartItem{ID: itemID, CartID: uuid.New(), Quantity: 1}

	cartRepo.EXPECT().FindItemByID(ctx, itemID).Return(item, nil)
	cartRepo.EXPECT().FindCartByOwner(ctx, userID).Return(&entity.Cart{ID: uuid.New(), OwnerID: userID}, nil)

	_, err := svc.RemoveItem(ctx, userID, itemID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}
