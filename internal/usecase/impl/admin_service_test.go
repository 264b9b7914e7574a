package impl

import (
	"context"
	"strings"
	"testing"

	"ecomshop/internal/domain/entity"
	domainerrors "ecomshop/internal/domain/errors"
	"ecomshop/internal/domain/repository"
	"ecomshop/internal/domain/service"
	mockRepo "ecomshop/internal/mocks/repository"
	mockService "ecomshop/internal/mocks/service"
	"ecomshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceMocks struct {
	txManager      *mockRepo.MockTransactionManager
	productRepo    *mockRepo.MockProductRepository
	orderRepo      *mockRepo.MockOrderRepository
	userRepo       *mockRepo.MockUserRepository
	imageService   *mockService.MockImageService
	eventPublisher *mockService.MockEventPublisher
}

func newAdminService(t *testing.T) (usecase.AdminUsecase, *adminServiceMocks) {
	m := &adminServiceMocks{
		txManager:      mockRepo.NewMockTransactionManager(t),
		productRepo:    mockRepo.NewMockProductRepository(t),
		orderRepo:      mockRepo.NewMockOrderRepository(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		imageService:   mockService.NewMockImageService(t),
		eventPublisher: mockService.NewMockEventPublisher(t),
	}
	svc := NewAdminService(m.txManager, m.productRepo, m.orderRepo, m.userRepo, m.imageService, m.eventPublisher, nil, newDiscardLogger())

	return svc, m
}

func validProductInput() usecase.ProductInput {
	return usecase.ProductInput{
		Title:       "Leather Watch",
		Description: "A watch.",
		Price:       12900,
		Category:    entity.CategoryWatches,
		Inventory:   10,
	}
}

func TestAdminService_CreateProduct_Success(t *testing.T) {
	svc, m := newAdminService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	image := &usecase.ImageInput{FileName: "watch.jpg", Content: strings.NewReader("jpeg-bytes")}

	m.imageService.EXPECT().
		Upload(ctx, "watch.jpg", image.Content).
		Return(&service.ImageUpload{URL: "https://img.example/watch.jpg", PublicID: "shop/watch"}, nil)
	m.productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			assert.Equal(t, "https://img.example/watch.jpg", product.ImageURL)
			assert.Equal(t, "shop/watch", product.ImagePublicID)
			assert.Equal(t, creatorID, product.CreatorID)
		}).
		Return(nil)

	product, err := svc.CreateProduct(ctx, creatorID, validProductInput(), image)

	require.NoError(t, err)
	assert.Equal(t, "Leather Watch", product.Title)
}

func TestAdminService_CreateProduct_MissingImage(t *testing.T) {
	svc, _ := newAdminService(t)

	_, err := svc.CreateProduct(context.Background(), uuid.New(), validProductInput(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_CreateProduct_StoreFailureCleansUpImage(t *testing.T) {
	svc, m := newAdminService(t)

	ctx := context.Background()
	image := &usecase.ImageInput{FileName: "watch.jpg", Content: strings.NewReader("jpeg-bytes")}

	m.imageService.EXPECT().
		Upload(ctx, "watch.jpg", image.Content).
		Return(&service.ImageUpload{URL: "https://img.example/watch.jpg", PublicID: "shop/watch"}, nil)
	m.productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(errors.New("db down"))
	m.imageService.EXPECT().Delete(ctx, "shop/watch").Return(nil)

	_, err := svc.CreateProduct(ctx, uuid.New(), validProductInput(), image)

	require.Error(t, err)
}

func TestAdminService_UpdateProduct_NothingChanged(t *testing.T) {
	svc, m := newAdminService(t)

	ctx := context.Background()
	productID := uuid.New()
	input := validProductInput()
	stored := &entity.Product{
		ID:          productID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Inventory:   input.Inventory,
	}

	m.productRepo.EXPECT().FindProductByID(ctx, productID).Return(stored, nil)

	_, err := svc.UpdateProduct(ctx, productID, input, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNothingChanged)
}

func TestAdminService_UpdateProduct_SwapsImage(t *testing.T) {
	svc, m := newAdminService(t)

	ctx := context.Background()
	productID := uuid.New()
	input := validProductInput()
	stored := &entity.Product{ID: productID, Title: "Old Title", ImagePublicID: "shop/old"}
	image := &usecase.ImageInput{FileName: "new.jpg", Content: strings.NewReader("jpeg-bytes")}

	m.productRepo.EXPECT().FindProductByID(ctx, productID).Return(stored, nil)
	m.imageService.EXPECT().
		Upload(ctx, "new.jpg", image.Content).
		Return(&service.ImageUpload{URL: "https://img.example/new.jpg", PublicID: "shop/new"}, nil)
	m.productRepo.EXPECT().
		UpdateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			assert.Equal(t, "shop/new", product.ImagePublicID)
			assert.Equal(t, input.Title, product.Title)
		}).
		Return(nil)
	m.imageService.EXPECT().Delete(ctx, "shop/old").Return(nil)

	product, err := svc.UpdateProduct(ctx, productID, input, image)

	require.NoError(t, err)
	assert.Equal(t, "https://img.example/new.jpg", product.ImageURL)
}

func TestAdminService_UpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name    string
		current entity.ShipmentStatus
		next    entity.ShipmentStatus
		wantErr error
	}{
		{name: "valid transition", current: entity.ShipmentNew, next: entity.ShipmentShipped},
		{name: "unknown status", current: entity.ShipmentNew, next: entity.ShipmentStatus("Teleported"), wantErr: domainerrors.ErrInvalidShipmentStatus},
		{name: "unchanged status", current: entity.ShipmentShipped, next: entity.ShipmentShipped, wantErr: domainerrors.ErrShipmentStatusUnchanged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAdminService(t)

			ctx := context.Background()
			orderID := uuid.New()

			if tt.next.IsValid() {
				m.orderRepo.EXPECT().FindOrderByID(ctx, orderID).Return(&entity.Order{ID: orderID, ShipmentStatus: tt.current}, nil)
			}
			if tt.wantErr == nil {
				m.orderRepo.EXPECT().UpdateShipmentStatus(ctx, orderID, tt.next).Return(nil)
				m.eventPublisher.EXPECT().
					PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
					Run(func(_ context.Context, event *service.OrderEvent) {
						assert.Equal(t, service.OrderEventStatusChanged, event.Kind)
						assert.Equal(t, string(tt.next), event.ShipmentStatus)
					}).
					Return(nil)
			}

			order, err := svc.UpdateOrderStatus(ctx, orderID, tt.next)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.next, order.ShipmentStatus)
		})
	}
}

func TestAdminService_UpdateUserRole(t *testing.T) {
	actorID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name     string
		targetID uuid.UUID
		role     entity.Role
		current  entity.Role
		wantErr  error
	}{
		{name: "promote to admin", targetID: userID, role: entity.RoleAdmin, current: entity.RoleClient},
		{name: "own account", targetID: actorID, role: entity.RoleAdmin, wantErr: domainerrors.ErrSelfRoleEdit},
		{name: "unknown role", targetID: userID, role: entity.Role("WIZARD"), wantErr: domainerrors.ErrInvalidRole},
		{name: "role already held", targetID: userID, role: entity.RoleAdmin, current: entity.RoleAdmin, wantErr: domainerrors.ErrRoleUnchanged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAdminService(t)

			ctx := context.Background()

			if tt.targetID != actorID && tt.role.IsValid() {
				m.userRepo.EXPECT().FindByID(ctx, tt.targetID).Return(&entity.User{ID: tt.targetID, Role: tt.current}, nil)
			}
			if tt.wantErr == nil {
				m.userRepo.EXPECT().
					Update(ctx, mock.AnythingOfType("*entity.User")).
					Run(func(_ context.Context, user *entity.User) {
						assert.Equal(t, tt.role, user.Role)
					}).
					Return(nil)
			}

			user, err := svc.UpdateUserRole(ctx, actorID, tt.targetID, tt.role)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.role, user.Role)
		})
	}
}

func TestAdminService_DeleteUser_Success(t *testing.T) {
	svc, m := newAdminService(t)

	ctx := context.Background()
	actorID := uuid.New()
	userID := uuid.New()

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewSessionRepository().Return(mockSessionRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
			mockSessionRepo.EXPECT().DeleteSessionsByOwner(ctx, userID).Return(nil)
			mockUserRepo.EXPECT().Delete(ctx, userID).Return(nil)

			return fn(mockFactory)
		})

	require.NoError(t, svc.DeleteUser(ctx, actorID, userID))
}

func TestAdminService_DeleteUser_OwnAccount(t *testing.T) {
	svc, _ := newAdminService(t)

	actorID := uuid.New()

	err := svc.DeleteUser(context.Background(), actorID, actorID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSelfRoleEdit)
}

func TestAdminService_ListUsers_Pagination(t *testing.T) {
	svc, m := newAdminService(t)

	ctx := context.Background()

	m.userRepo.EXPECT().
		List(ctx, 3, 3).
		Return([]*entity.User{{ID: uuid.New()}}, int64(7), nil)

	output, err := svc.ListUsers(ctx, 2, 3)

	require.NoError(t, err)
	assert.Equal(t, 3, output.TotalQueries)
	assert.True(t, output.HasMore)
}
