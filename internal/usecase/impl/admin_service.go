package impl

import (
	"context"
	"log/slog"

	deliverycontext "ecomshop/internal/delivery/context"
	"ecomshop/internal/domain/entity"
	domainerrors "ecomshop/internal/domain/errors"
	"ecomshop/internal/domain/repository"
	"ecomshop/internal/domain/service"
	"ecomshop/internal/infra/cache"
	"ecomshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager      repository.TransactionManager
	productRepo    repository.ProductRepository
	orderRepo      repository.OrderRepository
	userRepo       repository.UserRepository
	imageService   service.ImageService
	eventPublisher service.EventPublisher
	productCache   *cache.ProductCache
	logger         *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	txManager repository.TransactionManager,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	imageService service.ImageService,
	eventPublisher service.EventPublisher,
	productCache *cache.ProductCache,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		txManager:      txManager,
		productRepo:    productRepo,
		orderRepo:      orderRepo,
		userRepo:       userRepo,
		imageService:   imageService,
		eventPublisher: eventPublisher,
		productCache:   productCache,
		logger:         logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct stores a new product, uploading its image first.
func (srv *adminService) CreateProduct(ctx context.Context, creatorID uuid.UUID, input usecase.ProductInput, image *usecase.ImageInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.String("title", input.Title), slog.Any("creator_id", creatorID))

	if !input.Category.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown category")
	}
	if image == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "a product image is required")
	}

	upload, err := srv.imageService.Upload(ctx, image.FileName, image.Content)
	if err != nil {
		srv.log(ctx).Error("Failed to upload product image", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrImageUploadFailed, err.Error())
	}

	product := &entity.Product{
		Title:         input.Title,
		Description:   input.Description,
		Price:         input.Price,
		Category:      input.Category,
		Inventory:     input.Inventory,
		ImageURL:      upload.URL,
		ImageFileName: image.FileName,
		ImagePublicID: upload.PublicID,
		CreatorID:     creatorID,
	}

	if err := srv.productRepo.CreateProduct(ctx, product); err != nil {
		// The row never landed, so the uploaded asset is unreferenced.
		srv.deleteImage(ctx, upload.PublicID)
		srv.log(ctx).Error("Failed to create product", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}
	srv.log(ctx).Info("Successfully created product", slog.Any("product_id", product.ID))

	return product, nil
}

// UpdateProduct overwrites a product's fields, swapping the hosted image when a
// new one is supplied.
func (srv *adminService) UpdateProduct(ctx context.Context, productID uuid.UUID, input usecase.ProductInput, image *usecase.ImageInput) (*entity.Product, error) {
	srv.log(ctx).Info("Updating product", slog.Any("product_id", productID))

	if !input.Category.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown category")
	}

	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if image == nil && productUnchanged(product, input) {
		return nil, domainerrors.ErrNothingChanged
	}

	oldPublicID := ""
	if image != nil {
		upload, err := srv.imageService.Upload(ctx, image.FileName, image.Content)
		if err != nil {
			srv.log(ctx).Error("Failed to upload product image", slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrImageUploadFailed, err.Error())
		}

		oldPublicID = product.ImagePublicID
		product.ImageURL = upload.URL
		product.ImageFileName = image.FileName
		product.ImagePublicID = upload.PublicID
	}

	product.Title = input.Title
	product.Description = input.Description
	product.Price = input.Price
	product.Category = input.Category
	product.Inventory = input.Inventory

	if err := srv.productRepo.UpdateProduct(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to update product", slog.Any("error", err), slog.Any("product_id", productID))

		return nil, errors.Wrap(err, "failed to update product")
	}

	// Only delete the replaced asset once the new one is referenced.
	if oldPublicID != "" {
		srv.deleteImage(ctx, oldPublicID)
	}
	srv.productCache.Invalidate(ctx, productID)

	return product, nil
}

// DeleteProduct removes a product and its hosted image.
func (srv *adminService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	srv.log(ctx).Info("Deleting product", slog.Any("product_id", productID))

	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return err
	}

	if err := srv.productRepo.DeleteProduct(ctx, productID); err != nil {
		srv.log(ctx).Error("Failed to delete product", slog.Any("error", err), slog.Any("product_id", productID))

		return errors.Wrap(err, "failed to delete product")
	}

	srv.deleteImage(ctx, product.ImagePublicID)
	srv.productCache.Invalidate(ctx, productID)

	return nil
}

// ListOrders returns every order in the store, newest first.
func (srv *adminService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListOrders(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns any order by ID.
func (srv *adminService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		srv.log(ctx).Error("Failed to find order", slog.Any("error", err), slog.Any("order_id", orderID))

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// UpdateOrderStatus moves an order to a new shipment status.
func (srv *adminService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.ShipmentStatus) (*entity.Order, error) {
	srv.log(ctx).Info("Updating shipment status", slog.Any("order_id", orderID), slog.String("status", string(status)))

	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidShipmentStatus
	}

	order, err := srv.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.ShipmentStatus == status {
		return nil, domainerrors.ErrShipmentStatusUnchanged
	}

	if err := srv.orderRepo.UpdateShipmentStatus(ctx, orderID, status); err != nil {
		srv.log(ctx).Error("Failed to update shipment status", slog.Any("error", err), slog.Any("order_id", orderID))

		return nil, errors.Wrap(err, "failed to update shipment status")
	}

	order.ShipmentStatus = status
	srv.publishStatusChange(ctx, order)

	return order, nil
}

// ListUsers returns one page of accounts.
func (srv *adminService) ListUsers(ctx context.Context, page, limit int) (*usecase.UserListOutput, error) {
	if limit < 1 {
		limit = defaultPageLimit
	}
	if page < 1 {
		page = defaultPage
	}

	offset := (page - 1) * limit

	users, total, err := srv.userRepo.List(ctx, offset, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	totalQueries := int((total + int64(limit) - 1) / int64(limit))

	return &usecase.UserListOutput{
		Users:        users,
		TotalQueries: totalQueries,
		HasMore:      page+1 <= totalQueries,
	}, nil
}

// GetUser returns a single account by ID.
func (srv *adminService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		srv.log(ctx).Error("Failed to find user", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateUserRole changes an account's role.
func (srv *adminService) UpdateUserRole(ctx context.Context, actorID, userID uuid.UUID, role entity.Role) (*entity.User, error) {
	srv.log(ctx).Info("Updating user role", slog.Any("actor_id", actorID), slog.Any("user_id", userID), slog.String("role", string(role)))

	if actorID == userID {
		return nil, domainerrors.ErrSelfRoleEdit
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidRole
	}

	user, err := srv.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role == role {
		return nil, domainerrors.ErrRoleUnchanged
	}

	user.Role = role
	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to update user role", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, errors.Wrap(domainerrors.ErrUserUpdateFailed, err.Error())
	}

	return user, nil
}

// DeleteUser removes an account and its sessions atomically.
func (srv *adminService) DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error {
	srv.log(ctx).Info("Deleting user", slog.Any("actor_id", actorID), slog.Any("user_id", userID))

	if actorID == userID {
		return domainerrors.ErrSelfRoleEdit
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		sessionRepo := repoFactory.NewSessionRepository()

		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		// Dropping the sessions logs the account out everywhere at once.
		if err := sessionRepo.DeleteSessionsByOwner(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete sessions")
		}

		if err := userRepo.Delete(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete user", slog.Any("error", err), slog.Any("user_id", userID))

		return err
	}
	srv.log(ctx).Info("Successfully deleted user", slog.Any("user_id", userID))

	return nil
}

// findProduct loads a product, translating the repository sentinel.
func (srv *adminService) findProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		srv.log(ctx).Error("Failed to find product", slog.Any("error", err), slog.Any("product_id", productID))

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// deleteImage best-effort removes a hosted asset; a leak is logged, not fatal.
func (srv *adminService) deleteImage(ctx context.Context, publicID string) {
	if publicID == "" {
		return
	}

	if err := srv.imageService.Delete(ctx, publicID); err != nil {
		srv.log(ctx).Warn("Failed to delete hosted image", slog.Any("error", err), slog.String("public_id", publicID))
	}
}

// publishStatusChange emits a status event, logging instead of failing on publish errors.
func (srv *adminService) publishStatusChange(ctx context.Context, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		Kind:           service.OrderEventStatusChanged,
		OrderID:        order.ID.String(),
		OwnerID:        order.OwnerID.String(),
		Amount:         order.Amount,
		TotalQuantity:  order.TotalQuantity,
		ShipmentStatus: string(order.ShipmentStatus),
	}

	if err := srv.eventPublisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event", slog.Any("error", err), slog.Any("order_id", order.ID))
	}
}

// productUnchanged reports whether the payload matches the stored product field by field.
func productUnchanged(product *entity.Product, input usecase.ProductInput) bool {
	return product.Title == input.Title &&
		product.Description == input.Description &&
		product.Price == input.Price &&
		product.Category == input.Category &&
		product.Inventory == input.Inventory
}
