package impl

import (
	"context"
	"log/slog"

	deliverycontext "ecomshop/internal/delivery/context"
	"ecomshop/internal/domain/entity"
	domainerrors "ecomshop/internal/domain/errors"
	"ecomshop/internal/domain/repository"
	"ecomshop/internal/domain/service"
	"ecomshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager      repository.TransactionManager
	orderRepo      repository.OrderRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	orderRepo repository.OrderRepository,
	eventPublisher service.EventPublisher,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager:      txManager,
		orderRepo:      orderRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder converts the user's checked-out cart into an order snapshot,
// decrements inventory, clears the cart and publishes an order event. The
// snapshot, the stock decrements and the cart reset commit atomically.
func (srv *orderService) CreateOrder(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	srv.log(ctx).Info("Creating order", slog.Any("user_id", userID))

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()
		productRepo := repoFactory.NewProductRepository()
		addressRepo := repoFactory.NewAddressRepository()
		orderRepo := repoFactory.NewOrderRepository()

		// 1. The cart must have gone through the full checkout flow.
		cart, err := cartRepo.FindCartByOwner(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return domainerrors.ErrEmptyCart
			}

			return errors.Wrap(err, "failed to find cart")
		}
		if len(cart.Items) == 0 {
			return domainerrors.ErrEmptyCart
		}
		if cart.AddressID == nil {
			return domainerrors.ErrNoShippingAddress
		}
		if cart.PaymentIntentID == nil {
			return domainerrors.ErrCheckoutIncomplete
		}

		address, err := addressRepo.FindAddressByID(ctx, *cart.AddressID)
		if err != nil {
			return errors.Wrap(err, "failed to find shipping address")
		}

		// 2. Snapshot titles, prices and the shipping address so later catalog
		// and address edits don't rewrite order history.
		order = &entity.Order{
			OwnerID:         userID,
			Amount:          cart.TotalAmount(),
			TotalQuantity:   cart.TotalQuantity(),
			PaymentIntentID: *cart.PaymentIntentID,
			ShipmentStatus:  entity.ShipmentNew,
			Fullname:        address.Fullname,
			Address1:        address.Address1,
			Address2:        address.Address2,
			City:            address.City,
			ZipCode:         address.ZipCode,
			Phone:           address.Phone,
		}

		for _, item := range cart.Items {
			if item.Product == nil {
				return errors.New("cart item is missing its product")
			}

			if err := productRepo.DecrementInventory(ctx, item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, repository.ErrInventoryConflict) {
					return domainerrors.ErrInsufficientInventory
				}

				return errors.Wrap(err, "failed to decrement inventory")
			}

			order.Items = append(order.Items, entity.OrderItem{
				ProductID: item.ProductID,
				Title:     item.Product.Title,
				Price:     item.Product.Price,
				Quantity:  item.Quantity,
			})
		}

		if err := orderRepo.CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		// 3. Reset the cart for the next purchase.
		if err := cartRepo.DeleteItemsByCart(ctx, cart.ID); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		cart.AddressID = nil
		cart.PaymentIntentID = nil
		if err := cartRepo.UpdateCart(ctx, cart); err != nil {
			return errors.Wrap(err, "failed to reset cart")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create order", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, err
	}

	// Fulfilment consumers are downstream of the committed order; a publish
	// failure must not undo the purchase.
	srv.publish(ctx, service.OrderEventPlaced, order)
	srv.log(ctx).Info("Successfully created order", slog.Any("order_id", order.ID), slog.Any("user_id", userID))

	return order, nil
}

// ListOrders returns the user's order history, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindOrdersByOwner(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns a single order the user placed. Foreign orders are reported
// as not found so order IDs can't be probed across accounts.
func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		srv.log(ctx).Error("Failed to find order", slog.Any("error", err), slog.Any("order_id", orderID))

		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.OwnerID != userID {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// publish sends an order event, logging instead of failing on publish errors.
func (srv *orderService) publish(ctx context.Context, kind string, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		Kind:           kind,
		OrderID:        order.ID.String(),
		OwnerID:        order.OwnerID.String(),
		Amount:         order.Amount,
		TotalQuantity:  order.TotalQuantity,
		ShipmentStatus: string(order.ShipmentStatus),
	}

	if err := srv.eventPublisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event", slog.Any("error", err), slog.Any("order_id", order.ID), slog.String("kind", kind))
	}
}
