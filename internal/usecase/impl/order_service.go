package impl

import (
	"context"
	"log/slog"
	"time"

	"mazraa/internal/domain/entity"
	domainerrors "mazraa/internal/domain/errors"
	"mazraa/internal/domain/repository"
	"mazraa/internal/i18n"
	"mazraa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo        repository.OrderRepository
	productRepo      repository.ProductRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo        repository.OrderRepository
	ProductRepo      repository.ProductRepository
	UserRepo         repository.UserRepository
	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:        params.OrderRepo,
		productRepo:      params.ProductRepo,
		userRepo:         params.UserRepo,
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

// PlaceOrder creates a pending order for the calling farmer and notifies the
// owning merchant.
func (srv *orderService) PlaceOrder(ctx context.Context, actor usecase.Actor, input *usecase.PlaceOrderInput, loc i18n.Locale) (*entity.Order, error) {
	if actor.Role != entity.RoleFarmer {
		return nil, domainerrors.ErrFarmerOnly
	}
	if input.Quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "lookup product")
	}

	order := &entity.Order{
		ID:        uuid.New(),
		ProductID: product.ID,
		FarmerID:  actor.ID,
		Quantity:  input.Quantity,
		Status:    entity.OrderPending,
		CreatedAt: time.Now(),
	}
	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "create order")
	}

	srv.notifyMerchant(ctx, actor, product, order, loc)
	srv.logger.Info("order placed",
		slog.Any("orderID", order.ID), slog.Any("productID", product.ID), slog.Any("farmerID", actor.ID))

	return order, nil
}

// MyOrders returns the calling farmer's orders, newest first.
func (srv *orderService) MyOrders(ctx context.Context, actor usecase.Actor) ([]*entity.Order, error) {
	if actor.Role != entity.RoleFarmer {
		return nil, domainerrors.ErrFarmerOnly
	}

	orders, err := srv.orderRepo.ListByFarmer(ctx, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "list farmer orders")
	}

	return orders, nil
}

// MerchantOrders returns orders placed against the calling merchant's
// products, newest first.
func (srv *orderService) MerchantOrders(ctx context.Context, actor usecase.Actor) ([]*entity.Order, error) {
	if actor.Role != entity.RoleMerchant {
		return nil, domainerrors.ErrMerchantOnly
	}

	orders, err := srv.orderRepo.ListByMerchant(ctx, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "list merchant orders")
	}

	return orders, nil
}

// notifyMerchant records an order notification for the product's owner. A
// failure here never fails the order itself.
func (srv *orderService) notifyMerchant(ctx context.Context, actor usecase.Actor, product *entity.Product, order *entity.Order, loc i18n.Locale) {
	farmerName := actor.ID.String()
	if entry, err := srv.userRepo.FindByID(ctx, actor.ID); err == nil {
		farmerName = entry.Name
	}

	merchantID := product.MerchantID
	notification := &entity.Notification{
		ID:        uuid.New(),
		UserID:    &merchantID,
		Type:      entity.NotificationOrder,
		Title:     i18n.MsgNewOrderTitle.In(loc),
		Message:   i18n.NewOrderMessage(loc, farmerName, product.Name, order.Quantity),
		CreatedAt: time.Now(),
	}
	if err := srv.notificationRepo.Create(ctx, notification); err != nil {
		srv.logger.Error("order notification failed", slog.Any("orderID", order.ID), slog.Any("error", err))
	}
}
