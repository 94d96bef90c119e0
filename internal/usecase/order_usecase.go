package usecase

import (
	"context"

	"mazraa/internal/domain/entity"
	"mazraa/internal/i18n"

	"github.com/google/uuid"
)

// PlaceOrderInput defines a purchase request.
type PlaceOrderInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// OrderUsecase defines the interface for order operations.
type OrderUsecase interface {
	// PlaceOrder creates a pending order for the calling farmer and, when
	// the product has a known owning merchant, notifies that merchant.
	PlaceOrder(ctx context.Context, actor Actor, input *PlaceOrderInput, loc i18n.Locale) (*entity.Order, error)

	// MyOrders returns the calling farmer's orders, newest first.
	MyOrders(ctx context.Context, actor Actor) ([]*entity.Order, error)

	// MerchantOrders returns orders placed against the calling merchant's
	// products, newest first.
	MerchantOrders(ctx context.Context, actor Actor) ([]*entity.Order, error)
}
