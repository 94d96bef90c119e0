package repository

import (
	"context"

	"mazraa/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderRepository stores purchase requests.
type OrderRepository interface {
	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// ListByFarmer returns the orders placed by the given farmer, newest first.
	ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*entity.Order, error)

	// ListByMerchant returns the orders placed against any product owned by
	// the given merchant, newest first.
	ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Order, error)
}
