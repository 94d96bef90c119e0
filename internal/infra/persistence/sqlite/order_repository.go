package sqlite

import (
	"context"

	"mazraa/internal/domain/entity"
	"mazraa/internal/domain/repository"
	"mazraa/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements repository.OrderRepository using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := model.OrderFromDomain(order)
	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return errors.Wrap(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt

	return nil
}

func (repo *orderRepository) ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*entity.Order, error) {
	var models []model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("farmer_id = ?", farmerID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list farmer orders")
	}

	return toOrderDomains(models), nil
}

func (repo *orderRepository) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Order, error) {
	var models []model.OrderModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN products ON products.id = orders.product_id").
		Where("products.merchant_id = ?", merchantID).
		Order("orders.created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchant orders")
	}

	return toOrderDomains(models), nil
}

func toOrderDomains(models []model.OrderModel) []*entity.Order {
	out := make([]*entity.Order, 0, len(models))
	for i := range models {
		out = append(out, models[i].ToDomain())
	}

	return out
}
