package model

import (
	"time"

	"mazraa/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null"`
	FarmerID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Quantity  int       `gorm:"not null"`
	Status    string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain maps the persistence model to a domain order.
func (m *OrderModel) ToDomain() *entity.Order {
	return &entity.Order{
		ID:        m.ID,
		ProductID: m.ProductID,
		FarmerID:  m.FarmerID,
		Quantity:  m.Quantity,
		Status:    entity.OrderStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

// OrderFromDomain maps a domain order to the persistence model.
func OrderFromDomain(e *entity.Order) *OrderModel {
	return &OrderModel{
		ID:        e.ID,
		ProductID: e.ProductID,
		FarmerID:  e.FarmerID,
		Quantity:  e.Quantity,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
	}
}
