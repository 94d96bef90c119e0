package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle flag on an order. Orders are created pending;
// accepted/rejected are carried for wire compatibility but no operation
// currently transitions an order after creation.
type OrderStatus string

const (
	OrderPending  OrderStatus = "pending"
	OrderAccepted OrderStatus = "accepted"
	OrderRejected OrderStatus = "rejected"
)

// Order is a purchase request linking a farmer, a product and a quantity.
type Order struct {
	ID        uuid.UUID   `json:"id"`
	ProductID uuid.UUID   `json:"product_id"`
	FarmerID  uuid.UUID   `json:"farmer_id"`
	Quantity  int         `json:"quantity"` // Always >= 1.
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}
