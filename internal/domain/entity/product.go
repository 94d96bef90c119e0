package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ModerationStatus is the tri-state lifecycle flag on a product controlling
// marketplace visibility. New products start pending and are approved by the
// moderation pipeline; rejected exists for wire compatibility but no current
// pipeline outcome produces it.
type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "pending"
	ModerationApproved ModerationStatus = "approved"
	ModerationRejected ModerationStatus = "rejected"
)

// IsValid checks if the ModerationStatus is a valid value.
func (s ModerationStatus) IsValid() bool {
	switch s {
	case ModerationPending, ModerationApproved, ModerationRejected:
		return true
	default:
		return false
	}
}

// Product is a treatment product listed on the marketplace by a merchant.
type Product struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"` // Non-negative list price.
	ImageURL    string           `json:"image_url"`
	MerchantID  uuid.UUID        `json:"merchant_id"` // The owning merchant.
	Status      ModerationStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// OwnedBy reports whether the product belongs to the given merchant.
func (p *Product) OwnedBy(merchantID uuid.UUID) bool {
	return p.MerchantID == merchantID
}
