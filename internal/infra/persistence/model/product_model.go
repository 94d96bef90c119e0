package model

import (
	"time"

	"mazraa/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric;not null"`
	ImageURL    string          `gorm:"type:text"`
	MerchantID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	Status      string          `gorm:"type:varchar(20);index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain maps the persistence model to a domain product.
func (m *ProductModel) ToDomain() *entity.Product {
	return &entity.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		ImageURL:    m.ImageURL,
		MerchantID:  m.MerchantID,
		Status:      entity.ModerationStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ProductFromDomain maps a domain product to the persistence model.
func ProductFromDomain(e *entity.Product) *ProductModel {
	return &ProductModel{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Price:       e.Price,
		ImageURL:    e.ImageURL,
		MerchantID:  e.MerchantID,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
