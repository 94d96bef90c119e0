package repository

import (
	"context"

	"mazraa/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductRepository stores marketplace products.
type ProductRepository interface {
	// FindByID retrieves a single product by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListApproved returns the public storefront view: approved products,
	// newest first.
	ListApproved(ctx context.Context) ([]*entity.Product, error)

	// ListByMerchant returns every product owned by the given merchant
	// regardless of moderation status, newest first.
	ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update overwrites an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// UpdateStatus sets the moderation status of the product with the given
	// ID. Updating an absent ID is a no-op, not an error: a delayed approval
	// may fire after its product was deleted.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ModerationStatus) error

	// Delete removes the product with the given ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
