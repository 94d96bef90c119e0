package usecase

import (
	"context"

	"mazraa/internal/domain/entity"
	"mazraa/internal/i18n"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput defines the merchant-supplied product fields.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
}

// CatalogUsecase defines the interface for marketplace product operations.
type CatalogUsecase interface {
	// AddProduct creates a pending product for the calling merchant and
	// schedules its delayed moderation approval. The locale fixes the
	// language of the approval notification.
	AddProduct(ctx context.Context, actor Actor, input *ProductInput, loc i18n.Locale) (*entity.Product, error)

	// EditProduct merges the supplied fields into the caller's product.
	// Moderation status is deliberately not reset: approval, once granted,
	// survives edits.
	EditProduct(ctx context.Context, actor Actor, productID uuid.UUID, input *ProductInput) (*entity.Product, error)

	// DeleteProduct removes the caller's product and cancels any pending
	// approval for it.
	DeleteProduct(ctx context.Context, actor Actor, productID uuid.UUID) error

	// Storefront returns the public product list: approved only.
	Storefront(ctx context.Context) ([]*entity.Product, error)

	// Dashboard returns the calling merchant's own products, any status.
	Dashboard(ctx context.Context, actor Actor) ([]*entity.Product, error)
}
