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

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	moderation  *ModerationScheduler
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Moderation  *ModerationScheduler
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		moderation:  params.Moderation,
		logger:      params.Logger,
	}
}

// AddProduct creates a pending product for the calling merchant and schedules
// its delayed approval.
func (srv *catalogService) AddProduct(ctx context.Context, actor usecase.Actor, input *usecase.ProductInput, loc i18n.Locale) (*entity.Product, error) {
	if actor.Role != entity.RoleMerchant {
		return nil, domainerrors.ErrMerchantOnly
	}
	if input.Price.IsNegative() {
		return nil, domainerrors.ErrInvalidPrice
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		MerchantID:  actor.ID,
		Status:      entity.ModerationPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "create product")
	}

	srv.moderation.Schedule(product, loc)
	srv.logger.Info("product submitted for review",
		slog.Any("productID", product.ID), slog.Any("merchantID", actor.ID))

	return product, nil
}

// EditProduct merges the supplied fields into the caller's product. The
// moderation status is deliberately left alone: approval survives edits.
func (srv *catalogService) EditProduct(ctx context.Context, actor usecase.Actor, productID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if actor.Role != entity.RoleMerchant {
		return nil, domainerrors.ErrMerchantOnly
	}
	if input.Price.IsNegative() {
		return nil, domainerrors.ErrInvalidPrice
	}

	product, err := srv.findOwned(ctx, actor, productID)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.ImageURL = input.ImageURL
	product.UpdatedAt = time.Now()

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "update product")
	}

	return product, nil
}

// DeleteProduct removes the caller's product and cancels any pending
// approval, so a deleted product never resurfaces as approved.
func (srv *catalogService) DeleteProduct(ctx context.Context, actor usecase.Actor, productID uuid.UUID) error {
	if actor.Role != entity.RoleMerchant {
		return domainerrors.ErrMerchantOnly
	}

	if _, err := srv.findOwned(ctx, actor, productID); err != nil {
		return err
	}

	srv.moderation.Cancel(productID)

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		return errors.Wrap(err, "delete product")
	}

	srv.logger.Info("product deleted", slog.Any("productID", productID))

	return nil
}

// Storefront returns the public product list: approved only.
func (srv *catalogService) Storefront(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListApproved(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list approved products")
	}

	return products, nil
}

// Dashboard returns the calling merchant's own products, any status.
func (srv *catalogService) Dashboard(ctx context.Context, actor usecase.Actor) ([]*entity.Product, error) {
	if actor.Role != entity.RoleMerchant {
		return nil, domainerrors.ErrMerchantOnly
	}

	products, err := srv.productRepo.ListByMerchant(ctx, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "list merchant products")
	}

	return products, nil
}

func (srv *catalogService) findOwned(ctx context.Context, actor usecase.Actor, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "lookup product")
	}

	if !product.OwnedBy(actor.ID) {
		return nil, domainerrors.ErrNotProductOwner
	}

	return product, nil
}
