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

// productRepository implements repository.ProductRepository using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return productM.ToDomain(), nil
}

func (repo *productRepository) ListApproved(ctx context.Context) ([]*entity.Product, error) {
	var models []model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.ModerationApproved)).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list approved products")
	}

	return toProductDomains(models), nil
}

func (repo *productRepository) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Product, error) {
	var models []model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchant products")
	}

	return toProductDomains(models), nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := model.ProductFromDomain(product)
	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return errors.Wrap(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"image_url":   product.ImageURL,
			"status":      string(product.Status),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// UpdateStatus force-sets the moderation status. An absent id affects zero
// rows and is not an error: a delayed approval may fire after deletion.
func (repo *productRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ModerationStatus) error {
	err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
	if err != nil {
		return errors.Wrap(err, "failed to update product status")
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func toProductDomains(models []model.ProductModel) []*entity.Product {
	out := make([]*entity.Product, 0, len(models))
	for i := range models {
		out = append(out, models[i].ToDomain())
	}

	return out
}
