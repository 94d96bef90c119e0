package sqlite

import (
	"context"
	"strings"

	"mazraa/internal/domain/entity"
	"mazraa/internal/domain/repository"
	"mazraa/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DirectoryEntry, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return userM.ToDomain(), nil
}

func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.DirectoryEntry, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Where("username = ?", username).First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return userM.ToDomain(), nil
}

func (repo *userRepository) Create(ctx context.Context, entry *entity.DirectoryEntry) error {
	// The unique index on username is the authority here; a pre-insert
	// existence check would leave a window between concurrent registrations.
	userM := model.UserFromDomain(entry)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return repository.ErrUsernameAlreadyTaken
		}

		return errors.Wrap(err, "failed to create user")
	}

	entry.CreatedAt = userM.CreatedAt
	entry.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) Update(ctx context.Context, entry *entity.DirectoryEntry) error {
	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", entry.ID).
		Updates(map[string]any{
			"name":          entry.Name,
			"phone":         entry.Phone,
			"password_hash": entry.PasswordHash,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
