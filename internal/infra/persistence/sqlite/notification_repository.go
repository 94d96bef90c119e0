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

// notificationRepository implements repository.NotificationRepository using GORM.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := model.NotificationFromDomain(notification)
	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	return nil
}

func (repo *notificationRepository) ListForUser(ctx context.Context, userID uuid.UUID, role entity.Role) ([]*entity.Notification, error) {
	var models []model.NotificationModel
	err := repo.db.WithContext(ctx).
		Where(repo.addressedClause(userID, role)).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	out := make([]*entity.Notification, 0, len(models))
	for i := range models {
		out = append(out, models[i].ToDomain())
	}

	return out, nil
}

func (repo *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	err := repo.db.WithContext(ctx).Model(&model.NotificationModel{}).
		Where(repo.addressedClause(userID, role)).
		Update("is_read", true).Error
	if err != nil {
		return errors.Wrap(err, "failed to mark notifications read")
	}

	return nil
}

func (repo *notificationRepository) DeleteAllFor(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	err := repo.db.WithContext(ctx).
		Where(repo.addressedClause(userID, role)).
		Delete(&model.NotificationModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to clear notifications")
	}

	return nil
}

// addressedClause selects the notifications "for" an identity: addressed to
// its user id, or broadcast to its role.
func (repo *notificationRepository) addressedClause(userID uuid.UUID, role entity.Role) *gorm.DB {
	return repo.db.Where("user_id = ?", userID).Or("role = ?", role.String())
}
