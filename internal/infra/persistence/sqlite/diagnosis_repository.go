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

// diagnosisRepository implements repository.DiagnosisRepository using GORM.
type diagnosisRepository struct {
	db *gorm.DB
}

// NewDiagnosisRepository is the constructor for diagnosisRepository.
func NewDiagnosisRepository(db *gorm.DB) repository.DiagnosisRepository {
	return &diagnosisRepository{db: db}
}

func (repo *diagnosisRepository) Create(ctx context.Context, diagnosis *entity.SavedDiagnosis) error {
	diagnosisM := model.DiagnosisFromDomain(diagnosis)
	if err := repo.db.WithContext(ctx).Create(diagnosisM).Error; err != nil {
		return errors.Wrap(err, "failed to save diagnosis")
	}

	return nil
}

func (repo *diagnosisRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavedDiagnosis, error) {
	var models []model.SavedDiagnosisModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("saved_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list diagnoses")
	}

	out := make([]*entity.SavedDiagnosis, 0, len(models))
	for i := range models {
		out = append(out, models[i].ToDomain())
	}

	return out, nil
}
