package repository

import (
	"context"

	"mazraa/internal/domain/entity"

	"github.com/google/uuid"
)

// DiagnosisRepository stores saved diagnosis records. Append-only; records
// are never edited after creation.
type DiagnosisRepository interface {
	// Create persists a new saved diagnosis.
	Create(ctx context.Context, diagnosis *entity.SavedDiagnosis) error

	// ListByUser returns the diagnoses saved by the given farmer, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavedDiagnosis, error)
}
