package model

import (
	"time"

	"mazraa/internal/domain/entity"

	"github.com/google/uuid"
)

// SavedDiagnosisModel mirrors the 'saved_diagnoses' table. The structured AI
// result is an opaque payload and is stored as serialized JSON.
type SavedDiagnosisModel struct {
	ID      uuid.UUID              `gorm:"type:uuid;primaryKey"`
	UserID  uuid.UUID              `gorm:"type:uuid;index;not null"`
	Image   string                 `gorm:"type:text"`
	Result  entity.DiagnosisResult `gorm:"serializer:json"`
	SavedAt time.Time              `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SavedDiagnosisModel) TableName() string {
	return "saved_diagnoses"
}

// ToDomain maps the persistence model to a domain saved diagnosis.
func (m *SavedDiagnosisModel) ToDomain() *entity.SavedDiagnosis {
	return &entity.SavedDiagnosis{
		ID:      m.ID,
		UserID:  m.UserID,
		Image:   m.Image,
		Result:  m.Result,
		SavedAt: m.SavedAt,
	}
}

// DiagnosisFromDomain maps a domain saved diagnosis to the persistence model.
func DiagnosisFromDomain(e *entity.SavedDiagnosis) *SavedDiagnosisModel {
	return &SavedDiagnosisModel{
		ID:      e.ID,
		UserID:  e.UserID,
		Image:   e.Image,
		Result:  e.Result,
		SavedAt: e.SavedAt,
	}
}
