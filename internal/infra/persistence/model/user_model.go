// Package model contains the GORM persistence models and their mappings to
// and from the pure domain entities.
package model

import (
	"time"

	"mazraa/internal/domain/entity"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table: the account directory, keyed by a
// unique username. Guests are never stored.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	Phone        string    `gorm:"type:varchar(30)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToDomain maps the persistence model to a domain directory entry.
func (m *UserModel) ToDomain() *entity.DirectoryEntry {
	return &entity.DirectoryEntry{
		User: entity.User{
			ID:        m.ID,
			Name:      m.Name,
			Username:  m.Username,
			Role:      entity.Role(m.Role),
			Phone:     m.Phone,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		PasswordHash: m.PasswordHash,
	}
}

// UserFromDomain maps a domain directory entry to the persistence model.
func UserFromDomain(e *entity.DirectoryEntry) *UserModel {
	return &UserModel{
		ID:           e.ID,
		Username:     e.Username,
		Name:         e.Name,
		Role:         e.Role.String(),
		Phone:        e.Phone,
		PasswordHash: e.PasswordHash,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
