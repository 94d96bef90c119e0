package model

import (
	"time"

	"mazraa/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table. UserID and Role are
// both nullable: a notification is addressed to one or the other.
type NotificationModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Role      string     `gorm:"type:varchar(20);index"`
	Type      string     `gorm:"type:varchar(20);not null"`
	Title     string     `gorm:"type:text;not null"`
	Message   string     `gorm:"type:text;not null"`
	IsRead    bool       `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain maps the persistence model to a domain notification.
func (m *NotificationModel) ToDomain() *entity.Notification {
	return &entity.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Role:      entity.Role(m.Role),
		Type:      entity.NotificationType(m.Type),
		Title:     m.Title,
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

// NotificationFromDomain maps a domain notification to the persistence model.
func NotificationFromDomain(e *entity.Notification) *NotificationModel {
	return &NotificationModel{
		ID:        e.ID,
		UserID:    e.UserID,
		Role:      string(e.Role),
		Type:      string(e.Type),
		Title:     e.Title,
		Message:   e.Message,
		IsRead:    e.IsRead,
		CreatedAt: e.CreatedAt,
	}
}
