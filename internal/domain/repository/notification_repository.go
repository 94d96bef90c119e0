package repository

import (
	"context"

	"mazraa/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationRepository stores in-app notifications, addressed to a user ID
// or broadcast to a role.
type NotificationRepository interface {
	// Create persists a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// ListForUser returns the notifications addressed to the identity (by
	// user ID or role match), newest first.
	ListForUser(ctx context.Context, userID uuid.UUID, role entity.Role) ([]*entity.Notification, error)

	// MarkAllRead flips IsRead on every notification addressed to the
	// identity, leaving all others untouched.
	MarkAllRead(ctx context.Context, userID uuid.UUID, role entity.Role) error

	// DeleteAllFor removes every notification addressed to the identity,
	// leaving all others untouched.
	DeleteAllFor(ctx context.Context, userID uuid.UUID, role entity.Role) error
}
