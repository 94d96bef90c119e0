package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies a notification for presentation purposes.
type NotificationType string

const (
	NotificationInfo  NotificationType = "info"
	NotificationAlert NotificationType = "alert"
	NotificationOrder NotificationType = "order"
)

// Notification is a message addressed either to a specific user or broadcast
// to a role. Exactly one of UserID/Role is normally set; neither is required
// to be, and a notification with both matches on either.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    *uuid.UUID       `json:"user_id,omitempty"` // Target user, if user-addressed.
	Role      Role             `json:"role,omitempty"`    // Target role, if role-addressed.
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

// AddressedTo reports whether this notification is for the given identity:
// its user id matches, or its role matches the identity's role.
func (n *Notification) AddressedTo(user *User) bool {
	if user == nil {
		return false
	}
	if n.UserID != nil && *n.UserID == user.ID {
		return true
	}

	return n.Role != "" && n.Role == user.Role
}
