package usecase

import (
	"context"

	"mazraa/internal/domain/entity"
)

// NotificationUsecase defines the interface for the in-app notification feed.
type NotificationUsecase interface {
	// Feed returns the notifications addressed to the caller (by user id
	// or role match), newest first.
	Feed(ctx context.Context, actor Actor) ([]*entity.Notification, error)

	// MarkAllRead flips IsRead only on the caller's addressed entries.
	MarkAllRead(ctx context.Context, actor Actor) error

	// ClearAll removes only the caller's addressed entries.
	ClearAll(ctx context.Context, actor Actor) error
}
