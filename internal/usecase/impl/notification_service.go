package impl

import (
	"context"
	"log/slog"

	"mazraa/internal/domain/entity"
	domainerrors "mazraa/internal/domain/errors"
	"mazraa/internal/domain/repository"
	"mazraa/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for notificationService,
// injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

// Feed returns the notifications addressed to the caller, newest first.
func (srv *notificationService) Feed(ctx context.Context, actor usecase.Actor) ([]*entity.Notification, error) {
	if actor.IsGuest() {
		return nil, domainerrors.ErrGuestForbidden
	}

	notifications, err := srv.notificationRepo.ListForUser(ctx, actor.ID, actor.Role)
	if err != nil {
		return nil, errors.Wrap(err, "list notifications")
	}

	return notifications, nil
}

// MarkAllRead flips IsRead only on the caller's addressed entries.
func (srv *notificationService) MarkAllRead(ctx context.Context, actor usecase.Actor) error {
	if actor.IsGuest() {
		return domainerrors.ErrGuestForbidden
	}

	if err := srv.notificationRepo.MarkAllRead(ctx, actor.ID, actor.Role); err != nil {
		return errors.Wrap(err, "mark notifications read")
	}

	return nil
}

// ClearAll removes only the caller's addressed entries.
func (srv *notificationService) ClearAll(ctx context.Context, actor usecase.Actor) error {
	if actor.IsGuest() {
		return domainerrors.ErrGuestForbidden
	}

	if err := srv.notificationRepo.DeleteAllFor(ctx, actor.ID, actor.Role); err != nil {
		return errors.Wrap(err, "clear notifications")
	}

	srv.logger.Info("notifications cleared", slog.Any("userID", actor.ID))

	return nil
}
