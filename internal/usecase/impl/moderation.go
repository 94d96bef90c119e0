package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mazraa/config"
	"mazraa/internal/domain/entity"
	"mazraa/internal/domain/repository"
	"mazraa/internal/i18n"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ModerationScheduler auto-approves pending products after a fixed delay and
// notifies the owning merchant. Timers are tracked per product so a deletion
// before the delay elapses cancels the transition.
type ModerationScheduler struct {
	productRepo      repository.ProductRepository
	notificationRepo repository.NotificationRepository
	delay            time.Duration
	logger           *slog.Logger

	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer
}

// ModerationSchedulerParams holds dependencies for ModerationScheduler,
// injected by Fx.
type ModerationSchedulerParams struct {
	fx.In

	Lifecycle        fx.Lifecycle `optional:"true"`
	Config           *config.Config
	ProductRepo      repository.ProductRepository
	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewModerationScheduler is the constructor for ModerationScheduler.
func NewModerationScheduler(params ModerationSchedulerParams) *ModerationScheduler {
	scheduler := newModerationScheduler(params)
	if params.Lifecycle != nil {
		params.Lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error {
				scheduler.Stop()

				return nil
			},
		})
	}

	return scheduler
}

func newModerationScheduler(params ModerationSchedulerParams) *ModerationScheduler {
	return &ModerationScheduler{
		productRepo:      params.ProductRepo,
		notificationRepo: params.NotificationRepo,
		delay:            params.Config.Moderation.ApprovalDelay,
		logger:           params.Logger,
		timers:           make(map[uuid.UUID]*time.Timer),
	}
}

// Schedule arms the approval timer for a freshly submitted product. The
// locale of the submitting request fixes the language of the eventual
// notification.
func (m *ModerationScheduler) Schedule(product *entity.Product, loc i18n.Locale) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.timers[product.ID]; ok {
		prev.Stop()
	}

	productID := product.ID
	merchantID := product.MerchantID
	productName := product.Name

	m.timers[productID] = time.AfterFunc(m.delay, func() {
		m.approve(productID, merchantID, productName, loc)
	})
}

// Cancel stops a pending approval, if any. Safe to call for products that
// were never scheduled or already approved.
func (m *ModerationScheduler) Cancel(productID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if timer, ok := m.timers[productID]; ok {
		timer.Stop()
		delete(m.timers, productID)
	}
}

// Stop cancels every pending timer. Used on shutdown.
func (m *ModerationScheduler) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, timer := range m.timers {
		timer.Stop()
		delete(m.timers, id)
	}
}

func (m *ModerationScheduler) approve(productID, merchantID uuid.UUID, productName string, loc i18n.Locale) {
	m.mu.Lock()
	delete(m.timers, productID)
	m.mu.Unlock()

	ctx := context.Background()

	// UpdateStatus is a no-op when the product was deleted in the window
	// between the timer firing and this call running.
	if err := m.productRepo.UpdateStatus(ctx, productID, entity.ModerationApproved); err != nil {
		m.logger.Error("auto-approval failed", slog.Any("productID", productID), slog.Any("error", err))

		return
	}

	notification := &entity.Notification{
		ID:        uuid.New(),
		UserID:    &merchantID,
		Type:      entity.NotificationInfo,
		Title:     i18n.MsgProductApprovedTitle.In(loc),
		Message:   i18n.ProductApprovedMessage(loc, productName),
		CreatedAt: time.Now(),
	}
	if err := m.notificationRepo.Create(ctx, notification); err != nil {
		m.logger.Error("approval notification failed", slog.Any("productID", productID), slog.Any("error", err))

		return
	}

	m.logger.Info("product auto-approved", slog.Any("productID", productID))
}
