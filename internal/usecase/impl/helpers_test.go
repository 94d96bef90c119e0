package impl

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"mazraa/config"
	"mazraa/internal/domain/entity"
	"mazraa/internal/domain/repository"
	"mazraa/internal/domain/service"
	"mazraa/internal/infra/auth"
	"mazraa/internal/infra/content"
	sqlitestore "mazraa/internal/infra/persistence/sqlite"
	"mazraa/internal/usecase"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// testEnv wires real repositories over an isolated in-memory database,
// seeded exactly like a fresh process start.
type testEnv struct {
	db            *gorm.DB
	hasher        service.PasswordHasher
	tokens        service.TokenService
	users         repository.UserRepository
	products      repository.ProductRepository
	orders        repository.OrderRepository
	notifications repository.NotificationRepository
	diagnoses     repository.DiagnosisRepository
	content       repository.ContentProvider
	logger        *slog.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
	}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	hasher := auth.NewBcryptHasher(cfg)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	// Each test gets its own named in-memory database; the shared-cache DSN
	// would otherwise leak seed data between tests in the same binary.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, sqlitestore.Prepare(db, hasher))

	return &testEnv{
		db:            db,
		hasher:        hasher,
		tokens:        tokens,
		users:         sqlitestore.NewUserRepository(db),
		products:      sqlitestore.NewProductRepository(db),
		orders:        sqlitestore.NewOrderRepository(db),
		notifications: sqlitestore.NewNotificationRepository(db),
		diagnoses:     sqlitestore.NewDiagnosisRepository(db),
		content:       content.New(),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (env *testEnv) accountService() usecase.AccountUsecase {
	return NewAccountService(AccountServiceParams{
		UserRepo:     env.users,
		Hasher:       env.hasher,
		TokenService: env.tokens,
		Logger:       env.logger,
	})
}

func (env *testEnv) moderationScheduler(delay time.Duration) *ModerationScheduler {
	cfg := &config.Config{Moderation: &config.ModerationConfig{ApprovalDelay: delay}}

	return NewModerationScheduler(ModerationSchedulerParams{
		Config:           cfg,
		ProductRepo:      env.products,
		NotificationRepo: env.notifications,
		Logger:           env.logger,
	})
}

func (env *testEnv) catalogService(moderation *ModerationScheduler) usecase.CatalogUsecase {
	return NewCatalogService(CatalogServiceParams{
		ProductRepo: env.products,
		Moderation:  moderation,
		Logger:      env.logger,
	})
}

func (env *testEnv) orderService() usecase.OrderUsecase {
	return NewOrderService(OrderServiceParams{
		OrderRepo:        env.orders,
		ProductRepo:      env.products,
		UserRepo:         env.users,
		NotificationRepo: env.notifications,
		Logger:           env.logger,
	})
}

func (env *testEnv) notificationService() usecase.NotificationUsecase {
	return NewNotificationService(NotificationServiceParams{
		NotificationRepo: env.notifications,
		Logger:           env.logger,
	})
}

func (env *testEnv) navigationService() usecase.NavigationUsecase {
	return NewNavigationService(NavigationServiceParams{
		Content: env.content,
		Logger:  env.logger,
	})
}

// Seeded identities.
func farmerActor() usecase.Actor {
	return usecase.Actor{ID: sqlitestore.SeedFarmerID, Role: entity.RoleFarmer}
}

func merchantActor() usecase.Actor {
	return usecase.Actor{ID: sqlitestore.SeedMerchantID, Role: entity.RoleMerchant}
}

func guestActor() usecase.Actor {
	return usecase.Actor{Role: entity.RoleGuest}
}
