package main

import (
	"context"
	"log/slog"
	"os"

	"mazraa/config"
	"mazraa/internal/delivery"
	"mazraa/internal/delivery/http"
	"mazraa/internal/delivery/http/middleware"
	"mazraa/internal/delivery/http/router/handler"
	"mazraa/internal/infra/ai"
	"mazraa/internal/infra/auth"
	"mazraa/internal/infra/content"
	logs "mazraa/internal/infra/log"
	"mazraa/internal/infra/persistence/sqlite"
	"mazraa/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sqlite.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewUserRepository,
			sqlite.NewProductRepository,
			sqlite.NewOrderRepository,
			sqlite.NewNotificationRepository,
			sqlite.NewDiagnosisRepository,
			content.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			ai.New,
			ai.NewDiagnoser,
			ai.NewAdvisor,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewModerationScheduler,
			impl.NewAccountService,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewNotificationService,
			impl.NewDiagnosisService,
			impl.NewAdvisorService,
			impl.NewNavigationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
			handler.NewNotificationHandler,
			handler.NewDiagnosisHandler,
			handler.NewChatHandler,
			handler.NewContentHandler,
			handler.NewNavigationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
