package main

import (
	"context"
	"log/slog"
	"os"

	"proptrust/config"
	"proptrust/internal/delivery"
	"proptrust/internal/delivery/api"
	apimiddleware "proptrust/internal/delivery/api/middleware"
	"proptrust/internal/delivery/api/router/handler"
	"proptrust/internal/delivery/health"
	"proptrust/internal/delivery/relay"
	"proptrust/internal/infra/auth"
	"proptrust/internal/infra/authz"
	"proptrust/internal/infra/cache"
	logs "proptrust/internal/infra/log"
	"proptrust/internal/infra/metrics"
	"proptrust/internal/infra/persistence/postgres"
	"proptrust/internal/infra/pubsub"
	"proptrust/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
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
		postgres.New,
		cache.NewRedisClient,
		metrics.NewRegistry,
		metrics.NewPipelineMetrics,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewListingRepository,
			postgres.NewAuditRepository,
			postgres.NewOutboxRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			authz.NewAuthorizer,
			cache.NewNotificationThrottle,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDuplicateMatcher,
			impl.NewAuditLog,
			impl.NewNotificationDispatcher,
			impl.NewListingService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewListingHandler,
			handler.NewDeviceHandler,
			health.NewHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				relay.NewRelay,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
