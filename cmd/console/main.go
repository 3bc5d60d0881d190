package main

import (
	"context"
	"log/slog"
	"os"

	"backoffice/config"
	"backoffice/internal/delivery"
	"backoffice/internal/delivery/http"
	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/delivery/http/router/handler"
	"backoffice/internal/delivery/http/view"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/auth"
	logs "backoffice/internal/infra/log"
	"backoffice/internal/infra/metrics"
	"backoffice/internal/infra/persistence/memory"
	"backoffice/internal/infra/persistence/postgres"
	"backoffice/internal/infra/preview"
	"backoffice/internal/infra/pubsub"
	"backoffice/internal/infra/qrcode"
	"backoffice/internal/infra/remote"
	"backoffice/internal/infra/session"
	"backoffice/internal/usecase/impl"

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
			func(*preview.Sweeper) {},
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.NewMeterProvider,
	)
}

// storage is the session and settings persistence selected by storage.provider.
type storage struct {
	fx.Out

	Sessions  repository.SessionRepository
	Settings  repository.SettingsRepository
	TxManager repository.TransactionManager
}

func newStorage(params postgres.Params) (storage, error) {
	if params.Config.Storage.Provider == "postgres" {
		db, err := postgres.New(params)
		if err != nil {
			return storage{}, err
		}
		params.Logger.Info("Using PostgreSQL for sessions and settings")

		return storage{
			Sessions:  postgres.NewSessionRepository(db),
			Settings:  postgres.NewSettingsRepository(db),
			TxManager: postgres.NewTransactionManager(db),
		}, nil
	}

	params.Logger.Info("Using in-memory storage for sessions and settings")
	store := memory.NewStore()

	return storage{
		Sessions:  memory.NewSessionRepository(store),
		Settings:  memory.NewSettingsRepository(store),
		TxManager: memory.NewTransactionManager(store),
	}, nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newStorage,
			session.NewRegistry,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			preview.New,
			preview.AsPreviewStore,
			preview.NewSweeper,
			remote.NewFactory,
			remote.AsAdminAPIFactory,
			auth.NewJWTInspector,
			qrcode.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewDashboardService,
			impl.NewProductService,
			impl.NewPreviewService,
			impl.NewOrderService,
			impl.NewCustomerService,
			impl.NewDeliveryService,
			impl.NewSettingsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewMetricsMiddleware,
			fx.Annotate(
				middleware.NewCSRFMiddleware,
				fx.ResultTags(`name:"csrf"`),
			),
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			view.NewRenderer,
			handler.NewAuthHandler,
			handler.NewDashboardHandler,
			handler.NewProductHandler,
			handler.NewPreviewHandler,
			handler.NewOrderHandler,
			handler.NewCustomerHandler,
			handler.NewDeliveryHandler,
			handler.NewSettingsHandler,
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
