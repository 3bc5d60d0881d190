package main

import (
	"context"
	"os"

	"backoffice/config"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/errors"
	logs "backoffice/internal/infra/log"
	"backoffice/internal/infra/preview"
	"backoffice/internal/infra/remote"
	"backoffice/internal/infra/session"
	"backoffice/internal/usecase"
	"backoffice/internal/usecase/impl"

	"go.opentelemetry.io/otel/metric/noop"
	"gocloud.dev/blob/memblob"
)

// cliOwner owns the previews of the terminal session; the CLI never stages files.
const cliOwner = "adminctl"

// app is the usecase set bound to the file session.
type app struct {
	tokens    *session.FileStore
	auth      usecase.AuthUsecase
	products  usecase.ProductUsecase
	orders    usecase.OrderUsecase
	customers usecase.CustomerUsecase
}

func newApp(flags globalFlags) (*app, error) {
	cfg, err := config.NewCLI(*flags.api)
	if err != nil {
		return nil, err
	}

	logger, err := logs.NewTo(os.Stderr, cfg.Env.Log)
	if err != nil {
		return nil, err
	}

	path := *flags.session
	if path == "" {
		if path, err = session.DefaultFilePath(); err != nil {
			return nil, err
		}
	}

	previews := preview.NewStore(memblob.OpenBucket(nil), cfg.Previews, logger)
	factory, err := remote.NewFactory(remote.FactoryParams{
		Config:        cfg,
		Logger:        logger,
		Previews:      previews,
		MeterProvider: noop.NewMeterProvider(),
	})
	if err != nil {
		return nil, err
	}

	return &app{
		tokens:    session.NewFileStore(path),
		auth:      impl.NewAuthService(factory, previews, nil, logger),
		products:  impl.NewProductService(factory, previews, cfg, logger),
		orders:    impl.NewOrderService(factory, cfg, logger),
		customers: impl.NewCustomerService(factory, cfg, logger),
	}, nil
}

// requireLogin fails early with a hint when no session is stored.
func (a *app) requireLogin(ctx context.Context) error {
	loggedIn, err := a.auth.LoggedIn(ctx, a.tokens)
	if err != nil {
		return err
	}
	if !loggedIn {
		return errors.Wrap(domainerrors.ErrNotLoggedIn, "run 'adminctl login' first")
	}

	return nil
}

// explain turns a lost session into a hint and leaves other errors alone.
func explain(err error) error {
	if errors.Is(err, domainerrors.ErrSessionExpired) {
		return errors.New("session expired, run 'adminctl login' again")
	}

	return err
}
