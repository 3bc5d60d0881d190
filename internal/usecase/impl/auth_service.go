// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"github.com/go-playground/validator/v10"
)

type authService struct {
	apis      service.AdminAPIFactory
	previews  service.PreviewStore
	inspector service.IdentityInspector
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	apis service.AdminAPIFactory,
	previews service.PreviewStore,
	inspector service.IdentityInspector,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		apis:      apis,
		previews:  previews,
		inspector: inspector,
		validate:  newValidator(),
		logger:    logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) Login(ctx context.Context, tokens service.TokenStore, creds entity.Credentials) error {
	if err := validateInput(srv.validate, creds); err != nil {
		return err
	}

	pair, err := srv.apis.Open(tokens).Login(ctx, creds)
	if err != nil {
		if apiErr, ok := errors.AsType[*domainerrors.APIError](err); ok &&
			(apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusBadRequest) {
			return errors.Join(domainerrors.ErrInvalidCredentials, err)
		}

		return errors.Wrap(err, "login")
	}

	if !pair.Complete() {
		return domainerrors.ErrInvalidCredentials.WithDetails("the server did not return a token pair")
	}

	if err := tokens.SetLoggedIn(ctx, true); err != nil {
		return errors.Wrap(err, "mark session logged in")
	}

	srv.log(ctx).Info("Admin signed in", slog.String("email", creds.Email))

	return nil
}

func (srv *authService) Logout(ctx context.Context, tokens service.TokenStore, owner string) error {
	if err := tokens.Clear(ctx); err != nil {
		return errors.Wrap(err, "clear tokens")
	}

	released, err := srv.previews.ReleaseAll(ctx, owner)
	if err != nil {
		srv.log(ctx).Warn("Failed to release previews on logout", slog.Any("error", err))

		return nil
	}

	srv.log(ctx).Info("Admin signed out", slog.Int("released_previews", released))

	return nil
}

func (srv *authService) LoggedIn(ctx context.Context, tokens service.TokenStore) (bool, error) {
	loggedIn, err := tokens.LoggedIn(ctx)

	return loggedIn, errors.Wrap(err, "read session")
}

func (srv *authService) Identity(ctx context.Context, tokens service.TokenStore) (entity.Identity, error) {
	pair, err := tokens.Tokens(ctx)
	if err != nil {
		return entity.Identity{}, errors.Wrap(err, "load tokens")
	}
	if !pair.Complete() {
		return entity.Identity{}, domainerrors.ErrNotLoggedIn
	}

	identity, err := srv.inspector.Inspect(pair.Access)
	if err != nil {
		return entity.Identity{}, errors.Wrap(err, "inspect access token")
	}

	return identity, nil
}
