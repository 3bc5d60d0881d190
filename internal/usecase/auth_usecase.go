// Package usecase contains the application-specific business rules of the
// console screens. Every call that reaches the API takes the session's
// service.TokenStore explicitly.
package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
)

// AuthUsecase signs admins in and out of a session.
type AuthUsecase interface {
	// Login validates the credentials, exchanges them for a token pair and
	// marks the session logged in.
	Login(ctx context.Context, tokens service.TokenStore, creds entity.Credentials) error

	// Logout clears the tokens and releases the session's staged previews.
	Logout(ctx context.Context, tokens service.TokenStore, owner string) error

	// LoggedIn reports whether the session holds a complete token pair and the flag.
	LoggedIn(ctx context.Context, tokens service.TokenStore) (bool, error)

	// Identity decodes the signed-in admin from the access token.
	Identity(ctx context.Context, tokens service.TokenStore) (entity.Identity, error)
}
