package service

import (
	"context"

	"backoffice/internal/domain/entity"
)

// TokenStore is the per-session credential storage the API client reads
// before every call and rewrites after a refresh. Implementations must
// reject half token pairs and clear the logged-in flag with the tokens.
type TokenStore interface {
	// Tokens returns the stored pair, empty when nothing is stored.
	Tokens(ctx context.Context) (entity.TokenPair, error)

	// SetTokens replaces the stored pair.
	SetTokens(ctx context.Context, pair entity.TokenPair) error

	// Clear removes both tokens and the logged-in flag.
	Clear(ctx context.Context) error

	// LoggedIn reports the logged-in flag.
	LoggedIn(ctx context.Context) (bool, error)

	// SetLoggedIn sets the logged-in flag. Setting it without a complete
	// token pair stored is an error.
	SetLoggedIn(ctx context.Context, loggedIn bool) error
}
