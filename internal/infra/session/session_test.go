package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
	"backoffice/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pair = entity.TokenPair{Access: "access-1", Refresh: "refresh-1"}

func newRegistry() *Registry {
	store := memory.NewStore()

	return NewRegistry(memory.NewSessionRepository(store), memory.NewTransactionManager(store))
}

// storeContract exercises the behaviour every TokenStore shares.
func storeContract(t *testing.T, store service.TokenStore) {
	t.Helper()
	ctx := context.Background()

	got, err := store.Tokens(ctx)
	require.NoError(t, err)
	assert.True(t, got.Empty())

	loggedIn, err := store.LoggedIn(ctx)
	require.NoError(t, err)
	assert.False(t, loggedIn)

	err = store.SetLoggedIn(ctx, true)
	require.ErrorIs(t, err, domainerrors.ErrNotLoggedIn)

	err = store.SetTokens(ctx, entity.TokenPair{Access: "half"})
	require.ErrorIs(t, err, entity.ErrIncompleteTokenPair)

	require.NoError(t, store.SetTokens(ctx, pair))
	require.NoError(t, store.SetLoggedIn(ctx, true))

	got, err = store.Tokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, pair, got)

	loggedIn, err = store.LoggedIn(ctx)
	require.NoError(t, err)
	assert.True(t, loggedIn)

	rotated := entity.TokenPair{Access: "access-2", Refresh: "refresh-2"}
	require.NoError(t, store.SetTokens(ctx, rotated))
	loggedIn, err = store.LoggedIn(ctx)
	require.NoError(t, err)
	assert.True(t, loggedIn, "a refresh keeps the session signed in")

	require.NoError(t, store.Clear(ctx))
	got, err = store.Tokens(ctx)
	require.NoError(t, err)
	assert.True(t, got.Empty())
	loggedIn, err = store.LoggedIn(ctx)
	require.NoError(t, err)
	assert.False(t, loggedIn)

	require.NoError(t, store.Clear(ctx), "clearing twice is fine")
}

func TestRepositoryStore_Contract(t *testing.T) {
	storeContract(t, newRegistry().For("s-1"))
}

func TestFileStore_Contract(t *testing.T) {
	storeContract(t, NewFileStore(filepath.Join(t.TempDir(), "nested", "session.json")))
}

func TestRepositoryStore_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	registry := newRegistry()

	first := registry.For(registry.NewID())
	second := registry.For(registry.NewID())

	require.NoError(t, first.SetTokens(ctx, pair))

	got, err := second.Tokens(ctx)
	require.NoError(t, err)
	assert.True(t, got.Empty())

	require.NoError(t, second.Clear(ctx))
	got, err = first.Tokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, pair, got)
}

func TestRepositoryStore_Discard(t *testing.T) {
	ctx := context.Background()
	registry := newRegistry()
	store := registry.For("s-1")
	require.NoError(t, store.SetTokens(ctx, pair))

	require.NoError(t, registry.Discard(ctx, "s-1"))

	got, err := store.Tokens(ctx)
	require.NoError(t, err)
	assert.True(t, got.Empty())
}

func TestFileStore_FilePermissionsAndFormat(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)

	require.NoError(t, store.SetTokens(ctx, pair))
	require.NoError(t, store.SetLoggedIn(ctx, true))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"access":"access-1","refresh":"refresh-1","logged_in":true}`, string(data))

	// A second store on the same file sees the session.
	loggedIn, err := NewFileStore(path).LoggedIn(ctx)
	require.NoError(t, err)
	assert.True(t, loggedIn)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path).Tokens(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse session file")
}
