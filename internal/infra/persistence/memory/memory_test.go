package memory

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(NewStore())

	_, err := repo.FindSession(ctx, "missing")
	require.ErrorIs(t, err, repository.ErrSessionNotFound)

	session := &entity.Session{
		ID:       "s-1",
		Tokens:   entity.TokenPair{Access: "a", Refresh: "r"},
		LoggedIn: true,
	}
	require.NoError(t, repo.SaveSession(ctx, session))
	assert.False(t, session.UpdatedAt.IsZero())

	found, err := repo.FindSession(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, session.Tokens, found.Tokens)
	assert.True(t, found.LoggedIn)

	// The returned record is a copy.
	found.LoggedIn = false
	again, err := repo.FindSession(ctx, "s-1")
	require.NoError(t, err)
	assert.True(t, again.LoggedIn)

	require.NoError(t, repo.DeleteSession(ctx, "s-1"))
	require.NoError(t, repo.DeleteSession(ctx, "s-1"))
	_, err = repo.FindSession(ctx, "s-1")
	require.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_RejectsHalfPair(t *testing.T) {
	repo := NewSessionRepository(NewStore())

	err := repo.SaveSession(context.Background(), &entity.Session{
		ID:     "s-1",
		Tokens: entity.TokenPair{Access: "only-access"},
	})
	require.ErrorIs(t, err, entity.ErrIncompleteTokenPair)
}

func TestSettingsRepository_DefaultsThenSaved(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepository(NewStore())

	settings, err := repo.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSettings(), *settings)

	settings.General.StoreName = "Corner Shop"
	require.NoError(t, repo.SaveSettings(ctx, settings))

	loaded, err := repo.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Corner Shop", loaded.General.StoreName)
	assert.False(t, loaded.UpdatedAt.IsZero())
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	tm := NewTransactionManager(store)
	settingsRepo := NewSettingsRepository(store)

	boom := errors.New("boom")
	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		settings, err := factory.NewSettingsRepository().LoadSettings(ctx)
		if err != nil {
			return err
		}
		settings.General.StoreName = "Never Saved"
		if err := factory.NewSettingsRepository().SaveSettings(ctx, settings); err != nil {
			return err
		}

		return factory.NewSessionRepository().SaveSession(ctx, &entity.Session{ID: "tx"})
	})
	require.NoError(t, err)

	err = tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		settings, _ := factory.NewSettingsRepository().LoadSettings(ctx)
		settings.General.StoreName = "Rolled Back"
		_ = factory.NewSettingsRepository().SaveSettings(ctx, settings)
		_ = factory.NewSessionRepository().DeleteSession(ctx, "tx")

		return boom
	})
	require.ErrorIs(t, err, boom)

	loaded, err := settingsRepo.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Never Saved", loaded.General.StoreName)

	_, err = NewSessionRepository(store).FindSession(ctx, "tx")
	require.NoError(t, err)
}
