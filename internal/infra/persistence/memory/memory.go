// Package memory keeps session records and settings in process memory.
// It backs single-instance deployments and the tests.
package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
)

// Store holds every record behind one mutex.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
	settings *entity.Settings
	now      func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]entity.Session),
		now:      time.Now,
	}
}

// NewSessionRepository exposes the store as a repository.SessionRepository.
func NewSessionRepository(store *Store) repository.SessionRepository {
	return &sessionRepository{store: store}
}

// NewSettingsRepository exposes the store as a repository.SettingsRepository.
func NewSettingsRepository(store *Store) repository.SettingsRepository {
	return &settingsRepository{store: store}
}

// NewTransactionManager serialises Execute calls on the store's write lock.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

type sessionRepository struct {
	store *Store
	// locked is set inside Execute, where the write lock is already held.
	locked bool
}

func (r *sessionRepository) FindSession(_ context.Context, id string) (*entity.Session, error) {
	if !r.locked {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}

	session, ok := r.store.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	return &session, nil
}

func (r *sessionRepository) SaveSession(_ context.Context, session *entity.Session) error {
	if err := session.Tokens.Validate(); err != nil {
		return err
	}

	if !r.locked {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}

	record := *session
	record.UpdatedAt = r.store.now()
	r.store.sessions[session.ID] = record
	session.UpdatedAt = record.UpdatedAt

	return nil
}

func (r *sessionRepository) DeleteSession(_ context.Context, id string) error {
	if !r.locked {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}

	delete(r.store.sessions, id)

	return nil
}

type settingsRepository struct {
	store  *Store
	locked bool
}

func (r *settingsRepository) LoadSettings(_ context.Context) (*entity.Settings, error) {
	if !r.locked {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}

	if r.store.settings == nil {
		defaults := entity.DefaultSettings()

		return &defaults, nil
	}

	settings := *r.store.settings

	return &settings, nil
}

func (r *settingsRepository) SaveSettings(_ context.Context, settings *entity.Settings) error {
	if !r.locked {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}

	saved := *settings
	saved.UpdatedAt = r.store.now()
	r.store.settings = &saved
	settings.UpdatedAt = saved.UpdatedAt

	return nil
}

type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	store *Store
}

func (f *repositoryFactory) NewSessionRepository() repository.SessionRepository {
	return &sessionRepository{store: f.store, locked: true}
}

func (f *repositoryFactory) NewSettingsRepository() repository.SettingsRepository {
	return &settingsRepository{store: f.store, locked: true}
}

// Execute runs fn while holding the write lock. When fn fails the store is
// restored to the snapshot taken before it ran.
func (tm *transactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	sessions := maps.Clone(tm.store.sessions)
	settings := tm.store.settings

	if err := fn(&repositoryFactory{store: tm.store}); err != nil {
		tm.store.sessions = sessions
		tm.store.settings = settings

		return err
	}

	return nil
}
