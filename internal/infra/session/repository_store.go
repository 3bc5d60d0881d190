// Package session provides the token stores the API client runs against:
// one bound to a browser session record, one backed by a file for the CLI.
package session

import (
	"context"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"

	"github.com/google/uuid"
)

var _ service.TokenStore = (*RepositoryStore)(nil)

// Registry hands out token stores for browser sessions.
type Registry struct {
	sessions  repository.SessionRepository
	txManager repository.TransactionManager
}

// NewRegistry is the constructor for Registry.
func NewRegistry(sessions repository.SessionRepository, txManager repository.TransactionManager) *Registry {
	return &Registry{
		sessions:  sessions,
		txManager: txManager,
	}
}

// NewID returns a fresh, unguessable session id.
func (r *Registry) NewID() string {
	return uuid.NewString()
}

// For returns the token store of one session. The record is created lazily
// on the first write.
func (r *Registry) For(id string) service.TokenStore {
	return &RepositoryStore{
		id:        id,
		sessions:  r.sessions,
		txManager: r.txManager,
	}
}

// Discard removes a session record, used when the cookie is replaced.
func (r *Registry) Discard(ctx context.Context, id string) error {
	return r.sessions.DeleteSession(ctx, id)
}

// RepositoryStore implements service.TokenStore on a session record.
type RepositoryStore struct {
	id        string
	sessions  repository.SessionRepository
	txManager repository.TransactionManager
}

// ID returns the session id the store is bound to.
func (s *RepositoryStore) ID() string {
	return s.id
}

func (s *RepositoryStore) Tokens(ctx context.Context) (entity.TokenPair, error) {
	record, err := s.sessions.FindSession(ctx, s.id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return entity.TokenPair{}, nil
		}

		return entity.TokenPair{}, err
	}

	return record.Tokens, nil
}

func (s *RepositoryStore) SetTokens(ctx context.Context, pair entity.TokenPair) error {
	if err := pair.Validate(); err != nil {
		return err
	}

	return s.update(ctx, func(record *entity.Session) error {
		record.Tokens = pair
		if pair.Empty() {
			record.LoggedIn = false
		}

		return nil
	})
}

func (s *RepositoryStore) Clear(ctx context.Context) error {
	return errors.Wrap(s.sessions.DeleteSession(ctx, s.id), "clear session")
}

func (s *RepositoryStore) LoggedIn(ctx context.Context) (bool, error) {
	record, err := s.sessions.FindSession(ctx, s.id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return false, nil
		}

		return false, err
	}

	return record.LoggedIn && record.Tokens.Complete(), nil
}

func (s *RepositoryStore) SetLoggedIn(ctx context.Context, loggedIn bool) error {
	return s.update(ctx, func(record *entity.Session) error {
		if loggedIn && !record.Tokens.Complete() {
			return domainerrors.ErrNotLoggedIn.WithDetails("no token pair stored")
		}
		record.LoggedIn = loggedIn

		return nil
	})
}

// update runs a read-modify-write of the record in one transaction.
func (s *RepositoryStore) update(ctx context.Context, mutate func(record *entity.Session) error) error {
	return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewSessionRepository()

		record, err := repo.FindSession(ctx, s.id)
		if errors.Is(err, repository.ErrSessionNotFound) {
			record, err = &entity.Session{ID: s.id}, nil
		}
		if err != nil {
			return err
		}

		if err := mutate(record); err != nil {
			return err
		}

		return repo.SaveSession(ctx, record)
	})
}
