package postgres

import (
	"context"

	"backoffice/internal/domain/repository"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// txRepositories binds the console repositories to one transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (f txRepositories) NewSessionRepository() repository.SessionRepository {
	return NewSessionRepository(f.tx)
}

func (f txRepositories) NewSettingsRepository() repository.SettingsRepository {
	return NewSettingsRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute commits when fn returns nil and rolls back on an error or panic.
// The error from fn is returned unwrapped so callers can match it.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepositories{tx: tx})
	})
}
