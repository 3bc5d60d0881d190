package repository

import "context"

// TransactionManager defines the interface for managing storage transactions.
// This allows the use case layer to run read-modify-write sequences without depending on GORM.
type TransactionManager interface {
	// Execute runs a function within a transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	// NewSessionRepository returns a SessionRepository bound to the current transaction.
	NewSessionRepository() SessionRepository

	// NewSettingsRepository returns a SettingsRepository bound to the current transaction.
	NewSettingsRepository() SettingsRepository
}
