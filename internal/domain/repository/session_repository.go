// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/errors"
)

// ErrSessionNotFound is returned when no record exists for a session id.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores the console-side session records.
type SessionRepository interface {
	// FindSession retrieves a session by id.
	FindSession(ctx context.Context, id string) (*entity.Session, error)

	// SaveSession creates or replaces the record.
	SaveSession(ctx context.Context, session *entity.Session) error

	// DeleteSession removes the record. Deleting a missing record is not an error.
	DeleteSession(ctx context.Context, id string) error
}
