// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// FindSession retrieves a session record by its id.
func (repo *sessionRepository) FindSession(ctx context.Context, id string) (*entity.Session, error) {
	var sessionM model.SessionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return toSessionDomain(&sessionM), nil
}

// SaveSession upserts the record. Tokens and the login flag are written together.
func (repo *sessionRepository) SaveSession(ctx context.Context, session *entity.Session) error {
	if err := session.Tokens.Validate(); err != nil {
		return err
	}

	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"access_token", "refresh_token", "logged_in", "updated_at"}),
		}).
		Create(sessionM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required session information")
		}

		return errors.Wrap(err, "failed to save session")
	}

	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// DeleteSession removes a session record. A missing record is not an error.
func (repo *sessionRepository) DeleteSession(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SessionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// --- Mapper Functions ---

// toSessionDomain converts a GORM SessionModel to a domain Session entity.
func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID: data.ID,
		Tokens: entity.TokenPair{
			Access:  data.AccessToken,
			Refresh: data.RefreshToken,
		},
		LoggedIn:  data.LoggedIn,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSessionDomain converts a domain Session entity to a GORM SessionModel.
func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:           data.ID,
		AccessToken:  data.Tokens.Access,
		RefreshToken: data.Tokens.Refresh,
		LoggedIn:     data.LoggedIn,
		UpdatedAt:    data.UpdatedAt,
	}
}
