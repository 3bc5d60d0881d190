package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRepository implements the repository.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// LoadSettings reads the singleton row, falling back to the defaults.
func (repo *settingsRepository) LoadSettings(ctx context.Context) (*entity.Settings, error) {
	var settingsM model.SettingsModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", model.SettingsSingletonID).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			defaults := entity.DefaultSettings()

			return &defaults, nil
		}

		return nil, errors.Wrap(err, "failed to load settings")
	}

	return toSettingsDomain(&settingsM), nil
}

// SaveSettings upserts the singleton row.
func (repo *settingsRepository) SaveSettings(ctx context.Context, settings *entity.Settings) error {
	settingsM := fromSettingsDomain(settings)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"general", "company", "notifications", "updated_at"}),
		}).
		Create(settingsM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return errors.Wrap(err, "settings rejected by database constraint")
		}

		return errors.Wrap(err, "failed to save settings")
	}

	settings.UpdatedAt = settingsM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toSettingsDomain(data *model.SettingsModel) *entity.Settings {
	return &entity.Settings{
		General:       data.General,
		Company:       data.Company,
		Notifications: data.Notifications,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromSettingsDomain(data *entity.Settings) *model.SettingsModel {
	return &model.SettingsModel{
		ID:            model.SettingsSingletonID,
		General:       data.General,
		Company:       data.Company,
		Notifications: data.Notifications,
	}
}
