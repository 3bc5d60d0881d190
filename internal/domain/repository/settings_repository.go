package repository

import (
	"context"

	"backoffice/internal/domain/entity"
)

// SettingsRepository persists the store settings. There is a single
// settings document per deployment.
type SettingsRepository interface {
	// LoadSettings returns the saved settings, or entity.DefaultSettings when nothing was saved.
	LoadSettings(ctx context.Context) (*entity.Settings, error)

	// SaveSettings replaces the saved settings.
	SaveSettings(ctx context.Context, settings *entity.Settings) error
}
