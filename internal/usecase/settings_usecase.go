package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
)

// SettingsUsecase loads and saves the three settings tabs.
type SettingsUsecase interface {
	Load(ctx context.Context) (*entity.Settings, error)
	SaveGeneral(ctx context.Context, general entity.GeneralSettings) (*entity.Settings, error)
	SaveCompany(ctx context.Context, company entity.CompanySettings) (*entity.Settings, error)
	SaveNotifications(ctx context.Context, notifications entity.NotificationSettings) (*entity.Settings, error)
}
