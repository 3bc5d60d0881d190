package impl

import (
	"context"
	"log/slog"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"github.com/go-playground/validator/v10"
)

type settingsService struct {
	settings  repository.SettingsRepository
	txManager repository.TransactionManager
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(
	settings repository.SettingsRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.SettingsUsecase {
	return &settingsService{
		settings:  settings,
		txManager: txManager,
		validate:  newValidator(),
		logger:    logger,
	}
}

func (srv *settingsService) Load(ctx context.Context) (*entity.Settings, error) {
	settings, err := srv.settings.LoadSettings(ctx)

	return settings, errors.Wrap(err, "load settings")
}

func (srv *settingsService) SaveGeneral(ctx context.Context, general entity.GeneralSettings) (*entity.Settings, error) {
	return srv.save(ctx, "general", general, func(s *entity.Settings) { s.General = general })
}

func (srv *settingsService) SaveCompany(ctx context.Context, company entity.CompanySettings) (*entity.Settings, error) {
	return srv.save(ctx, "company", company, func(s *entity.Settings) { s.Company = company })
}

func (srv *settingsService) SaveNotifications(ctx context.Context, notifications entity.NotificationSettings) (*entity.Settings, error) {
	return srv.save(ctx, "notifications", notifications, func(s *entity.Settings) { s.Notifications = notifications })
}

// save replaces one tab inside a transaction so concurrent saves of
// different tabs do not overwrite each other.
func (srv *settingsService) save(ctx context.Context, tab string, input any, apply func(*entity.Settings)) (*entity.Settings, error) {
	if err := validateInput(srv.validate, input); err != nil {
		return nil, err
	}

	var saved *entity.Settings
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewSettingsRepository()

		settings, err := repo.LoadSettings(ctx)
		if err != nil {
			return errors.Wrap(err, "load settings")
		}

		apply(settings)
		if err := repo.SaveSettings(ctx, settings); err != nil {
			return errors.Wrap(err, "save settings")
		}
		saved = settings

		return nil
	})
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Settings saved", slog.String("tab", tab))

	return saved, nil
}
