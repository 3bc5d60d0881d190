package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/infra/persistence/memory"
	"backoffice/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSettingsService() usecase.SettingsUsecase {
	store := memory.NewStore()

	return NewSettingsService(memory.NewSettingsRepository(store), memory.NewTransactionManager(store), discardLogger())
}

func TestSettingsService_LoadDefaults(t *testing.T) {
	settings, err := createTestSettingsService().Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "E-Shop Store", settings.General.StoreName)
	assert.Equal(t, entity.CurrencyUSD, settings.General.Currency)
}

func TestSettingsService_SaveTabsIndependently(t *testing.T) {
	srv := createTestSettingsService()
	ctx := context.Background()

	general := entity.DefaultSettings().General
	general.StoreName = "Corner Shop"
	general.Currency = entity.CurrencyEUR
	_, err := srv.SaveGeneral(ctx, general)
	require.NoError(t, err)

	saved, err := srv.SaveNotifications(ctx, entity.NotificationSettings{MarketingUpdate: true})
	require.NoError(t, err)
	assert.Equal(t, "Corner Shop", saved.General.StoreName)
	assert.True(t, saved.Notifications.MarketingUpdate)
	assert.False(t, saved.Notifications.NewOrders)

	loaded, err := srv.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.CurrencyEUR, loaded.General.Currency)
	assert.Equal(t, "E-Shop Inc.", loaded.Company.Name)
}

func TestSettingsService_Validation(t *testing.T) {
	srv := createTestSettingsService()
	ctx := context.Background()

	_, err := srv.SaveCompany(ctx, entity.CompanySettings{Name: "Acme", ContactEmail: "nope"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "contact_email:")

	_, err = srv.SaveGeneral(ctx, entity.GeneralSettings{StoreName: "Shop", Currency: "BTC"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "currency: must be one of USD EUR GBP JPY")

	loaded, err := srv.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "E-Shop Inc.", loaded.Company.Name)
}
