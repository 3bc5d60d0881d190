package handler

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"backoffice/internal/infra/persistence/memory"
	"backoffice/internal/usecase"
	"backoffice/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsHandler() (*SettingsHandler, usecase.SettingsUsecase) {
	store := memory.NewStore()
	settingsUC := impl.NewSettingsService(
		memory.NewSettingsRepository(store),
		memory.NewTransactionManager(store),
		discardLogger(),
	)

	return NewSettingsHandler(SettingsHandlerParams{SettingsUC: settingsUC}), settingsUC
}

func TestSettingsHandler_ShowFallsBackToGeneralTab(t *testing.T) {
	f := newFixture(t)
	h, _ := newSettingsHandler()

	c, rec := f.get(t, "/settings?tab=billing")
	require.NoError(t, h.Show(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, TabGeneral, f.renderer.page.Data.(SettingsView).Tab)
}

func TestSettingsHandler_UncheckedBoxesSaveAsFalse(t *testing.T) {
	f := newFixture(t)
	h, settingsUC := newSettingsHandler()

	c, rec := f.postForm(t, "/settings/notifications", url.Values{"new_orders": {"true"}})
	require.NoError(t, h.SaveNotifications(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/settings?tab=notifications", rec.Header().Get("Location"))

	saved, err := settingsUC.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, saved.Notifications.NewOrders)
	assert.False(t, saved.Notifications.LowStock)
	assert.False(t, saved.Notifications.CustomerReviews)
}

func TestSettingsHandler_InvalidGeneralKeepsInput(t *testing.T) {
	f := newFixture(t)
	h, settingsUC := newSettingsHandler()

	c, rec := f.postForm(t, "/settings/general", url.Values{
		"store_name": {""},
		"store_url":  {"not a url"},
		"currency":   {"USD"},
	})
	require.NoError(t, h.SaveGeneral(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, f.renderer.page.FormError, "store_name: is required")

	view := f.renderer.page.Data.(SettingsView)
	assert.Equal(t, TabGeneral, view.Tab)
	assert.Equal(t, "not a url", view.Settings.General.StoreURL)

	stored, err := settingsUC.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "E-Shop Store", stored.General.StoreName)
}
