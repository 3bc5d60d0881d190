package handler

import (
	"net/http"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const settingsPath = "/settings"

// Settings tabs.
const (
	TabGeneral       = "general"
	TabCompany       = "company"
	TabNotifications = "notifications"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
}

// SettingsHandler serves the settings screen.
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{settingsUC: params.SettingsUC}
}

// SettingsView is the model of the settings screen.
type SettingsView struct {
	Tab        string
	Settings   *entity.Settings
	Currencies []entity.Currency
}

// Show renders the settings screen on the requested tab.
func (h *SettingsHandler) Show(c echo.Context) error {
	settings, err := h.settingsUC.Load(c.Request().Context())
	if err != nil {
		return err
	}

	return h.render(c, http.StatusOK, normalizeTab(c.QueryParam("tab")), settings, "")
}

// SaveGeneral saves the general tab.
func (h *SettingsHandler) SaveGeneral(c echo.Context) error {
	var general entity.GeneralSettings
	if err := c.Bind(&general); err != nil {
		return bindError(err)
	}

	return h.saved(c, TabGeneral, func() (*entity.Settings, error) {
		return h.settingsUC.SaveGeneral(c.Request().Context(), general)
	}, func(s *entity.Settings) { s.General = general })
}

// SaveCompany saves the company tab.
func (h *SettingsHandler) SaveCompany(c echo.Context) error {
	var company entity.CompanySettings
	if err := c.Bind(&company); err != nil {
		return bindError(err)
	}

	return h.saved(c, TabCompany, func() (*entity.Settings, error) {
		return h.settingsUC.SaveCompany(c.Request().Context(), company)
	}, func(s *entity.Settings) { s.Company = company })
}

// SaveNotifications saves the notifications tab. Unchecked boxes are absent
// from the form and bind as false.
func (h *SettingsHandler) SaveNotifications(c echo.Context) error {
	var notifications entity.NotificationSettings
	if err := c.Bind(&notifications); err != nil {
		return bindError(err)
	}

	return h.saved(c, TabNotifications, func() (*entity.Settings, error) {
		return h.settingsUC.SaveNotifications(c.Request().Context(), notifications)
	}, func(s *entity.Settings) { s.Notifications = notifications })
}

// saved runs save and either redirects back to the tab or redisplays the
// rejected input over the stored settings.
func (h *SettingsHandler) saved(c echo.Context, tab string, save func() (*entity.Settings, error), overlay func(*entity.Settings)) error {
	if _, err := save(); err != nil {
		stored, loadErr := h.settingsUC.Load(c.Request().Context())
		if loadErr != nil {
			return loadErr
		}
		overlay(stored)

		return h.render(c, formStatus(err), tab, stored, response.UserMessage(err))
	}

	return response.RedirectWithFlash(c, settingsPath+"?tab="+tab, deliverycontext.FlashSuccess, "Settings saved")
}

func (h *SettingsHandler) render(c echo.Context, status int, tab string, settings *entity.Settings, formError string) error {
	return response.Render(c, status, "settings", response.Page{
		Title:     "Settings",
		Active:    "settings",
		FormError: formError,
		Data: SettingsView{
			Tab:        tab,
			Settings:   settings,
			Currencies: entity.Currencies,
		},
	})
}

func normalizeTab(tab string) string {
	switch tab {
	case TabCompany, TabNotifications:
		return tab
	default:
		return TabGeneral
	}
}
