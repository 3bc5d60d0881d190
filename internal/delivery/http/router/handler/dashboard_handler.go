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

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
}

// DashboardHandler serves the dashboard screen.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{dashboardUC: params.DashboardUC}
}

// Show renders the dashboard. A failed load shows zeros and a notification.
func (h *DashboardHandler) Show(c echo.Context) error {
	summary, err := h.dashboardUC.Summary(c.Request().Context(), deliverycontext.GetTokens(c))
	if err != nil {
		if failErr := response.Fail(c, err); failErr != nil {
			return failErr
		}
		summary = &entity.DashboardSummary{}
	}

	return response.Render(c, http.StatusOK, "dashboard", response.Page{
		Title:  "Dashboard",
		Active: "dashboard",
		Data:   summary,
	})
}
