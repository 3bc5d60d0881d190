package handler

import (
	"net/http"
	"net/url"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const deliveryPath = "/delivery-status"

// DeliveryHandlerParams holds dependencies for DeliveryHandler, injected by Fx.
type DeliveryHandlerParams struct {
	fx.In

	DeliveryUC usecase.DeliveryUsecase
}

// DeliveryHandler serves the delivery status screen.
type DeliveryHandler struct {
	deliveryUC usecase.DeliveryUsecase
}

// NewDeliveryHandler is the constructor for DeliveryHandler
func NewDeliveryHandler(params DeliveryHandlerParams) *DeliveryHandler {
	return &DeliveryHandler{deliveryUC: params.DeliveryUC}
}

// DeliveryView is the model of the delivery status screen.
type DeliveryView struct {
	Board    *usecase.DeliveryBoard
	Statuses []entity.DeliveryStatus
}

// Board renders the delivery board.
func (h *DeliveryHandler) Board(c echo.Context) error {
	search := c.QueryParam("q")

	board, err := h.deliveryUC.Board(c.Request().Context(), deliverycontext.GetTokens(c), search)
	if err != nil {
		if failErr := response.Fail(c, err); failErr != nil {
			return failErr
		}
		board = &usecase.DeliveryBoard{Search: search, Counts: map[entity.DeliveryStatus]int{}}
	}

	return response.Render(c, http.StatusOK, "delivery", response.Page{
		Title:  "Delivery Status",
		Active: "delivery",
		Data: DeliveryView{
			Board: board,
			Statuses: []entity.DeliveryStatus{
				entity.DeliveryPendingStatus,
				entity.DeliveryInTransit,
				entity.DeliveryDelivered,
				entity.DeliveryFailed,
			},
		},
	})
}

// Toggle flips an order between delivered and in transit.
func (h *DeliveryHandler) Toggle(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	back := boardURL(c.FormValue("q"))

	delivery, err := h.deliveryUC.Toggle(c.Request().Context(), deliverycontext.GetTokens(c), id)
	if err != nil {
		if response.SessionLost(err) {
			return err
		}

		return response.RedirectWithFlash(c, back, deliverycontext.FlashError, response.UserMessage(err))
	}

	return response.RedirectWithFlash(c, back, deliverycontext.FlashSuccess,
		delivery.OrderRef+" is now "+string(delivery.Status))
}

// Notify sends a delivery update to the order's customer.
func (h *DeliveryHandler) Notify(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	back := boardURL(c.FormValue("q"))

	if err := h.deliveryUC.Notify(c.Request().Context(), deliverycontext.GetTokens(c), id); err != nil {
		if response.SessionLost(err) {
			return err
		}

		return response.RedirectWithFlash(c, back, deliverycontext.FlashError, response.UserMessage(err))
	}

	return response.RedirectWithFlash(c, back, deliverycontext.FlashSuccess,
		"Customer notified about "+entity.Order{ID: id}.Reference())
}

// Label answers the tracking label PNG.
func (h *DeliveryHandler) Label(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	png, err := h.deliveryUC.Label(c.Request().Context(), deliverycontext.GetTokens(c), id)
	if err != nil {
		return err
	}

	c.Response().Header().Set("Cache-Control", "private, max-age=300")

	return c.Blob(http.StatusOK, "image/png", png)
}

func boardURL(search string) string {
	if search == "" {
		return deliveryPath
	}

	return deliveryPath + "?" + url.Values{"q": {search}}.Encode()
}
