package handler

import (
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"
	"backoffice/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const ordersPath = "/orders"

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// OrderHandler serves the orders screen.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

// OrdersView is the model of the orders screen.
type OrdersView struct {
	List     *usecase.OrderList
	Statuses []entity.OrderStatus
	Pager    response.Pager
	// Action is the query string the status forms post back with.
	Action template.URL
}

// List renders the orders screen.
func (h *OrderHandler) List(c echo.Context) error {
	var query entity.OrderQuery
	if err := c.Bind(&query); err != nil {
		return bindError(err)
	}

	list, err := h.orderUC.List(c.Request().Context(), deliverycontext.GetTokens(c), query)
	if err != nil {
		if failErr := response.Fail(c, err); failErr != nil {
			return failErr
		}
		list = &usecase.OrderList{Query: query, Page: util.Paginate([]entity.Order{}, 0, 1)}
	}

	return h.render(c, list)
}

// UpdateStatus changes one order and redisplays the list with that order reconciled.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var query entity.OrderQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return bindError(err)
	}

	status := entity.OrderStatus(c.FormValue("new_status"))
	list, err := h.orderUC.UpdateStatus(c.Request().Context(), deliverycontext.GetTokens(c), query, id, status)
	if err != nil {
		if response.SessionLost(err) {
			return err
		}

		return response.RedirectWithFlash(c, ordersURL(query), deliverycontext.FlashError, response.UserMessage(err))
	}

	deliverycontext.Notify(c, deliverycontext.FlashSuccess,
		"Order "+entity.Order{ID: id}.Reference()+" marked "+string(status))

	return h.render(c, list)
}

// CustomerView is the model of the customer details dialog.
type CustomerView struct {
	Customer *entity.Customer
	Back     string
}

// Customer renders the customer details of an order.
func (h *OrderHandler) Customer(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	customer, err := h.orderUC.Customer(c.Request().Context(), deliverycontext.GetTokens(c), id)
	if err != nil {
		return err
	}

	return response.Render(c, http.StatusOK, "customer", response.Page{
		Title:  customer.Name,
		Active: "orders",
		Data:   CustomerView{Customer: customer, Back: ordersPath},
	})
}

func (h *OrderHandler) render(c echo.Context, list *usecase.OrderList) error {
	params := queryValues(list.Query)

	return response.Render(c, http.StatusOK, "orders", response.Page{
		Title:  "Orders",
		Active: "orders",
		Data: OrdersView{
			List:     list,
			Statuses: entity.OrderStatuses,
			Pager:    response.NewPager(ordersPath, params, list.Page),
			Action:   template.URL(withPage(params, list.Query.Page).Encode()),
		},
	})
}

func queryValues(q entity.OrderQuery) url.Values {
	values := url.Values{}
	if q.Search != "" {
		values.Set("q", q.Search)
	}
	if q.Status != "" {
		values.Set("status", string(q.Status))
	}

	return values
}

func withPage(values url.Values, page int) url.Values {
	out := url.Values{}
	for k, v := range values {
		out[k] = v
	}
	if page > 1 {
		out.Set("page", strconv.Itoa(page))
	}

	return out
}

func ordersURL(q entity.OrderQuery) string {
	encoded := withPage(queryValues(q), q.Page).Encode()
	if encoded == "" {
		return ordersPath
	}

	return ordersPath + "?" + encoded
}
