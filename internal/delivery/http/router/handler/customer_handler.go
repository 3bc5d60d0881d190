package handler

import (
	"net/http"
	"net/url"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"
	"backoffice/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const customersPath = "/customers"

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
}

// CustomerHandler serves the customers screen.
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{customerUC: params.CustomerUC}
}

// CustomersView is the model of the customers screen and its register dialog.
type CustomersView struct {
	List  *usecase.CustomerList
	Pager response.Pager
	// Register holds the rejected dialog input; the password is never echoed.
	Register     entity.RegisterInput
	ShowRegister bool
}

// List renders the customers screen.
func (h *CustomerHandler) List(c echo.Context) error {
	var query entity.CustomerQuery
	if err := c.Bind(&query); err != nil {
		return bindError(err)
	}

	return h.render(c, http.StatusOK, query, CustomersView{}, "")
}

// Register creates a customer account from the register dialog.
func (h *CustomerHandler) Register(c echo.Context) error {
	var input entity.RegisterInput
	if err := c.Bind(&input); err != nil {
		return bindError(err)
	}

	err := h.customerUC.Register(c.Request().Context(), deliverycontext.GetTokens(c), input)
	if err != nil {
		if response.SessionLost(err) {
			return err
		}

		input.Password = ""

		return h.render(c, formStatus(err), entity.CustomerQuery{},
			CustomersView{Register: input, ShowRegister: true}, response.UserMessage(err))
	}

	return response.RedirectWithFlash(c, customersPath, deliverycontext.FlashSuccess, "Customer "+input.Name+" registered")
}

func (h *CustomerHandler) render(c echo.Context, status int, query entity.CustomerQuery, view CustomersView, formError string) error {
	list, err := h.customerUC.List(c.Request().Context(), deliverycontext.GetTokens(c), query)
	if err != nil {
		if failErr := response.Fail(c, err); failErr != nil {
			return failErr
		}
		list = &usecase.CustomerList{Query: query, Page: util.Paginate([]entity.Customer{}, 0, 1)}
	}

	params := url.Values{}
	params.Set("q", list.Query.Search)

	view.List = list
	view.Pager = response.NewPager(customersPath, params, list.Page)

	return response.Render(c, status, "customers", response.Page{
		Title:     "Customers",
		Active:    "customers",
		FormError: formError,
		Data:      view,
	})
}
