// Package router contains routing for the console screens.
package router

import (
	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler and middleware the routes need, injected by Fx.
type RouterParams struct {
	fx.In

	AuthMiddleware *middleware.AuthMiddleware
	CSRF           echo.MiddlewareFunc `name:"csrf"`

	AuthHandler      *handler.AuthHandler
	DashboardHandler *handler.DashboardHandler
	ProductHandler   *handler.ProductHandler
	PreviewHandler   *handler.PreviewHandler
	OrderHandler     *handler.OrderHandler
	CustomerHandler  *handler.CustomerHandler
	DeliveryHandler  *handler.DeliveryHandler
	SettingsHandler  *handler.SettingsHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up every console route. Screens share the cookie
// session and CSRF protection; everything past the login page requires a
// signed-in session.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	p := r.params
	app := e.Group("", p.AuthMiddleware.Session, p.CSRF)

	app.GET(middleware.LoginPath, p.AuthHandler.LoginPage)
	app.POST(middleware.LoginPath, p.AuthHandler.Login)
	app.POST("/logout", p.AuthHandler.Logout)

	screens := app.Group("", p.AuthMiddleware.RequireLogin)
	{
		screens.GET("/", p.DashboardHandler.Show)
	}

	products := screens.Group("/products")
	{
		products.GET("", p.ProductHandler.List)
		products.GET("/new", p.ProductHandler.New)
		products.POST("", p.ProductHandler.Create)
		products.GET("/:id/edit", p.ProductHandler.Edit)
		products.POST("/:id", p.ProductHandler.Update)
		products.POST("/:id/delete", p.ProductHandler.Delete)

		products.POST("/previews", p.PreviewHandler.Stage)
		products.POST("/previews/discard", p.PreviewHandler.Discard)
		products.DELETE("/previews/:id", p.PreviewHandler.Release)
	}
	screens.GET("/previews/:id", p.PreviewHandler.Serve)

	orders := screens.Group("/orders")
	{
		orders.GET("", p.OrderHandler.List)
		orders.POST("/:id/status", p.OrderHandler.UpdateStatus)
		orders.GET("/customers/:id", p.OrderHandler.Customer)
	}

	customers := screens.Group("/customers")
	{
		customers.GET("", p.CustomerHandler.List)
		customers.POST("", p.CustomerHandler.Register)
	}

	deliveries := screens.Group("/delivery-status")
	{
		deliveries.GET("", p.DeliveryHandler.Board)
		deliveries.POST("/:id/toggle", p.DeliveryHandler.Toggle)
		deliveries.POST("/:id/notify", p.DeliveryHandler.Notify)
		deliveries.GET("/:id/label.png", p.DeliveryHandler.Label)
	}

	settings := screens.Group("/settings")
	{
		settings.GET("", p.SettingsHandler.Show)
		settings.POST("/general", p.SettingsHandler.SaveGeneral)
		settings.POST("/company", p.SettingsHandler.SaveCompany)
		settings.POST("/notifications", p.SettingsHandler.SaveNotifications)
	}
}
