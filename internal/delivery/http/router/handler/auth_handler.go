package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC         usecase.AuthUsecase
	AuthMiddleware *middleware.AuthMiddleware
	Logger         *slog.Logger
}

// AuthHandler serves the login screen and logout.
type AuthHandler struct {
	authUC   usecase.AuthUsecase
	sessions *middleware.AuthMiddleware
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:   params.AuthUC,
		sessions: params.AuthMiddleware,
		logger:   params.Logger,
	}
}

// LoginView is the model of the login screen.
type LoginView struct {
	Email string
}

// LoginPage shows the login form, or the dashboard when already signed in.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	loggedIn, err := h.authUC.LoggedIn(c.Request().Context(), deliverycontext.GetTokens(c))
	if err != nil {
		return err
	}
	if loggedIn {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	return response.Render(c, http.StatusOK, "login", response.Page{Title: "Sign in", Bare: true, Data: LoginView{}})
}

// Login exchanges the submitted credentials for a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var creds entity.Credentials
	if err := c.Bind(&creds); err != nil {
		return bindError(err)
	}

	if err := h.authUC.Login(c.Request().Context(), deliverycontext.GetTokens(c), creds); err != nil {
		if response.SessionLost(err) {
			return err
		}

		return response.Render(c, formStatus(err), "login", response.Page{
			Title:     "Sign in",
			Bare:      true,
			FormError: response.UserMessage(err),
			Data:      LoginView{Email: creds.Email},
		})
	}

	return response.RedirectWithFlash(c, "/", deliverycontext.FlashSuccess, "Welcome back")
}

// Logout clears the session and moves the browser onto a fresh one.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.authUC.Logout(ctx, deliverycontext.GetTokens(c), deliverycontext.GetSessionID(c)); err != nil {
		return err
	}

	if err := h.sessions.Rotate(c); err != nil {
		return err
	}

	return response.RedirectWithFlash(c, middleware.LoginPath, deliverycontext.FlashInfo, "You have been signed out")
}
