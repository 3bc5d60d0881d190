package middleware

import (
	"log/slog"
	"net/http"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/errors"
	"backoffice/internal/infra/session"
	"backoffice/internal/usecase"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LoginPath is where the auth gate sends signed-out browsers.
const LoginPath = "/login"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Config   *config.Config
	Registry *session.Registry
	AuthUC   usecase.AuthUsecase
	Logger   *slog.Logger
}

// AuthMiddleware binds each browser to a console session through a signed
// cookie and gates the screens on the session's logged-in state.
type AuthMiddleware struct {
	cookies  *sessions.CookieStore
	name     string
	registry *session.Registry
	authUC   usecase.AuthUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) (*AuthMiddleware, error) {
	cfg := params.Config.Session
	if cfg.AuthKey == "" {
		return nil, errors.New("session auth key is required")
	}

	cookies := sessions.NewCookieStore([]byte(cfg.AuthKey))
	cookies.Options.Path = "/"
	cookies.Options.HttpOnly = true
	cookies.Options.Secure = cfg.Secure
	cookies.Options.SameSite = http.SameSiteLaxMode
	cookies.Options.MaxAge = cfg.MaxAge

	return &AuthMiddleware{
		cookies:  cookies,
		name:     cfg.CookieName,
		registry: params.Registry,
		authUC:   params.AuthUC,
		logger:   params.Logger,
	}, nil
}

// Session loads the cookie session, assigning a new console session id on
// the first visit or when the cookie cannot be decoded.
func (m *AuthMiddleware) Session(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := m.cookies.Get(c.Request(), m.name)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Discarding unreadable session cookie", slog.Any("error", err))
		}

		id, _ := sess.Values[deliverycontext.SessionIDValue].(string)
		if id == "" {
			id = m.registry.NewID()
			sess.Values[deliverycontext.SessionIDValue] = id
			if err := sess.Save(c.Request(), c.Response()); err != nil {
				return errors.Wrap(err, "save session cookie")
			}
		}

		deliverycontext.SetSession(c, sess, id, m.registry.For(id))

		return next(c)
	}
}

// RequireLogin redirects to the login screen unless the session holds a
// complete token pair and is marked logged in.
func (m *AuthMiddleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		tokens := deliverycontext.GetTokens(c)

		loggedIn, err := m.authUC.LoggedIn(ctx, tokens)
		if err != nil {
			return err
		}
		if !loggedIn {
			return c.Redirect(http.StatusSeeOther, LoginPath)
		}

		identity, err := m.authUC.Identity(ctx, tokens)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Cannot decode admin identity", slog.Any("error", err))
		}
		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// Rotate moves the browser onto a fresh console session, used after logout.
func (m *AuthMiddleware) Rotate(c echo.Context) error {
	id := m.registry.NewID()

	return deliverycontext.RotateSession(c, id, m.registry.For(id))
}
