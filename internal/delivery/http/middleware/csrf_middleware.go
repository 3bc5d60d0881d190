package middleware

import (
	"net/http"

	"backoffice/config"
	"backoffice/internal/errors"

	"github.com/gorilla/csrf"
	"github.com/labstack/echo/v4"
)

const (
	// CSRFField is the hidden form field carrying the token.
	CSRFField = "csrf_token"
	// CSRFHeader carries the token on script requests.
	CSRFHeader = "X-CSRF-Token"
)

// NewCSRFMiddleware protects every unsafe request with gorilla/csrf.
func NewCSRFMiddleware(cfg *config.Config) (echo.MiddlewareFunc, error) {
	key := []byte(cfg.Session.CSRFKey)
	if len(key) != 32 {
		return nil, errors.New("session CSRF key must be 32 bytes")
	}

	protect := echo.WrapMiddleware(csrf.Protect(key,
		csrf.Secure(cfg.Session.Secure),
		csrf.Path("/"),
		csrf.FieldName(CSRFField),
		csrf.RequestHeader(CSRFHeader),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reason := "invalid CSRF token"
			if err := csrf.FailureReason(r); err != nil {
				reason = err.Error()
			}
			http.Error(w, "Forbidden: "+reason, http.StatusForbidden)
		})),
	))

	if cfg.Session.Secure {
		return protect, nil
	}

	// Without TLS the origin check must be told the request is plaintext.
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		protected := protect(next)

		return func(c echo.Context) error {
			c.SetRequest(csrf.PlaintextHTTPRequest(c.Request()))

			return protected(c)
		}
	}, nil
}
