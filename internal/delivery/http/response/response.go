// Package response renders console pages and the JSON replies of the preview endpoints.
package response

import (
	"html/template"
	"log/slog"
	"net/http"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/errors"

	"github.com/gorilla/csrf"
	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Success returns a successful JSON response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{RequestID: deliverycontext.GetRequestID(c)},
	})
}

// Error returns a JSON error response. Details are dropped for 5xx and auth failures.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{RequestID: deliverycontext.GetRequestID(c)},
	})
}

// Page is the data every template receives. Data carries the screen model.
type Page struct {
	Title     string
	Active    string
	Bare      bool
	Identity  entity.Identity
	Flashes   []deliverycontext.Flash
	CSRFField template.HTML
	CSRFToken string
	FormError string
	Data      any
}

// Render fills the shell fields of the page and executes the named view.
func Render(c echo.Context, status int, name string, page Page) error {
	page.Identity = deliverycontext.GetIdentity(c)
	page.Flashes = deliverycontext.PopFlashes(c)
	page.CSRFField = csrf.TemplateField(c.Request())
	page.CSRFToken = csrf.Token(c.Request())

	return c.Render(status, name, page)
}

// RedirectWithFlash queues a notification and sends the browser to path.
func RedirectWithFlash(c echo.Context, path, level, message string) error {
	if err := deliverycontext.AddFlash(c, level, message); err != nil {
		return err
	}

	return c.Redirect(http.StatusSeeOther, path)
}

// SessionLost reports whether err means the admin must sign in again.
func SessionLost(err error) bool {
	return errors.IsAny(err, domainerrors.ErrSessionExpired, domainerrors.ErrNotLoggedIn)
}

// UserMessage is the text shown for err in a notification or above a form.
func UserMessage(err error) string {
	if baseErr, ok := errors.AsType[*domainerrors.BaseError](err); ok {
		if baseErr.Details() != "" && baseErr.HTTPCode() < http.StatusInternalServerError {
			return baseErr.Message() + ": " + baseErr.Details()
		}

		return baseErr.Message()
	}

	if apiErr, ok := errors.AsType[*domainerrors.APIError](err); ok {
		return apiErr.Message()
	}

	return domainerrors.ErrInternalError.Message()
}

// Fail handles a usecase error on a screen: a lost session goes back to the
// error handler, anything else becomes a notification on the page being rendered.
func Fail(c echo.Context, err error) error {
	if SessionLost(err) {
		return err
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), slog.Default()).
		Warn("Screen action failed", slog.String("path", c.Path()), slog.Any("error", err))
	deliverycontext.Notify(c, deliverycontext.FlashError, UserMessage(err))

	return nil
}
