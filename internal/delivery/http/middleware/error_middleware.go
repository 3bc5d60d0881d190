package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/delivery/http/response"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorView is the model of the error page.
type ErrorView struct {
	Status  int
	Code    string
	Message string
}

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Preview
// endpoints answer JSON; screens get an error page, or the login screen
// when the session was lost.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	view := classify(err)

	if response.SessionLost(err) {
		logger.Info("Session lost, signing out", slog.String("code", view.Code))
		if wantsJSON(c) {
			_ = response.Error(c, http.StatusUnauthorized, view.Code, view.Message, nil)

			return
		}
		if flashErr := response.RedirectWithFlash(c, LoginPath, deliverycontext.FlashInfo, view.Message); flashErr != nil {
			logger.Error("Failed to redirect to login", slog.Any("error", flashErr))
		}

		return
	}

	if view.Status >= http.StatusInternalServerError {
		logger.Error("Unhandled error",
			slog.Any("error", err),
			slog.String("origin", errors.Origin(err)),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
	} else {
		logger.Debug("Request failed", slog.Any("error", err), slog.Int("status", view.Status))
	}

	if wantsJSON(c) {
		_ = response.Error(c, view.Status, view.Code, view.Message, nil)

		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(view.Status)

		return
	}

	renderErr := response.Render(c, view.Status, "error", response.Page{
		Title: http.StatusText(view.Status),
		Bare:  !deliverycontext.SignedIn(c),
		Data:  view,
	})
	if renderErr != nil {
		logger.Error("Failed to render error page", slog.Any("error", renderErr))
		_ = c.String(view.Status, fmt.Sprintf("%d %s", view.Status, view.Message))
	}
}

func classify(err error) ErrorView {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return ErrorView{Status: appErr.HTTPCode(), Code: appErr.ErrorCode(), Message: response.UserMessage(err)}
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}

		return ErrorView{Status: httpErr.Code, Code: "HTTP_ERROR", Message: message}
	}

	return ErrorView{
		Status:  http.StatusInternalServerError,
		Code:    domainerrors.ErrInternalError.ErrorCode(),
		Message: domainerrors.ErrInternalError.Message(),
	}
}

func wantsJSON(c echo.Context) bool {
	path := c.Request().URL.Path
	if strings.HasPrefix(path, "/products/previews") || strings.HasPrefix(path, "/previews/") {
		return true
	}

	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}
