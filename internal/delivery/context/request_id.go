// Package context carries per-request console state: the request id, the
// request logger, the cookie session and its flashes.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// ContextKey names values stored on echo.Context and context.Context.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"

	// HeaderXRequestID is echoed to the browser and forwarded to the remote API.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the id assigned by the request id middleware, or ""
// outside of a request.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(KeyRequestID)).(string)

	return id
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext is GetRequestID for the usecase and remote layers.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request logger or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault falls back for work that runs outside a request, such
// as the preview sweeper and the CLI.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
