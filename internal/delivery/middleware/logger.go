package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// sensitiveFields are listed as redacted.
var sensitiveFields = []string{"password", "password_confirm", "csrf_token", "gorilla.csrf.Token"}

// LoggerMiddleware traces console form submissions when debug is on. Access
// logs are written by slog-echo; this adds which fields a screen posted and
// where the console sent the browser afterwards.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug || c.Request().Method == http.MethodGet || c.Request().Method == http.MethodHead {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.logSubmission(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logSubmission(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	attrs := []slog.Attr{
		slog.String("route", c.Path()),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.Any("fields", postedFields(req)),
	}
	if location := res.Header().Get(echo.HeaderLocation); location != "" {
		attrs = append(attrs, slog.String("redirect", location))
	}
	if req.MultipartForm != nil {
		for name, files := range req.MultipartForm.File {
			for _, f := range files {
				attrs = append(attrs, slog.Group("file",
					slog.String("field", name),
					slog.String("name", f.Filename),
					slog.Int64("size", f.Size),
				))
			}
		}
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).
		LogAttrs(req.Context(), slog.LevelDebug, "Console form submitted", attrs...)
}

// postedFields lists the submitted field names, marking secrets as redacted.
// The form is only read if the handler already parsed it.
func postedFields(req *http.Request) []string {
	if req.PostForm == nil {
		return nil
	}

	fields := make([]string, 0, len(req.PostForm))
	for name := range req.PostForm {
		if slices.ContainsFunc(sensitiveFields, func(s string) bool { return strings.EqualFold(s, name) }) {
			name += "=[redacted]"
		}
		fields = append(fields, name)
	}
	slices.Sort(fields)

	return fields
}
