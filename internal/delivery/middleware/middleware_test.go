package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	e := echo.New()
	mw := NewRequestIDMiddleware(logger)

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "well formed", incoming: "proxy-id-12345", keep: true},
		{name: "missing", incoming: ""},
		{name: "header injection", incoming: "abc\r\nSet-Cookie: x"},
		{name: "too short", incoming: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/orders", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := mw.Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				deliverycontext.GetLogger(c.Request().Context()).Info("inside")

				return nil
			})(c)
			require.NoError(t, err)

			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, seen, deliverycontext.GetRequestID(c))
			if tt.keep {
				assert.Equal(t, tt.incoming, seen)
			} else {
				assert.NotEqual(t, tt.incoming, seen)
				assert.Len(t, seen, 36)
			}
			assert.Contains(t, buf.String(), "request_id="+seen)
			assert.Contains(t, buf.String(), "screen=/orders")
		})
	}
}

func TestLoggerMiddleware_LogsSubmissionsInDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = true
	e := echo.New()
	mw := NewLoggerMiddleware(logger, cfg)

	form := url.Values{"email": {"admin@example.com"}, "password": {"hunter2"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/login")

	err := mw.Handle(func(c echo.Context) error {
		_ = c.FormValue("email")

		return c.Redirect(http.StatusSeeOther, "/")
	})(c)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Console form submitted")
	assert.Contains(t, out, "route=/login")
	assert.Contains(t, out, "redirect=/")
	assert.Contains(t, out, "password=[redacted]")
	assert.NotContains(t, out, "hunter2")
}

func TestLoggerMiddleware_QuietOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := echo.New()
	mw := NewLoggerMiddleware(logger, &config.Config{})

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })(c))
	assert.Empty(t, buf.String())
}
