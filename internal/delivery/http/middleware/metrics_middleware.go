package middleware

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/errors"
	"backoffice/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsMiddleware records request count, errors and duration per route.
type MetricsMiddleware struct {
	instruments *metrics.HTTPServer
}

// NewMetricsMiddleware is the constructor for MetricsMiddleware.
func NewMetricsMiddleware(provider metric.MeterProvider) (*MetricsMiddleware, error) {
	instruments, err := metrics.NewHTTPServer(provider)
	if err != nil {
		return nil, err
	}

	return &MetricsMiddleware{instruments: instruments}, nil
}

// Handle measures the wrapped handler.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := statusOf(c, err)
		ctx := c.Request().Context()
		attrs := metric.WithAttributes(
			attribute.String("http.method", c.Request().Method),
			attribute.String("http.route", c.Path()),
			attribute.String("http.status_code", strconv.Itoa(status)),
		)

		m.instruments.Requests.Add(ctx, 1, attrs)
		m.instruments.Duration.Record(ctx, float64(time.Since(start).Milliseconds()), attrs)
		if status >= http.StatusBadRequest {
			m.instruments.Errors.Add(ctx, 1, attrs)
		}

		return err
	}
}

func statusOf(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}
