// Package metrics builds the OpenTelemetry meter provider and the console's instruments.
package metrics

import (
	"context"
	"log/slog"
	"strings"

	"backoffice/config"
	"backoffice/internal/errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.uber.org/fx"
)

const (
	meterName      = "backoffice"
	metricsURLPath = "/v1/metrics"
)

// DurationBuckets are histogram boundaries in milliseconds.
var DurationBuckets = []float64{2, 4, 6, 8, 10, 50, 100, 200, 400, 800, 1000, 1400, 2000, 5000, 10000, 15000, 30000, 60000}

// Params holds dependencies for the meter provider, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewMeterProvider returns an OTLP/HTTP backed provider, or a no-op provider
// when metrics are disabled.
func NewMeterProvider(params Params) (metric.MeterProvider, error) {
	cfg := params.Config.Metrics
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Metrics disabled, using no-op meter provider")

		return noop.NewMeterProvider(), nil
	}

	ctx := context.Background()

	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(params.Config.Env.ServiceName),
			attribute.String("deployment.environment", params.Config.Env.Env),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to merge metric resources")
	}

	exporterOpts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(cfg.Endpoint),
		otlpmetrichttp.WithURLPath(metricsURLPath),
	}
	if cfg.Headers != "" {
		exporterOpts = append(exporterOpts, otlpmetrichttp.WithHeaders(ParseHeaders(cfg.Headers)))
	}
	if cfg.Insecure {
		exporterOpts = append(exporterOpts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, exporterOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create OTLP metric exporter")
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if cfg.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.Interval))
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
	)
	otel.SetMeterProvider(provider)

	params.Logger.Info("Metrics exporter configured",
		slog.String("endpoint", cfg.Endpoint),
		slog.Bool("insecure", cfg.Insecure),
		slog.Duration("interval", cfg.Interval),
	)

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Flushing metrics")

			return errors.WithStack(provider.Shutdown(ctx))
		},
	})

	return provider, nil
}

// Meter returns the console meter from the provider.
func Meter(provider metric.MeterProvider) metric.Meter {
	return provider.Meter(meterName)
}

// ParseHeaders parses "k1=v1,k2=v2" into a map. Malformed pairs are skipped.
func ParseHeaders(raw string) map[string]string {
	headers := make(map[string]string)
	for pair := range strings.SplitSeq(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || strings.TrimSpace(key) == "" {
			continue
		}
		headers[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return headers
}
