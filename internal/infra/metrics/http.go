package metrics

import (
	"go.opentelemetry.io/otel/metric"

	"backoffice/internal/errors"
)

// HTTPServer holds the inbound request instruments.
type HTTPServer struct {
	Requests metric.Int64Counter
	Errors   metric.Int64Counter
	Duration metric.Float64Histogram
}

// NewHTTPServer creates the inbound request instruments.
func NewHTTPServer(provider metric.MeterProvider) (*HTTPServer, error) {
	meter := Meter(provider)

	requests, err := meter.Int64Counter("http.server.request.count",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request counter")
	}

	failures, err := meter.Int64Counter("http.server.request.errors",
		metric.WithDescription("Requests answered with a 4xx or 5xx status"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create error counter")
	}

	duration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Request duration"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(DurationBuckets...),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create duration histogram")
	}

	return &HTTPServer{Requests: requests, Errors: failures, Duration: duration}, nil
}

// APIClient holds the outbound back office API instruments.
type APIClient struct {
	Requests  metric.Int64Counter
	Failures  metric.Int64Counter
	Refreshes metric.Int64Counter
	Duration  metric.Float64Histogram
}

// NewAPIClient creates the outbound API instruments.
func NewAPIClient(provider metric.MeterProvider) (*APIClient, error) {
	meter := Meter(provider)

	requests, err := meter.Int64Counter("backoffice.api.request.count",
		metric.WithDescription("Calls made to the back office API"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create api request counter")
	}

	failures, err := meter.Int64Counter("backoffice.api.request.failures",
		metric.WithDescription("Calls that ended in an error"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create api failure counter")
	}

	refreshes, err := meter.Int64Counter("backoffice.api.token.refresh.count",
		metric.WithDescription("Access token refresh attempts"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create refresh counter")
	}

	duration, err := meter.Float64Histogram("backoffice.api.request.duration",
		metric.WithDescription("Back office API call duration"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(DurationBuckets...),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create api duration histogram")
	}

	return &APIClient{Requests: requests, Failures: failures, Refreshes: refreshes, Duration: duration}, nil
}
