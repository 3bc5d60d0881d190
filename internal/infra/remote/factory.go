package remote

import (
	"log/slog"
	"net/http"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	"backoffice/internal/infra/metrics"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// FactoryParams holds dependencies for the API factory, injected by Fx
type FactoryParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	Previews      service.PreviewStore
	MeterProvider metric.MeterProvider
	// HTTPClient is optional; tests inject the httptest client.
	HTTPClient *http.Client `optional:"true"`
}

// Factory opens API gateways bound to a session. The HTTP client and the
// refresh group are shared by every session.
type Factory struct {
	baseURL        string
	httpClient     *http.Client
	refreshTimeout time.Duration
	previews       service.PreviewStore
	refreshes      *singleflight.Group
	metrics        *metrics.APIClient
	logger         *slog.Logger
}

// NewFactory builds the factory from configuration.
func NewFactory(params FactoryParams) (*Factory, error) {
	if params.Config.Remote.BaseURL == "" {
		return nil, errors.New("remote base URL is required")
	}

	instruments, err := metrics.NewAPIClient(params.MeterProvider)
	if err != nil {
		return nil, err
	}

	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: params.Config.Remote.Timeout}
	}

	refreshTimeout := params.Config.Remote.Timeout
	if refreshTimeout <= 0 {
		refreshTimeout = defaultRefreshTimeout
	}

	return &Factory{
		baseURL:        params.Config.Remote.BaseURL,
		httpClient:     httpClient,
		refreshTimeout: refreshTimeout,
		previews:       params.Previews,
		refreshes:      &singleflight.Group{},
		metrics:        instruments,
		logger:         params.Logger.With(slog.String("component", "remote")),
	}, nil
}

// NewClient returns a client reading and writing the given token storage.
func (f *Factory) NewClient(tokens service.TokenStore) *Client {
	return &Client{
		baseURL:        f.baseURL,
		httpClient:     f.httpClient,
		refreshTimeout: f.refreshTimeout,
		tokens:         tokens,
		refreshes:      f.refreshes,
		metrics:        f.metrics,
		logger:         f.logger,
	}
}

// Open implements service.AdminAPIFactory.
func (f *Factory) Open(tokens service.TokenStore) service.AdminAPI {
	return &gateway{
		client:   f.NewClient(tokens),
		previews: f.previews,
	}
}

// AsAdminAPIFactory exposes the factory through the domain interface.
func AsAdminAPIFactory(f *Factory) service.AdminAPIFactory {
	return f
}
