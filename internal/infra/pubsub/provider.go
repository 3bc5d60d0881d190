// Package pubsub publishes delivery events to the configured provider.
package pubsub

import (
	"context"
	"log/slog"

	"backoffice/config"
	"backoffice/internal/domain/service"
	"backoffice/internal/infra/notification"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Provider names accepted in notification.provider.
const (
	ProviderNone     = "none"
	ProviderLocal    = "local"
	ProviderGoogle   = "google"
	ProviderFirebase = "firebase"
)

// noopPublisher is a no-op implementation when notifications are disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishDeliveryEvent(ctx context.Context, event *service.DeliveryEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Event publishing disabled, skipping",
		slog.String("event_id", event.EventID),
		slog.Int64("order_id", event.OrderID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.Notification
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == ProviderNone {
		logger.Info("Delivery notifications not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	ctx := context.Background()

	var publisher service.EventPublisher

	switch cfg.Provider {
	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for delivery notifications",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case ProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		var err error
		publisher, err = NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case ProviderFirebase:
		if cfg.CredentialsPath == "" {
			return nil, errors.New("credentials path is required for firebase provider")
		}
		notifier, err := notification.NewFirebaseService(ctx, cfg.CredentialsPath)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Firebase Cloud Messaging for delivery notifications")

		publisher = NewTopicPublisher(notifier, logger)

	default:
		return nil, errors.Errorf("unknown notification provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the delivery notification FX module
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
