package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"backoffice/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishDeliveryEvent publishes an event to Google Pub/Sub
func (p *googlePubSubPublisher) PublishDeliveryEvent(ctx context.Context, event *service.DeliveryEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: orderingKey(event),
	}

	serverID, err := p.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		// A failed ordered publish pauses its key until resumed.
		p.publisher.ResumePublish(msg.OrderingKey)

		return errors.Wrapf(err, "publish event %s", event.EventID)
	}

	p.logger.InfoContext(ctx, "[GooglePubSub] Event published",
		slog.String("event_id", event.EventID),
		slog.Int64("order_id", event.OrderID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}

// orderingKey keeps the events of one order in publish order.
func orderingKey(event *service.DeliveryEvent) string {
	return "order-" + strconv.FormatInt(event.OrderID, 10)
}

// eventAttributes are the message attributes used for filtering and tracing.
func eventAttributes(event *service.DeliveryEvent) map[string]string {
	attributes := map[string]string{
		"event_id":        event.EventID,
		"order_id":        strconv.FormatInt(event.OrderID, 10),
		"customer_id":     strconv.FormatInt(event.CustomerID, 10),
		"tracking_number": event.TrackingNumber,
		"status":          event.Status,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
