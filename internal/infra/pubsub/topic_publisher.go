package pubsub

import (
	"context"
	"log/slog"
	"strconv"

	"backoffice/internal/domain/service"
	"backoffice/internal/infra/notification"

	"github.com/pkg/errors"
)

// CustomerTopicPrefix prefixes the push topic every customer app subscribes to.
const CustomerTopicPrefix = "customer-"

// topicPublisher delivers events straight to the customer's devices through
// a push notification topic.
type topicPublisher struct {
	notifier service.NotificationService
	logger   *slog.Logger
}

// NewTopicPublisher adapts a NotificationService to EventPublisher.
func NewTopicPublisher(notifier service.NotificationService, logger *slog.Logger) service.EventPublisher {
	return &topicPublisher{notifier: notifier, logger: logger}
}

// CustomerTopic is the topic of one customer.
func CustomerTopic(customerID int64) string {
	return CustomerTopicPrefix + strconv.FormatInt(customerID, 10)
}

func (p *topicPublisher) PublishDeliveryEvent(ctx context.Context, event *service.DeliveryEvent) error {
	topic := CustomerTopic(event.CustomerID)

	data := eventAttributes(event)
	data[notification.DataCollapseKey] = orderingKey(event)

	if err := p.notifier.SendTopicNotification(ctx, topic, event.Title, event.Body, data); err != nil {
		return errors.Wrapf(err, "notify topic %s", topic)
	}

	p.logger.InfoContext(ctx, "[TopicPush] Event delivered",
		slog.String("topic", topic),
		slog.String("event_id", event.EventID),
	)

	return nil
}

func (p *topicPublisher) Close() error {
	return nil
}
