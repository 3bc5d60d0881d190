// Package notification sends push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"
	"time"

	"backoffice/internal/domain/service"
	"backoffice/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// DataCollapseKey is the data field whose value replaces an undelivered
// earlier push with the same value, so a customer only sees the latest
// status of one order.
const DataCollapseKey = "collapse_key"

// deliveryPushTTL bounds how long FCM keeps an undelivered status push.
const deliveryPushTTL = 24 * time.Hour

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.NotificationService, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendTopicNotification pushes to every device subscribed to topic.
func (s *firebaseService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	if topic == "" {
		return errors.New("topic is required")
	}

	if _, err := s.client.Send(ctx, topicMessage(topic, title, body, data)); err != nil {
		if messaging.IsInvalidArgument(err) {
			return errors.Wrapf(err, "topic %s rejected", topic)
		}

		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

func topicMessage(topic, title, body string, data map[string]string) *messaging.Message {
	ttl := deliveryPushTTL
	message := &messaging.Message{
		Topic:        topic,
		Notification: &messaging.Notification{Title: title, Body: body},
		Data:         data,
		Android:      &messaging.AndroidConfig{TTL: &ttl},
	}

	if key := data[DataCollapseKey]; key != "" {
		message.Android.CollapseKey = key
		message.APNS = &messaging.APNSConfig{
			Headers: map[string]string{"apns-collapse-id": key},
		}
	}

	return message
}
