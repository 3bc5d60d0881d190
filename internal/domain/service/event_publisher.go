package service

import (
	"context"
)

// DeliveryEvent tells a customer about a change on their delivery.
type DeliveryEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	EventID        string `json:"event_id"`
	OrderID        int64  `json:"order_id"`
	CustomerID     int64  `json:"customer_id"`
	TrackingNumber string `json:"tracking_number"`
	Status         string `json:"status"`
	Title          string `json:"title"`
	Body           string `json:"body"`
}

// EventPublisher defines the interface for publishing delivery events
type EventPublisher interface {
	// PublishDeliveryEvent publishes a delivery event to the configured provider
	PublishDeliveryEvent(ctx context.Context, event *DeliveryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
