package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
)

// DeliveryBoard is the delivery status screen.
type DeliveryBoard struct {
	Search     string
	Deliveries []entity.Delivery
	Counts     map[entity.DeliveryStatus]int
}

// DeliveryUsecase drives the delivery status screen. Deliveries are derived from orders.
type DeliveryUsecase interface {
	Board(ctx context.Context, tokens service.TokenStore, search string) (*DeliveryBoard, error)

	// Toggle flips an order between delivered and in transit.
	Toggle(ctx context.Context, tokens service.TokenStore, orderID int64) (*entity.Delivery, error)

	// Notify publishes a delivery update for the order's customer.
	Notify(ctx context.Context, tokens service.TokenStore, orderID int64) error

	// Label renders the tracking label of the order as PNG.
	Label(ctx context.Context, tokens service.TokenStore, orderID int64) ([]byte, error)
}
