package service

import (
	"backoffice/internal/domain/entity"
)

// QRCodeService defines the interface for delivery tracking label generation and parsing
type QRCodeService interface {
	// GenerateTrackingLabel renders a PNG QR code for the delivery
	GenerateTrackingLabel(delivery entity.Delivery) ([]byte, error)

	// ParseTrackingLabel parses label data and returns the tracking number and order id
	ParseTrackingLabel(data string) (trackingNumber string, orderID int64, err error)
}
