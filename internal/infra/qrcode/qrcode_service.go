// Package qrcode renders delivery tracking labels.
package qrcode

import (
	"encoding/json"
	"fmt"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	labelType   = "delivery"
	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// LabelData is the payload encoded in a tracking label.
type LabelData struct {
	TrackingNumber string `json:"tracking_number"`
	OrderID        int64  `json:"order_id"`
	Type           string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// New builds the service from the qrcode config section.
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateTrackingLabel renders the delivery's tracking label as PNG
func (s *qrcodeService) GenerateTrackingLabel(delivery entity.Delivery) ([]byte, error) {
	if delivery.OrderID <= 0 {
		return nil, fmt.Errorf("invalid order id: %d", delivery.OrderID)
	}

	trackingNumber := delivery.TrackingNumber
	if trackingNumber == "" {
		trackingNumber = entity.TrackingNumber(delivery.OrderID)
	}

	jsonData, err := json.Marshal(LabelData{
		TrackingNumber: trackingNumber,
		OrderID:        delivery.OrderID,
		Type:           labelType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal label data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseTrackingLabel parses scanned label data
func (s *qrcodeService) ParseTrackingLabel(data string) (string, int64, error) {
	var label LabelData
	if err := json.Unmarshal([]byte(data), &label); err != nil {
		return "", 0, fmt.Errorf("failed to unmarshal label data: %w", err)
	}

	if label.Type != labelType {
		return "", 0, fmt.Errorf("invalid label type: %s", label.Type)
	}

	if label.OrderID <= 0 {
		return "", 0, fmt.Errorf("invalid order id: %d", label.OrderID)
	}

	if label.TrackingNumber != entity.TrackingNumber(label.OrderID) {
		return "", 0, fmt.Errorf("tracking number %s does not match order %d", label.TrackingNumber, label.OrderID)
	}

	return label.TrackingNumber, label.OrderID, nil
}
