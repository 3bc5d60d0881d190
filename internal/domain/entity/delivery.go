package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// DeliveryStatus is the courier-facing view of an order status.
type DeliveryStatus string

const (
	DeliveryPendingStatus DeliveryStatus = "pending"
	DeliveryInTransit     DeliveryStatus = "in-transit"
	DeliveryDelivered     DeliveryStatus = "delivered"
	DeliveryFailed        DeliveryStatus = "failed"
)

// Delivery is derived from an order; the API has no separate resource.
type Delivery struct {
	OrderID        int64
	OrderRef       string
	TrackingNumber string
	CustomerID     int64
	Address        string
	Method         DeliveryMethod
	Status         DeliveryStatus
	OrderStatus    OrderStatus
}

// DeliveryStatusOf maps an order status onto the delivery board.
func DeliveryStatusOf(s OrderStatus) DeliveryStatus {
	switch s {
	case OrderProcessing:
		return DeliveryInTransit
	case OrderCompleted:
		return DeliveryDelivered
	case OrderCancelled:
		return DeliveryFailed
	default:
		return DeliveryPendingStatus
	}
}

// TrackingNumber is stable for an order id.
func TrackingNumber(orderID int64) string {
	return fmt.Sprintf("TRK%07d", orderID)
}

// DeliveryFromOrder builds the board row for an order.
func DeliveryFromOrder(o Order) Delivery {
	return Delivery{
		OrderID:        o.ID,
		OrderRef:       o.Reference(),
		TrackingNumber: TrackingNumber(o.ID),
		CustomerID:     o.User,
		Address:        o.ShippingAddress,
		Method:         o.DeliveryMethod,
		Status:         DeliveryStatusOf(o.Status),
		OrderStatus:    o.Status,
	}
}

// ToggledOrderStatus flips delivered and in-transit: a delivered order goes
// back to processing, anything else is marked completed.
func (d Delivery) ToggledOrderStatus() OrderStatus {
	if d.Status == DeliveryDelivered {
		return OrderProcessing
	}

	return OrderCompleted
}

// MatchesSearch checks order reference, customer and tracking number.
func (d Delivery) MatchesSearch(search string) bool {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return true
	}

	return strings.Contains(strings.ToLower(d.OrderRef), needle) ||
		strings.Contains(strconv.FormatInt(d.CustomerID, 10), needle) ||
		strings.Contains(strings.ToLower(d.TrackingNumber), needle)
}
