package entity

import (
	"strconv"
	"strings"
	"time"
)

// OrderStatus is the order lifecycle status accepted by the API.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderCancelled  OrderStatus = "cancel"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
)

// OrderStatuses lists the statuses offered in filters and status menus.
var OrderStatuses = []OrderStatus{OrderPending, OrderProcessing, OrderCompleted, OrderCancelled}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderCancelled, OrderProcessing, OrderCompleted:
		return true
	}

	return false
}

// DeliveryMethod is how an order reaches the customer.
type DeliveryMethod string

const (
	DeliveryStandard DeliveryMethod = "standard"
	DeliveryExpress  DeliveryMethod = "express"
	DeliveryPickup   DeliveryMethod = "pickup"
)

// Order mirrors the admin orders API representation.
type Order struct {
	ID              int64          `json:"id"`
	User            int64          `json:"user"`
	ShippingAddress string         `json:"shipping_address"`
	DeliveryMethod  DeliveryMethod `json:"delivery_method"`
	PaymentMethod   string         `json:"payment_method"`
	Status          OrderStatus    `json:"status"`
	Subtotal        Amount         `json:"subtotal"`
	ShippingCost    Amount         `json:"shipping_cost"`
	Total           Amount         `json:"total"`
	Notes           string         `json:"notes"`
	CreatedAt       time.Time      `json:"created_at"`
}

// Reference is the human-facing order number.
func (o Order) Reference() string {
	return "ORD-" + strconv.FormatInt(o.ID, 10)
}

// OrderQuery is the local search and status filter of the orders screen.
type OrderQuery struct {
	Search string      `query:"q"`
	Status OrderStatus `query:"status"`
	Page   int         `query:"page"`
}

// Matches applies the search text and status filter.
func (q OrderQuery) Matches(o Order) bool {
	if q.Status != "" && o.Status != q.Status {
		return false
	}

	needle := strings.ToLower(strings.TrimSpace(q.Search))
	if needle == "" {
		return true
	}

	return strings.Contains(strings.ToLower(o.Reference()), needle) ||
		strings.Contains(strconv.FormatInt(o.ID, 10), needle) ||
		strings.Contains(strconv.FormatInt(o.User, 10), needle) ||
		strings.Contains(strings.ToLower(o.ShippingAddress), needle) ||
		strings.Contains(strings.ToLower(o.Notes), needle)
}

// ApplyOrderStatus returns a copy of orders where only the order with the
// given id carries the new status. The input slice is not modified.
func ApplyOrderStatus(orders []Order, id int64, status OrderStatus) []Order {
	out := make([]Order, len(orders))
	copy(out, orders)

	for i := range out {
		if out[i].ID == id {
			out[i].Status = status
		}
	}

	return out
}

// FindOrder returns the order with the given id.
func FindOrder(orders []Order, id int64) (Order, bool) {
	for _, o := range orders {
		if o.ID == id {
			return o, true
		}
	}

	return Order{}, false
}
