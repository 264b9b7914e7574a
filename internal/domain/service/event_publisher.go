package service

import (
	"context"
)

// Order event kinds.
const (
	OrderEventPlaced        = "order.placed"
	OrderEventStatusChanged = "order.status_changed"
)

// OrderEvent is published whenever an order is placed or its shipment status changes.
type OrderEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	Kind           string `json:"kind"`
	OrderID        string `json:"order_id"`
	OwnerID        string `json:"owner_id"`
	Amount         int64  `json:"amount"`
	TotalQuantity  int    `json:"total_quantity"`
	ShipmentStatus string `json:"shipment_status"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
