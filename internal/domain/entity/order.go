// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShipmentStatus tracks an order through fulfilment.
type ShipmentStatus string

const (
	ShipmentNew       ShipmentStatus = "New"
	ShipmentPreparing ShipmentStatus = "Preparing"
	ShipmentShipped   ShipmentStatus = "Shipped"
	ShipmentDelivered ShipmentStatus = "Delivered"
	ShipmentCanceled  ShipmentStatus = "Canceled"
)

// IsValid checks if the ShipmentStatus is a valid value.
func (s ShipmentStatus) IsValid() bool {
	switch s {
	case ShipmentNew, ShipmentPreparing, ShipmentShipped, ShipmentDelivered, ShipmentCanceled:
		return true
	default:
		return false
	}
}

// Order is an immutable snapshot of a cart taken at checkout. Product titles,
// prices and the shipping address are copied so later catalog edits don't
// rewrite history.
type Order struct {
	ID              uuid.UUID      `json:"id"`              // The unique ID for this order.
	OwnerID         uuid.UUID      `json:"owner_id"`        // The user that placed the order.
	Amount          int64          `json:"amount"`          // The charged amount in cents.
	TotalQuantity   int            `json:"total_quantity"`  // Units across all items.
	PaymentIntentID string         `json:"-"`               // The payment intent that paid for this order.
	ShipmentStatus  ShipmentStatus `json:"shipment_status"` // Fulfilment progress, starts at New.
	Fullname        string         `json:"fullname"`        // Shipping snapshot: recipient name.
	Address1        string         `json:"address1"`        // Shipping snapshot: primary street line.
	Address2        string         `json:"address2"`        // Shipping snapshot: secondary street line.
	City            string         `json:"city"`            // Shipping snapshot: city.
	ZipCode         string         `json:"zip_code"`        // Shipping snapshot: postal code.
	Phone           string         `json:"phone"`           // Shipping snapshot: phone number.
	Items           []OrderItem    `json:"items"`           // The purchased lines.
	CreatedAt       time.Time      `json:"created_at"`      // Timestamp of when the order was placed.
	UpdatedAt       time.Time      `json:"updated_at"`      // Timestamp of the last status change.
}

// OrderItem is a purchased product line, snapshotted at checkout.
type OrderItem struct {
	ID        uuid.UUID `json:"id"`         // The unique ID for this order line.
	OrderID   uuid.UUID `json:"order_id"`   // Links this line to its order.
	ProductID uuid.UUID `json:"product_id"` // The product that was purchased.
	Title     string    `json:"title"`      // The product title at purchase time.
	Price     int64     `json:"price"`      // The unit price in cents at purchase time.
	Quantity  int       `json:"quantity"`   // Units purchased.
}
