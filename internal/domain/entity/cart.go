// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart is the per-user shopping cart. Each user owns at most one cart; it also
// carries the state accumulated during checkout (selected address, payment intent).
type Cart struct {
	ID              uuid.UUID  `json:"id"`         // The unique ID for this cart.
	OwnerID         uuid.UUID  `json:"owner_id"`   // Links this cart to the User it belongs to.
	AddressID       *uuid.UUID `json:"address_id"` // The shipping address selected during checkout, nil before selection.
	PaymentIntentID *string    `json:"-"`          // The payment intent created at checkout, nil before the first checkout.
	Items           []CartItem `json:"items"`      // The items currently in the cart.
	CreatedAt       time.Time  `json:"created_at"` // Timestamp of when this cart was created.
	UpdatedAt       time.Time  `json:"updated_at"` // Timestamp of the last modification.
}

// TotalAmount returns the cart total in cents, computed from the loaded items.
func (c *Cart) TotalAmount() int64 {
	var total int64
	for _, item := range c.Items {
		if item.Product != nil {
			total += item.Product.Price * int64(item.Quantity)
		}
	}

	return total
}

// TotalQuantity returns the number of units across all items.
func (c *Cart) TotalQuantity() int {
	var total int
	for _, item := range c.Items {
		total += item.Quantity
	}

	return total
}

// CartItem is a single product line inside a cart, unique per (cart, product).
type CartItem struct {
	ID        uuid.UUID `json:"id"`         // The unique ID for this cart item.
	CartID    uuid.UUID `json:"cart_id"`    // Links this item to its cart.
	ProductID uuid.UUID `json:"product_id"` // The product this line refers to.
	Quantity  int       `json:"quantity"`   // Units of the product in the cart, always positive.
	Product   *Product  `json:"product"`    // The referenced product, populated on reads.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this item was added.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last quantity change.
}
