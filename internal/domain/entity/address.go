// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a shipping destination owned by a user.
type Address struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the address.
	OwnerID   uuid.UUID `json:"owner_id"`   // The user that owns this address.
	Fullname  string    `json:"fullname"`   // The recipient's full name.
	Address1  string    `json:"address1"`   // The primary street line.
	Address2  string    `json:"address2"`   // The secondary street line, optional.
	City      string    `json:"city"`       // The city.
	ZipCode   string    `json:"zip_code"`   // The postal code.
	Phone     string    `json:"phone"`      // The recipient's phone number.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this address was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
