// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category represents the catalog section a product is listed under.
type Category string

const (
	CategoryClothing    Category = "Clothing"
	CategoryShoes       Category = "Shoes"
	CategoryWatches     Category = "Watches"
	CategoryAccessories Category = "Accessories"
)

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryClothing, CategoryShoes, CategoryWatches, CategoryAccessories:
		return true
	default:
		return false
	}
}

// Product is a single catalog item offered for sale.
type Product struct {
	ID            uuid.UUID `json:"id"`              // The Global Unique Identifier (GUID) for the product.
	Title         string    `json:"title"`           // The product's display title.
	Description   string    `json:"description"`     // A longer description shown on the detail page.
	Price         int64     `json:"price"`           // The unit price in cents.
	Category      Category  `json:"category"`        // The catalog section the product belongs to.
	Inventory     int       `json:"inventory"`       // Units currently in stock.
	ImageURL      string    `json:"image_url"`       // The public URL of the product image.
	ImageFileName string    `json:"image_file_name"` // The original file name of the uploaded image.
	ImagePublicID string    `json:"-"`               // The image host's public ID, used to delete the asset.
	CreatorID     uuid.UUID `json:"creator_id"`      // The admin user who created the product.
	CreatedAt     time.Time `json:"created_at"`      // Timestamp of when this product was created.
	UpdatedAt     time.Time `json:"updated_at"`      // Timestamp of the last modification.
}
