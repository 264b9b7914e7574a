package model

import (
	"time"

	"github.com/google/uuid"

	"ecomshop/internal/domain/entity"
)

// ProductModel mirrors the 'products' table. Prices are stored in cents.
type ProductModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text"`
	Price         int64     `gorm:"not null"`
	Category      string    `gorm:"type:varchar(50);not null;index"`
	Inventory     int       `gorm:"not null;default:0"`
	ImageURL      string    `gorm:"type:text"`
	ImageFileName string    `gorm:"type:varchar(255)"`
	ImagePublicID string    `gorm:"type:varchar(255)"`
	CreatorID     uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain maps the persistence model back to a pure domain entity.
func (m *ProductModel) ToDomain() *entity.Product {
	return &entity.Product{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		Price:         m.Price,
		Category:      entity.Category(m.Category),
		Inventory:     m.Inventory,
		ImageURL:      m.ImageURL,
		ImageFileName: m.ImageFileName,
		ImagePublicID: m.ImagePublicID,
		CreatorID:     m.CreatorID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromProductDomain maps a domain entity to a persistence model.
func FromProductDomain(product *entity.Product) *ProductModel {
	return &ProductModel{
		ID:            product.ID,
		Title:         product.Title,
		Description:   product.Description,
		Price:         product.Price,
		Category:      string(product.Category),
		Inventory:     product.Inventory,
		ImageURL:      product.ImageURL,
		ImageFileName: product.ImageFileName,
		ImagePublicID: product.ImagePublicID,
		CreatorID:     product.CreatorID,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}
