package model

import (
	"time"

	"github.com/google/uuid"

	"ecomshop/internal/domain/entity"
)

// CartModel mirrors the 'carts' table. One cart per user.
type CartModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	AddressID       *uuid.UUID `gorm:"type:uuid"`
	PaymentIntentID *string    `gorm:"type:varchar(255)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []CartItemModel `gorm:"foreignKey:CartID"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// ToDomain maps the persistence model back to a pure domain entity.
func (m *CartModel) ToDomain() *entity.Cart {
	cart := &entity.Cart{
		ID:              m.ID,
		OwnerID:         m.OwnerID,
		AddressID:       m.AddressID,
		PaymentIntentID: m.PaymentIntentID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	for i := range m.Items {
		cart.Items = append(cart.Items, *m.Items[i].ToDomain())
	}

	return cart
}

// FromCartDomain maps a domain entity to a persistence model, items excluded.
func FromCartDomain(cart *entity.Cart) *CartModel {
	return &CartModel{
		ID:              cart.ID,
		OwnerID:         cart.OwnerID,
		AddressID:       cart.AddressID,
		PaymentIntentID: cart.PaymentIntentID,
		CreatedAt:       cart.CreatedAt,
		UpdatedAt:       cart.UpdatedAt,
	}
}

// CartItemModel mirrors the 'cart_items' table, unique per (cart, product).
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CartID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product"`
	Quantity  int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

// ToDomain maps the persistence model back to a pure domain entity.
func (m *CartItemModel) ToDomain() *entity.CartItem {
	item := &entity.CartItem{
		ID:        m.ID,
		CartID:    m.CartID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Product != nil {
		item.Product = m.Product.ToDomain()
	}

	return item
}

// FromCartItemDomain maps a domain entity to a persistence model.
func FromCartItemDomain(item *entity.CartItem) *CartItemModel {
	return &CartItemModel{
		ID:        item.ID,
		CartID:    item.CartID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
