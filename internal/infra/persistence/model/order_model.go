package model

import (
	"time"

	"github.com/google/uuid"

	"ecomshop/internal/domain/entity"
)

// OrderModel mirrors the 'orders' table. Shipping fields are copied from the
// selected address at checkout so later edits don't rewrite order history.
type OrderModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount          int64     `gorm:"not null"`
	TotalQuantity   int       `gorm:"not null"`
	PaymentIntentID string    `gorm:"type:varchar(255);not null"`
	ShipmentStatus  string    `gorm:"type:varchar(20);not null;default:'New'"`
	Fullname        string    `gorm:"type:varchar(100);not null"`
	Address1        string    `gorm:"type:varchar(255);not null"`
	Address2        string    `gorm:"type:varchar(255)"`
	City            string    `gorm:"type:varchar(100);not null"`
	ZipCode         string    `gorm:"type:varchar(20);not null"`
	Phone           string    `gorm:"type:varchar(30);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain maps the persistence model back to a pure domain entity.
func (m *OrderModel) ToDomain() *entity.Order {
	order := &entity.Order{
		ID:              m.ID,
		OwnerID:         m.OwnerID,
		Amount:          m.Amount,
		TotalQuantity:   m.TotalQuantity,
		PaymentIntentID: m.PaymentIntentID,
		ShipmentStatus:  entity.ShipmentStatus(m.ShipmentStatus),
		Fullname:        m.Fullname,
		Address1:        m.Address1,
		Address2:        m.Address2,
		City:            m.City,
		ZipCode:         m.ZipCode,
		Phone:           m.Phone,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	for i := range m.Items {
		order.Items = append(order.Items, *m.Items[i].ToDomain())
	}

	return order
}

// FromOrderDomain maps a domain entity, items included, to a persistence model.
func FromOrderDomain(order *entity.Order) *OrderModel {
	orderM := &OrderModel{
		ID:              order.ID,
		OwnerID:         order.OwnerID,
		Amount:          order.Amount,
		TotalQuantity:   order.TotalQuantity,
		PaymentIntentID: order.PaymentIntentID,
		ShipmentStatus:  string(order.ShipmentStatus),
		Fullname:        order.Fullname,
		Address1:        order.Address1,
		Address2:        order.Address2,
		City:            order.City,
		ZipCode:         order.ZipCode,
		Phone:           order.Phone,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
	for i := range order.Items {
		orderM.Items = append(orderM.Items, *FromOrderItemDomain(&order.Items[i]))
	}

	return orderM
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Price     int64     `gorm:"not null"`
	Quantity  int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain maps the persistence model back to a pure domain entity.
func (m *OrderItemModel) ToDomain() *entity.OrderItem {
	return &entity.OrderItem{
		ID:        m.ID,
		OrderID:   m.OrderID,
		ProductID: m.ProductID,
		Title:     m.Title,
		Price:     m.Price,
		Quantity:  m.Quantity,
	}
}

// FromOrderItemDomain maps a domain entity to a persistence model.
func FromOrderItemDomain(item *entity.OrderItem) *OrderItemModel {
	return &OrderItemModel{
		ID:        item.ID,
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		Title:     item.Title,
		Price:     item.Price,
		Quantity:  item.Quantity,
	}
}
