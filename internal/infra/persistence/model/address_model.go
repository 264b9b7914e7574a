package model

import (
	"time"

	"github.com/google/uuid"

	"ecomshop/internal/domain/entity"
)

// AddressModel mirrors the 'addresses' table.
type AddressModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Fullname  string    `gorm:"type:varchar(100);not null"`
	Address1  string    `gorm:"type:varchar(255);not null"`
	Address2  string    `gorm:"type:varchar(255)"`
	City      string    `gorm:"type:varchar(100);not null"`
	ZipCode   string    `gorm:"type:varchar(20);not null"`
	Phone     string    `gorm:"type:varchar(30);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}

// ToDomain maps the persistence model back to a pure domain entity.
func (m *AddressModel) ToDomain() *entity.Address {
	return &entity.Address{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Fullname:  m.Fullname,
		Address1:  m.Address1,
		Address2:  m.Address2,
		City:      m.City,
		ZipCode:   m.ZipCode,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromAddressDomain maps a domain entity to a persistence model.
func FromAddressDomain(address *entity.Address) *AddressModel {
	return &AddressModel{
		ID:        address.ID,
		OwnerID:   address.OwnerID,
		Fullname:  address.Fullname,
		Address1:  address.Address1,
		Address2:  address.Address2,
		City:      address.City,
		ZipCode:   address.ZipCode,
		Phone:     address.Phone,
		CreatedAt: address.CreatedAt,
		UpdatedAt: address.UpdatedAt,
	}
}
