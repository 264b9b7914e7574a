package model

import (
	"time"

	"github.com/google/uuid"

	"ecomshop/internal/domain/entity"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username           string    `gorm:"type:varchar(100);not null"`
	Email              string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash       string    `gorm:"type:varchar(255);not null"`
	Role               string    `gorm:"type:varchar(20);not null;default:'CLIENT'"`
	ResetPasswordToken *string   `gorm:"type:varchar(255);index"`
	ResetTokenExpiry   *time.Time
	StripeCustomerID   *string `gorm:"type:varchar(255)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Sessions  []SessionModel `gorm:"foreignKey:OwnerID"`
	Addresses []AddressModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToDomain maps the persistence model back to a pure domain entity.
func (m *UserModel) ToDomain() *entity.User {
	return &entity.User{
		ID:                 m.ID,
		Username:           m.Username,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		Role:               entity.Role(m.Role),
		ResetPasswordToken: m.ResetPasswordToken,
		ResetTokenExpiry:   m.ResetTokenExpiry,
		StripeCustomerID:   m.StripeCustomerID,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// FromUserDomain maps a domain entity to a persistence model.
func FromUserDomain(user *entity.User) *UserModel {
	return &UserModel{
		ID:                 user.ID,
		Username:           user.Username,
		Email:              user.Email,
		PasswordHash:       user.PasswordHash,
		Role:               user.Role.String(),
		ResetPasswordToken: user.ResetPasswordToken,
		ResetTokenExpiry:   user.ResetTokenExpiry,
		StripeCustomerID:   user.StripeCustomerID,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}
}
