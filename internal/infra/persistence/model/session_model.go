package model

import (
	"time"

	"github.com/google/uuid"

	"ecomshop/internal/domain/entity"
)

// SessionModel mirrors the 'sessions' table. One row per login; token claims
// reference the row by ID.
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// ToDomain maps the persistence model back to a pure domain entity.
func (m *SessionModel) ToDomain() *entity.Session {
	return &entity.Session{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		CreatedAt: m.CreatedAt,
	}
}

// FromSessionDomain maps a domain entity to a persistence model.
func FromSessionDomain(session *entity.Session) *SessionModel {
	return &SessionModel{
		ID:        session.ID,
		OwnerID:   session.OwnerID,
		CreatedAt: session.CreatedAt,
	}
}
