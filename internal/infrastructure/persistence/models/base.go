package models

import (
	"time"

	"github.com/cotizador/backend/internal/domain/shared"
)

// BaseModel provides common persistence fields for all models.
type BaseModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToTimestamps converts the model timestamps to the domain value
func (m *BaseModel) ToTimestamps() shared.Timestamps {
	return shared.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

// FromTimestamps populates the model timestamps from the domain value
func (m *BaseModel) FromTimestamps(t shared.Timestamps) {
	m.CreatedAt = t.CreatedAt
	m.UpdatedAt = t.UpdatedAt
}
