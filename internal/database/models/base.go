package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides common fields for all models with UUID primary keys.
// IDs are UUIDv7, so ordering by ID follows insertion order.
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		id, err := NewID()
		if err != nil {
			return err
		}
		base.ID = id
	}
	return nil
}

// NewID returns a new time-ordered identifier
func NewID() (uuid.UUID, error) {
	return uuid.NewV7()
}
