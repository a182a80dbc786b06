package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryTransaction is one append-only ledger row. Positive DeltaQuantity is a
// replenishment, negative a consumption. ProjectID is cleared when the project is deleted.
type InventoryTransaction struct {
	ID            uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	ComponentID   uuid.UUID       `json:"component_id" gorm:"type:uuid;not null;index"`
	DeltaQuantity int             `json:"delta_quantity" gorm:"not null"`
	Type          TransactionType `json:"type" gorm:"type:varchar(10);not null"`
	ProjectID     *uuid.UUID      `json:"project_id,omitempty" gorm:"type:uuid;index"`
	Note          string          `json:"note" gorm:"size:200"`
	CreatedAt     time.Time       `json:"created_at" gorm:"index"`
}

// BeforeCreate assigns the identifier
func (t *InventoryTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		id, err := NewID()
		if err != nil {
			return err
		}
		t.ID = id
	}
	return nil
}

// BeforeUpdate rejects in-place modification: ledger rows are append-only
// except for clearing the project reference.
func (t *InventoryTransaction) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("ComponentID", "DeltaQuantity", "Type", "Note", "CreatedAt") {
		return ErrLedgerImmutable
	}
	return nil
}
