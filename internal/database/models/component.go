package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultReorderPoint is used when a component is created without an explicit reorder point
const DefaultReorderPoint = 5

// Component is a stocked electronic part. Quantity is the authoritative on-hand count and
// only changes together with an InventoryTransaction.
type Component struct {
	BaseModel
	Name                   string         `json:"name" gorm:"size:200;not null;index" validate:"required,min=1,max=200"`
	Manufacturer           string         `json:"manufacturer" gorm:"size:200" validate:"max=200"`
	ManufacturerPartNumber string         `json:"manufacturer_part_number" gorm:"size:100;index" validate:"max=100"`
	Package                string         `json:"package" gorm:"size:50" validate:"max=50"`
	LocationID             *uuid.UUID     `json:"location_id,omitempty" gorm:"type:uuid;index"`
	Location               *Location      `json:"location,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL"`
	Quantity               int            `json:"quantity" gorm:"not null;default:0"`
	ReorderPoint           int            `json:"reorder_point" gorm:"not null"`
	DeletedAt              gorm.DeletedAt `json:"-" gorm:"index"`
}

// IsLowStock reports whether the on-hand quantity dropped below the reorder point
func (c *Component) IsLowStock() bool {
	return c.Quantity < c.ReorderPoint
}

// LocationName returns the display name of the storage location, or "" when unassigned
func (c *Component) LocationName() string {
	if c.Location == nil {
		return ""
	}
	return c.Location.DisplayName()
}
