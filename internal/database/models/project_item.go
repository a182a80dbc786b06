package models

import "github.com/google/uuid"

// ProjectItem is one requirement line of a project. Exactly one of ComponentID and
// CustomName is set. QuantityFromStock and QuantityToBuy are derived by the allocation engine.
type ProjectItem struct {
	BaseModel
	ProjectID         uuid.UUID  `json:"project_id" gorm:"type:uuid;not null;index"`
	ComponentID       *uuid.UUID `json:"component_id,omitempty" gorm:"type:uuid;index"`
	CustomName        string     `json:"custom_name,omitempty" gorm:"size:200"`
	QuantityRequired  int        `json:"quantity_required" gorm:"not null"`
	QuantityFromStock int        `json:"quantity_from_stock" gorm:"not null;default:0"`
	QuantityToBuy     int        `json:"quantity_to_buy" gorm:"not null;default:0"`
	IsFulfilled       bool       `json:"is_fulfilled" gorm:"not null;default:false"`
	Type              ItemType   `json:"type" gorm:"type:varchar(20);not null;default:'part'"`
}

// HasComponent reports whether the line references a stocked component
func (i *ProjectItem) HasComponent() bool {
	return i.ComponentID != nil && *i.ComponentID != uuid.Nil
}
