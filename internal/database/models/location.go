package models

import "strings"

// Location is a storage slot addressed as rack, drawer and box. Drawer and box are optional;
// a slot is unique over all three parts.
type Location struct {
	BaseModel
	Rack   string `json:"rack" gorm:"size:50;not null;uniqueIndex:idx_locations_slot"`
	Drawer string `json:"drawer" gorm:"size:50;not null;default:'';uniqueIndex:idx_locations_slot"`
	Box    string `json:"box" gorm:"size:50;not null;default:'';uniqueIndex:idx_locations_slot"`
}

// DisplayName renders the slot as "rack-drawer-box", leaving out empty parts
func (l *Location) DisplayName() string {
	parts := []string{l.Rack}
	if l.Drawer != "" {
		parts = append(parts, l.Drawer)
	}
	if l.Box != "" {
		parts = append(parts, l.Box)
	}
	return strings.Join(parts, "-")
}
