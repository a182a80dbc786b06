package models

import (
	"strings"

	"gorm.io/gorm"
)

// Supplier is an external source of offers. Names are unique case-insensitively.
type Supplier struct {
	BaseModel
	Name       string `json:"name" gorm:"size:100;not null"`
	NameKey    string `json:"-" gorm:"size:100;not null;uniqueIndex"`
	WebsiteURL string `json:"website_url" gorm:"size:300"`
	HasAPI     bool   `json:"has_api" gorm:"not null;default:false"`
}

// SupplierNameKey normalises a supplier name for case-insensitive lookup
func SupplierNameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// BeforeSave keeps NameKey in sync with Name
func (s *Supplier) BeforeSave(tx *gorm.DB) error {
	s.NameKey = SupplierNameKey(s.Name)
	return nil
}
