package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupplierOffer is a quote of one supplier for one project item
type SupplierOffer struct {
	BaseModel
	ProjectItemID      uuid.UUID       `json:"project_item_id" gorm:"type:uuid;not null;index"`
	SupplierID         uuid.UUID       `json:"supplier_id" gorm:"type:uuid;not null;index"`
	SupplierPartNumber string          `json:"supplier_part_number" gorm:"size:100"`
	Description        string          `json:"description" gorm:"size:300"`
	UnitPrice          decimal.Decimal `json:"unit_price" gorm:"type:decimal(12,4);not null"`
	Currency           string          `json:"currency" gorm:"size:10;not null"`
	InStock            bool            `json:"in_stock" gorm:"not null;default:false"`
	MinOrderQty        int             `json:"min_order_qty" gorm:"not null;default:1"`
	LeadTimeDays       *int            `json:"lead_time_days,omitempty"`
	ProductURL         string          `json:"product_url,omitempty" gorm:"size:500"`
	IsSelected         bool            `json:"is_selected" gorm:"not null;default:false"`
}
