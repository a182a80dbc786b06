package models

import "time"

// Project groups requirement lines. Once ConsumedAt is set the project is locked.
type Project struct {
	BaseModel
	Name           string        `json:"name" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Description    string        `json:"description" gorm:"type:text"`
	Status         ProjectStatus `json:"status" gorm:"type:varchar(20);not null;default:'planning'"`
	EstimatedHours float64       `json:"estimated_hours" gorm:"not null;default:0"`
	RealHours      float64       `json:"real_hours" gorm:"not null;default:0"`
	OrderedAt      *time.Time    `json:"ordered_at"`
	ReceivedAt     *time.Time    `json:"received_at"`
	ConsumedAt     *time.Time    `json:"consumed_at" gorm:"index"`
}

// IsLocked reports whether stock has been consumed for the project
func (p *Project) IsLocked() bool {
	return p.ConsumedAt != nil
}
