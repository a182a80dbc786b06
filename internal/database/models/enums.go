package models

// ProjectStatus is the lifecycle status of a project
type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusOrdered   ProjectStatus = "ordered"
	ProjectStatusReceived  ProjectStatus = "received"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// ItemType tags a requirement line; it does not affect allocation
type ItemType string

const (
	ItemTypePart     ItemType = "part"
	ItemTypeMaterial ItemType = "material"
	ItemTypeTool     ItemType = "tool"
	ItemTypeOther    ItemType = "other"
)

// TransactionType is the kind of stock movement recorded in the ledger
type TransactionType string

const (
	TransactionTypeAdd    TransactionType = "add"
	TransactionTypeUse    TransactionType = "use"
	TransactionTypeAdjust TransactionType = "adjust"
)

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusOrdered, ProjectStatusReceived, ProjectStatusCompleted:
		return true
	}
	return false
}

// IsValid checks if the ItemType is valid
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypePart, ItemTypeMaterial, ItemTypeTool, ItemTypeOther:
		return true
	}
	return false
}

// IsValid checks if the TransactionType is valid
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeAdd, TransactionTypeUse, TransactionTypeAdjust:
		return true
	}
	return false
}
