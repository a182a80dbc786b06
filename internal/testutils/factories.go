package testutils

import (
	"fmt"
	"sync/atomic"

	"parts-inventory-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var factorySeq atomic.Int64

func nextSeq() int64 {
	return factorySeq.Add(1)
}

// ComponentFactory provides methods to create test Component data
type ComponentFactory struct{}

// NewComponentFactory creates a new ComponentFactory
func NewComponentFactory() *ComponentFactory {
	return &ComponentFactory{}
}

// Create creates a test Component with default values. The ID is left empty so the
// database assigns a time-ordered one.
func (f *ComponentFactory) Create() *models.Component {
	n := nextSeq()
	return &models.Component{
		Name:                   fmt.Sprintf("Resistor 10k #%d", n),
		Manufacturer:           "Yageo",
		ManufacturerPartNumber: fmt.Sprintf("RC0603FR-0710K-%d", n),
		Package:                "0603",
		Quantity:               0,
		ReorderPoint:           models.DefaultReorderPoint,
	}
}

// WithQuantity creates a component with the given on-hand quantity
func (f *ComponentFactory) WithQuantity(quantity int) *models.Component {
	c := f.Create()
	c.Quantity = quantity
	return c
}

// WithName creates a component with a custom name
func (f *ComponentFactory) WithName(name string) *models.Component {
	c := f.Create()
	c.Name = name
	return c
}

// AtLocation creates a component stored at location
func (f *ComponentFactory) AtLocation(location *models.Location) *models.Component {
	c := f.Create()
	c.LocationID = &location.ID
	return c
}

// LocationFactory provides methods to create test Location data
type LocationFactory struct{}

// NewLocationFactory creates a new LocationFactory
func NewLocationFactory() *LocationFactory {
	return &LocationFactory{}
}

// Create creates a box in a rack of its own
func (f *LocationFactory) Create() *models.Location {
	return f.Slot(fmt.Sprintf("R%d", nextSeq()), "1", "1")
}

// Slot creates a location with the given rack, drawer and box
func (f *LocationFactory) Slot(rack, drawer, box string) *models.Location {
	return &models.Location{Rack: rack, Drawer: drawer, Box: box}
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	return &models.Project{
		Name:        fmt.Sprintf("Test Project %d", nextSeq()),
		Description: "A test project for testing purposes",
		Status:      models.ProjectStatusPlanning,
	}
}

// WithName creates a project with a custom name
func (f *ProjectFactory) WithName(name string) *models.Project {
	p := f.Create()
	p.Name = name
	return p
}

// ProjectItemFactory provides methods to create test ProjectItem data
type ProjectItemFactory struct{}

// NewProjectItemFactory creates a new ProjectItemFactory
func NewProjectItemFactory() *ProjectItemFactory {
	return &ProjectItemFactory{}
}

// ForComponent creates a line requiring quantity pieces of a stocked component
func (f *ProjectItemFactory) ForComponent(projectID, componentID uuid.UUID, quantity int) *models.ProjectItem {
	id := componentID
	return &models.ProjectItem{
		ProjectID:        projectID,
		ComponentID:      &id,
		QuantityRequired: quantity,
		Type:             models.ItemTypePart,
	}
}

// Custom creates a free-text line
func (f *ProjectItemFactory) Custom(projectID uuid.UUID, name string, quantity int) *models.ProjectItem {
	return &models.ProjectItem{
		ProjectID:        projectID,
		CustomName:       name,
		QuantityRequired: quantity,
		QuantityToBuy:    quantity,
		Type:             models.ItemTypeMaterial,
	}
}

// SupplierFactory provides methods to create test Supplier data
type SupplierFactory struct{}

// NewSupplierFactory creates a new SupplierFactory
func NewSupplierFactory() *SupplierFactory {
	return &SupplierFactory{}
}

// Create creates a test Supplier with default values
func (f *SupplierFactory) Create() *models.Supplier {
	return f.WithName(fmt.Sprintf("Supplier %d", nextSeq()))
}

// WithName creates a supplier with a custom name
func (f *SupplierFactory) WithName(name string) *models.Supplier {
	return &models.Supplier{
		Name:       name,
		WebsiteURL: "https://example.com",
		HasAPI:     true,
	}
}

// SupplierOfferFactory provides methods to create test SupplierOffer data
type SupplierOfferFactory struct{}

// NewSupplierOfferFactory creates a new SupplierOfferFactory
func NewSupplierOfferFactory() *SupplierOfferFactory {
	return &SupplierOfferFactory{}
}

// Create creates an in-stock offer for an item at the given unit price
func (f *SupplierOfferFactory) Create(itemID, supplierID uuid.UUID, price string) *models.SupplierOffer {
	lead := 3
	return &models.SupplierOffer{
		ProjectItemID:      itemID,
		SupplierID:         supplierID,
		SupplierPartNumber: fmt.Sprintf("SKU-%d", nextSeq()),
		Description:        "test offer",
		UnitPrice:          decimal.RequireFromString(price),
		Currency:           "CZK",
		InStock:            true,
		MinOrderQty:        1,
		LeadTimeDays:       &lead,
	}
}

// FactorySet contains all factories for easy access
type FactorySet struct {
	Component     *ComponentFactory
	Location      *LocationFactory
	Project       *ProjectFactory
	ProjectItem   *ProjectItemFactory
	Supplier      *SupplierFactory
	SupplierOffer *SupplierOfferFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Component:     NewComponentFactory(),
		Location:      NewLocationFactory(),
		Project:       NewProjectFactory(),
		ProjectItem:   NewProjectItemFactory(),
		Supplier:      NewSupplierFactory(),
		SupplierOffer: NewSupplierOfferFactory(),
	}
}
