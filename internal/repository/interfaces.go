package repository

import (
	"time"

	"parts-inventory-backend/internal/database/models"

	"github.com/google/uuid"
)

// ComponentRepositoryInterface defines the interface for component repository operations.
// Quantity is never written through Update; use ApplyDelta together with a ledger row.
type ComponentRepositoryInterface interface {
	Create(component *models.Component) error
	GetByID(id uuid.UUID) (*models.Component, error)
	GetByIDs(ids []uuid.UUID) ([]models.Component, error)
	GetByIDsUnscoped(ids []uuid.UUID) ([]models.Component, error)
	GetAll(limit, offset int) ([]models.Component, int64, error)
	Search(query string, limit, offset int) ([]models.Component, int64, error)
	List(filter ComponentFilter, limit, offset int) ([]models.Component, int64, error)
	GetLowStock() ([]models.Component, error)
	Totals() (count int64, quantity int64, err error)
	Update(component *models.Component) error
	ApplyDelta(id uuid.UUID, delta int) (bool, error)
	ClearLocation(locationID uuid.UUID) (int64, error)
	Delete(id uuid.UUID) error
}

// ComponentFilter narrows component listings. Empty fields do not filter.
type ComponentFilter struct {
	Query      string
	LocationID *uuid.UUID
	Rack       string
	Drawer     string
	Box        string
}

// LocationRepositoryInterface defines the interface for storage location operations
type LocationRepositoryInterface interface {
	Create(location *models.Location) error
	GetByID(id uuid.UUID) (*models.Location, error)
	GetBySlot(rack, drawer, box string) (*models.Location, error)
	List(rack, drawer string) ([]models.Location, error)
	Racks() ([]string, error)
	Drawers(rack string) ([]string, error)
	CountComponents(id uuid.UUID) (int64, error)
	Delete(id uuid.UUID) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetByIDForUpdate(id uuid.UUID) (*models.Project, error)
	GetByIDs(ids []uuid.UUID) ([]models.Project, error)
	GetAll(limit, offset int) ([]models.Project, int64, error)
	Update(project *models.Project) error
	MarkConsumed(id uuid.UUID, at time.Time) (bool, error)
	Delete(id uuid.UUID) error
}

// ProjectItemRepositoryInterface defines the interface for project item repository operations
type ProjectItemRepositoryInterface interface {
	Create(item *models.ProjectItem) error
	GetByID(id uuid.UUID) (*models.ProjectItem, error)
	GetByProjectID(projectID uuid.UUID) ([]models.ProjectItem, error)
	Update(item *models.ProjectItem) error
	UpdateAllocation(id uuid.UUID, fromStock, toBuy int) error
	Delete(id uuid.UUID) error
	DeleteByProjectID(projectID uuid.UUID) error
	CountOpenByComponentID(componentID uuid.UUID) (int64, error)
	SumReservedByComponent(componentIDs []uuid.UUID, excludeProjectID uuid.UUID) (map[uuid.UUID]int, error)
}

// SupplierRepositoryInterface defines the interface for supplier repository operations
type SupplierRepositoryInterface interface {
	Create(supplier *models.Supplier) error
	CreateIfNotExists(supplier *models.Supplier) error
	GetByID(id uuid.UUID) (*models.Supplier, error)
	GetByName(name string) (*models.Supplier, error)
	GetByIDs(ids []uuid.UUID) ([]models.Supplier, error)
	GetAll() ([]models.Supplier, error)
}

// SupplierOfferRepositoryInterface defines the interface for supplier offer repository operations
type SupplierOfferRepositoryInterface interface {
	CreateBatch(offers []models.SupplierOffer) error
	GetByID(id uuid.UUID) (*models.SupplierOffer, error)
	GetByProjectID(projectID uuid.UUID) ([]models.SupplierOffer, error)
	GetSelectedByProjectID(projectID uuid.UUID) ([]models.SupplierOffer, error)
	Select(itemID, offerID uuid.UUID) error
	DeleteByProjectID(projectID uuid.UUID) error
	DeleteByItemID(itemID uuid.UUID) error
}

// TransactionFilter narrows ListTransactions. Zero values mean "no restriction".
type TransactionFilter struct {
	ComponentID *uuid.UUID
	ProjectID   *uuid.UUID
	Type        models.TransactionType
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}

// InventoryTransactionRepositoryInterface defines the ledger operations. The ledger is
// append-only: the only mutation besides Create is detaching a deleted project.
type InventoryTransactionRepositoryInterface interface {
	Create(transaction *models.InventoryTransaction) error
	GetByComponentID(componentID uuid.UUID, limit int) ([]models.InventoryTransaction, error)
	List(filter TransactionFilter) ([]models.InventoryTransaction, int64, error)
	GetDeductionsSince(since time.Time) ([]models.InventoryTransaction, error)
	DetachProject(projectID uuid.UUID) error
}
