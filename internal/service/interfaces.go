package service

import (
	"context"

	"parts-inventory-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ComponentServiceInterface defines the interface for component service
type ComponentServiceInterface interface {
	Create(ctx context.Context, req *CreateComponentRequest) (*ComponentResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ComponentResponse, error)
	List(ctx context.Context, filter repository.ComponentFilter, limit, offset int) (*ComponentListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateComponentRequest) (*ComponentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddStock(ctx context.Context, id uuid.UUID, req *StockChangeRequest) (*ComponentResponse, error)
	UseStock(ctx context.Context, id uuid.UUID, req *StockChangeRequest) (*ComponentResponse, error)
	AdjustStock(ctx context.Context, id uuid.UUID, req *AdjustStockRequest) (*ComponentResponse, error)
}

// LocationServiceInterface defines the interface for storage location management
type LocationServiceInterface interface {
	Create(ctx context.Context, req *CreateLocationRequest) (*LocationResponse, error)
	List(ctx context.Context, rack, drawer string) ([]LocationResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*LocationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Racks(ctx context.Context) ([]string, error)
	Drawers(ctx context.Context, rack string) ([]string, error)
	Boxes(ctx context.Context, rack, drawer string) ([]BoxOption, error)
}

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	Create(ctx context.Context, req *CreateProjectRequest) (*ProjectResponse, error)
	List(ctx context.Context, limit, offset int) (*ProjectListResponse, error)
	GetDetails(ctx context.Context, id uuid.UUID) (*ProjectDetailResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddItem(ctx context.Context, projectID uuid.UUID, req *AddItemRequest) (*ProjectItemResponse, error)
	UpdateItem(ctx context.Context, projectID, itemID uuid.UUID, req *UpdateItemRequest) (*ProjectItemResponse, error)
	DeleteItem(ctx context.Context, projectID, itemID uuid.UUID) error
	SetItemFulfilled(ctx context.Context, projectID, itemID uuid.UUID, fulfilled bool) (*ProjectItemResponse, error)
}

// OfferAggregatorInterface defines the interface for the supplier offer search
type OfferAggregatorInterface interface {
	SearchOffers(ctx context.Context, projectID uuid.UUID) (*AggregationResult, error)
}

// OfferServiceInterface defines the interface for offer selection
type OfferServiceInterface interface {
	ListOffers(ctx context.Context, projectID uuid.UUID) ([]OfferResponse, error)
	SelectOffer(ctx context.Context, offerID uuid.UUID) (*OfferResponse, error)
	AutoSelectCheapest(ctx context.Context, projectID uuid.UUID) (*AutoSelectResult, error)
}

// ConsumptionServiceInterface defines the interface for committing project stock usage
type ConsumptionServiceInterface interface {
	ConsumeFromStock(ctx context.Context, projectID uuid.UUID) (*ConsumptionResult, error)
}

// ExportServiceInterface defines the interface for purchase order export
type ExportServiceInterface interface {
	OrderLines(ctx context.Context, projectID uuid.UUID) ([]OrderLine, error)
	ExportOrderCSV(ctx context.Context, projectID uuid.UUID, withBOM bool) ([]byte, error)
	ExportOrderXLSX(ctx context.Context, projectID uuid.UUID) ([]byte, error)
}

// ReportServiceInterface defines the interface for stock and ledger reports
type ReportServiceInterface interface {
	LowStock(ctx context.Context, filter string) ([]LowStockEntry, error)
	Summary(ctx context.Context) (*InventorySummary, error)
	Consumption(ctx context.Context, days int, projectsOnly bool) (*ConsumptionReport, error)
	TransactionHistory(ctx context.Context, componentID uuid.UUID, limit int) ([]TransactionResponse, error)
	ListTransactions(ctx context.Context, filter repository.TransactionFilter) (*TransactionListResponse, error)
}

var (
	_ ComponentServiceInterface   = (*ComponentService)(nil)
	_ LocationServiceInterface    = (*LocationService)(nil)
	_ ProjectServiceInterface     = (*ProjectService)(nil)
	_ OfferAggregatorInterface    = (*OfferAggregator)(nil)
	_ OfferServiceInterface       = (*OfferService)(nil)
	_ ConsumptionServiceInterface = (*ConsumptionService)(nil)
	_ ExportServiceInterface      = (*ExportService)(nil)
	_ ReportServiceInterface      = (*ReportService)(nil)
)
