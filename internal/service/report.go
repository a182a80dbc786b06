package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"parts-inventory-backend/internal/database/models"
	apperrors "parts-inventory-backend/internal/errors"
	"parts-inventory-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultConsumptionDays = 30
	maxConsumptionDays     = 365
	consumptionTopN        = 50
	defaultHistoryLimit    = 50
	summaryLowStockTopN    = 10
)

// Low stock filters
const (
	LowStockFilterAll = "all"
	LowStockFilterOut = "out"
	LowStockFilterLow = "low"
)

// ReportService provides read-only views over stock and the inventory ledger
type ReportService struct {
	store *repository.Store
}

// NewReportService creates a new report service
func NewReportService(store *repository.Store) *ReportService {
	return &ReportService{store: store}
}

// LowStockEntry is a component below its reorder point
type LowStockEntry struct {
	ComponentID  uuid.UUID `json:"component_id"`
	Name         string    `json:"name"`
	Manufacturer string    `json:"manufacturer"`
	Location     string    `json:"location"`
	Quantity     int       `json:"quantity"`
	ReorderPoint int       `json:"reorder_point"`
	ToBuy        int       `json:"to_buy"`
}

// InventorySummary is an overview of the whole stock. LowStock holds the emptiest
// components below their reorder point.
type InventorySummary struct {
	TotalComponents int64           `json:"total_components"`
	TotalQuantity   int64           `json:"total_quantity"`
	LowStockCount   int             `json:"low_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`
	LowStock        []LowStockEntry `json:"low_stock"`
}

// ConsumptionEntry aggregates the deductions of one component
type ConsumptionEntry struct {
	ComponentID      uuid.UUID `json:"component_id"`
	Name             string    `json:"name"`
	UsedFromProjects int       `json:"used_from_projects"`
	UsedManual       int       `json:"used_manual"`
	Used             int       `json:"used"`
	UsesCount        int       `json:"uses_count"`
}

// ConsumptionReport lists the most used components in a period
type ConsumptionReport struct {
	Days    int                `json:"days"`
	Since   time.Time          `json:"since"`
	Entries []ConsumptionEntry `json:"entries"`
}

// TransactionResponse represents one ledger row
type TransactionResponse struct {
	ID            uuid.UUID              `json:"id"`
	ComponentID   uuid.UUID              `json:"component_id"`
	DeltaQuantity int                    `json:"delta_quantity"`
	Type          models.TransactionType `json:"type"`
	ProjectID     *uuid.UUID             `json:"project_id,omitempty"`
	ProjectName   string                 `json:"project_name,omitempty"`
	Note          string                 `json:"note"`
	CreatedAt     string                 `json:"created_at"`
}

// TransactionListResponse represents a page of ledger rows
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
}

// LowStock lists components below their reorder point. filter narrows the list to
// components that are out of stock ("out") or low but not empty ("low").
func (s *ReportService) LowStock(ctx context.Context, filter string) ([]LowStockEntry, error) {
	if filter == "" {
		filter = LowStockFilterAll
	}
	if filter != LowStockFilterAll && filter != LowStockFilterOut && filter != LowStockFilterLow {
		return nil, apperrors.NewValidationError("filter", "must be one of: all out low")
	}

	components, err := s.store.WithContext(ctx).Components().GetLowStock()
	if err != nil {
		return nil, fmt.Errorf("failed to get low stock components: %w", err)
	}

	entries := make([]LowStockEntry, 0, len(components))
	for _, c := range components {
		c := c // per-iteration copy (Go 1.22 loop semantics)
		if filter == LowStockFilterOut && c.Quantity > 0 {
			continue
		}
		if filter == LowStockFilterLow && c.Quantity <= 0 {
			continue
		}
		entries = append(entries, toLowStockEntry(&c))
	}
	return entries, nil
}

// Summary counts the components and pieces in stock and how many components need reordering
func (s *ReportService) Summary(ctx context.Context) (*InventorySummary, error) {
	store := s.store.WithContext(ctx)
	count, quantity, err := store.Components().Totals()
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory totals: %w", err)
	}
	low, err := store.Components().GetLowStock()
	if err != nil {
		return nil, fmt.Errorf("failed to get low stock components: %w", err)
	}

	summary := &InventorySummary{
		TotalComponents: count,
		TotalQuantity:   quantity,
		LowStockCount:   len(low),
		LowStock:        make([]LowStockEntry, 0, min(len(low), summaryLowStockTopN)),
	}
	for i := range low {
		if low[i].Quantity <= 0 {
			summary.OutOfStockCount++
		}
		if i < summaryLowStockTopN {
			summary.LowStock = append(summary.LowStock, toLowStockEntry(&low[i]))
		}
	}
	return summary, nil
}

func toLowStockEntry(c *models.Component) LowStockEntry {
	return LowStockEntry{
		ComponentID:  c.ID,
		Name:         c.Name,
		Manufacturer: c.Manufacturer,
		Location:     c.LocationName(),
		Quantity:     c.Quantity,
		ReorderPoint: c.ReorderPoint,
		ToBuy:        max(c.ReorderPoint-c.Quantity, 0),
	}
}

// Consumption aggregates stock deductions of the last days, most used first. days is
// clamped to 1..365, 0 means 30. With projectsOnly manual withdrawals are ignored.
func (s *ReportService) Consumption(ctx context.Context, days int, projectsOnly bool) (*ConsumptionReport, error) {
	switch {
	case days == 0:
		days = defaultConsumptionDays
	case days < 1:
		days = 1
	case days > maxConsumptionDays:
		days = maxConsumptionDays
	}
	since := time.Now().UTC().AddDate(0, 0, -days)

	store := s.store.WithContext(ctx)
	rows, err := store.Transactions().GetDeductionsSince(since)
	if err != nil {
		return nil, fmt.Errorf("failed to get deductions: %w", err)
	}

	byComponent := make(map[uuid.UUID]*ConsumptionEntry)
	var ids []uuid.UUID
	for _, row := range rows {
		fromProject := row.ProjectID != nil
		if projectsOnly && !fromProject {
			continue
		}
		entry, ok := byComponent[row.ComponentID]
		if !ok {
			entry = &ConsumptionEntry{ComponentID: row.ComponentID}
			byComponent[row.ComponentID] = entry
			ids = append(ids, row.ComponentID)
		}
		used := -row.DeltaQuantity
		if fromProject {
			entry.UsedFromProjects += used
		} else {
			entry.UsedManual += used
		}
		entry.Used += used
		entry.UsesCount++
	}

	components, err := store.Components().GetByIDsUnscoped(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get components: %w", err)
	}
	for _, c := range components {
		if entry, ok := byComponent[c.ID]; ok {
			entry.Name = c.Name
		}
	}

	entries := make([]ConsumptionEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, *byComponent[id])
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Used != entries[j].Used {
			return entries[i].Used > entries[j].Used
		}
		return entries[i].Name < entries[j].Name
	})
	if len(entries) > consumptionTopN {
		entries = entries[:consumptionTopN]
	}

	return &ConsumptionReport{Days: days, Since: since, Entries: entries}, nil
}

// TransactionHistory returns the newest ledger rows of one component
func (s *ReportService) TransactionHistory(ctx context.Context, componentID uuid.UUID, limit int) ([]TransactionResponse, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	store := s.store.WithContext(ctx)
	if _, err := store.Components().GetByID(componentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrComponentNotFound
		}
		return nil, fmt.Errorf("failed to get component: %w", err)
	}

	rows, err := store.Transactions().GetByComponentID(componentID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return toTransactionResponses(store, rows)
}

// ListTransactions returns a page of ledger rows matching filter
func (s *ReportService) ListTransactions(ctx context.Context, filter repository.TransactionFilter) (*TransactionListResponse, error) {
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", "must be one of: add use adjust")
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	filter.Limit, filter.Offset = normalizePagination(filter.Limit, filter.Offset)

	store := s.store.WithContext(ctx)
	rows, total, err := store.Transactions().List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	transactions, err := toTransactionResponses(store, rows)
	if err != nil {
		return nil, err
	}
	return &TransactionListResponse{
		Transactions: transactions,
		Total:        total,
		Limit:        filter.Limit,
		Offset:       filter.Offset,
	}, nil
}

func toTransactionResponses(store *repository.Store, rows []models.InventoryTransaction) ([]TransactionResponse, error) {
	var projectIDs []uuid.UUID
	seen := make(map[uuid.UUID]bool)
	for _, r := range rows {
		if r.ProjectID != nil && !seen[*r.ProjectID] {
			seen[*r.ProjectID] = true
			projectIDs = append(projectIDs, *r.ProjectID)
		}
	}
	projects, err := store.Projects().GetByIDs(projectIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	names := make(map[uuid.UUID]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
	}

	out := make([]TransactionResponse, len(rows))
	for i, r := range rows {
		out[i] = TransactionResponse{
			ID:            r.ID,
			ComponentID:   r.ComponentID,
			DeltaQuantity: r.DeltaQuantity,
			Type:          r.Type,
			ProjectID:     r.ProjectID,
			Note:          r.Note,
			CreatedAt:     r.CreatedAt.Format(time.RFC3339),
		}
		if r.ProjectID != nil {
			out[i].ProjectName = names[*r.ProjectID]
		}
	}
	return out, nil
}
