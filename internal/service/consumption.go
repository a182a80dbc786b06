package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parts-inventory-backend/internal/database/models"
	apperrors "parts-inventory-backend/internal/errors"
	"parts-inventory-backend/internal/logger"
	"parts-inventory-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConsumptionService commits the planned stock usage of a project
type ConsumptionService struct {
	store *repository.Store
	locks *ProjectLocks
}

// NewConsumptionService creates a new consumption service
func NewConsumptionService(store *repository.Store, locks *ProjectLocks) *ConsumptionService {
	return &ConsumptionService{
		store: store,
		locks: locks,
	}
}

// Deduction is one stock decrement performed by a consumption
type Deduction struct {
	ItemID            uuid.UUID `json:"item_id"`
	ComponentID       uuid.UUID `json:"component_id"`
	ComponentName     string    `json:"component_name"`
	Quantity          int       `json:"quantity"`
	RemainingQuantity int       `json:"remaining_quantity"`
}

// ConsumptionResult reports a committed consumption
type ConsumptionResult struct {
	ProjectID  uuid.UUID   `json:"project_id"`
	ConsumedAt time.Time   `json:"consumed_at"`
	Deductions []Deduction `json:"deductions"`
}

// ConsumeFromStock deducts every planned from-stock quantity of the project, writes one
// ledger row per deduction and locks the project. It is all or nothing: every deduction is
// checked against current stock before the first write, and any failure rolls back the
// whole commit. Once started it is not cancelled by ctx.
func (s *ConsumptionService) ConsumeFromStock(ctx context.Context, projectID uuid.UUID) (*ConsumptionResult, error) {
	ctx = logger.ContextWithProject(context.WithoutCancel(ctx), projectID.String())
	unlock := s.locks.Lock(projectID)
	defer unlock()

	result := &ConsumptionResult{ProjectID: projectID, Deductions: []Deduction{}}
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		project, err := tx.Projects().GetByIDForUpdate(projectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProjectNotFound
			}
			return fmt.Errorf("failed to get project: %w", err)
		}
		if project.IsLocked() {
			return apperrors.ErrProjectAlreadyConsumed
		}

		items, err := tx.ProjectItems().GetByProjectID(projectID)
		if err != nil {
			return fmt.Errorf("failed to get project items: %w", err)
		}
		components, err := loadComponents(tx, items)
		if err != nil {
			return err
		}
		if err := checkDeductions(items, components); err != nil {
			return err
		}

		note := "Project: " + project.Name
		for _, item := range items {
			item := item // per-iteration copy (Go 1.22 loop semantics)
			if !item.HasComponent() || item.QuantityFromStock <= 0 {
				continue
			}
			component := components[*item.ComponentID]
			if err := applyStockDelta(tx, component, -item.QuantityFromStock, models.TransactionTypeUse, &project.ID, note); err != nil {
				return err
			}
			result.Deductions = append(result.Deductions, Deduction{
				ItemID:            item.ID,
				ComponentID:       component.ID,
				ComponentName:     component.Name,
				Quantity:          item.QuantityFromStock,
				RemainingQuantity: component.Quantity,
			})
		}

		result.ConsumedAt = time.Now().UTC()
		ok, err := tx.Projects().MarkConsumed(projectID, result.ConsumedAt)
		if err != nil {
			return fmt.Errorf("failed to mark project consumed: %w", err)
		}
		if !ok {
			return apperrors.ErrProjectAlreadyConsumed
		}
		return nil
	})
	if err != nil {
		if apperrors.IsInsufficientStock(err) {
			logger.WithContext(ctx).WithError(err).Warn("Consumption rejected")
		}
		return nil, err
	}

	logger.WithContext(ctx).WithField("deductions", len(result.Deductions)).Info("Project stock consumed")
	return result, nil
}

// loadComponents returns the live components referenced by items keyed by ID
func loadComponents(tx *repository.Store, items []models.ProjectItem) (map[uuid.UUID]*models.Component, error) {
	components, err := tx.Components().GetByIDs(componentIDs(items))
	if err != nil {
		return nil, fmt.Errorf("failed to get components: %w", err)
	}
	byID := make(map[uuid.UUID]*models.Component, len(components))
	for i := range components {
		byID[components[i].ID] = &components[i]
	}
	return byID, nil
}

// checkDeductions verifies that the summed deductions per component fit the current stock.
// A component that no longer exists has nothing to deduct from.
func checkDeductions(items []models.ProjectItem, components map[uuid.UUID]*models.Component) error {
	needed := make(map[uuid.UUID]int)
	var order []uuid.UUID
	for _, item := range items {
		item := item // per-iteration copy (Go 1.22 loop semantics)
		if !item.HasComponent() || item.QuantityFromStock <= 0 {
			continue
		}
		id := *item.ComponentID
		if _, ok := needed[id]; !ok {
			order = append(order, id)
		}
		needed[id] += item.QuantityFromStock
	}

	for _, id := range order {
		component, ok := components[id]
		if !ok {
			return apperrors.NewInsufficientStockError(id.String(), needed[id], 0)
		}
		if component.Quantity < needed[id] {
			return apperrors.NewInsufficientStockError(component.Name, needed[id], component.Quantity)
		}
	}
	return nil
}
