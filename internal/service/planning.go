package service

import (
	"context"
	"errors"
	"fmt"

	"parts-inventory-backend/internal/database/models"
	apperrors "parts-inventory-backend/internal/errors"
	"parts-inventory-backend/internal/logger"
	"parts-inventory-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanningService persists allocation results for projects
type PlanningService struct {
	store                 *repository.Store
	locks                 *ProjectLocks
	reserveAcrossProjects bool
}

// NewPlanningService creates a new planning service. With reserveAcrossProjects the stock
// already planned by other unconsumed projects is not offered to the project being planned.
func NewPlanningService(store *repository.Store, locks *ProjectLocks, reserveAcrossProjects bool) *PlanningService {
	return &PlanningService{
		store:                 store,
		locks:                 locks,
		reserveAcrossProjects: reserveAcrossProjects,
	}
}

// Recalculate recomputes and stores the allocation of every item of a project and returns
// the items. A locked project is returned unchanged.
func (s *PlanningService) Recalculate(ctx context.Context, projectID uuid.UUID) ([]models.ProjectItem, error) {
	unlock := s.locks.Lock(projectID)
	defer unlock()
	return s.recalculate(ctx, projectID)
}

// recalculate expects the caller to hold the project lock
func (s *PlanningService) recalculate(ctx context.Context, projectID uuid.UUID) ([]models.ProjectItem, error) {
	var items []models.ProjectItem
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		items, err = s.recalculateTx(ctx, tx, projectID)
		return err
	})
	return items, err
}

// recalculateTx runs the allocation inside an existing transaction
func (s *PlanningService) recalculateTx(ctx context.Context, tx *repository.Store, projectID uuid.UUID) ([]models.ProjectItem, error) {
	project, err := tx.Projects().GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	items, err := tx.ProjectItems().GetByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project items: %w", err)
	}
	if project.IsLocked() {
		return items, nil
	}

	stock, err := s.availableStock(tx, projectID, items)
	if err != nil {
		return nil, err
	}

	changed := 0
	for i, alloc := range Allocate(items, stock) {
		item := &items[i]
		if item.QuantityFromStock == alloc.FromStock && item.QuantityToBuy == alloc.ToBuy {
			continue
		}
		if err := tx.ProjectItems().UpdateAllocation(item.ID, alloc.FromStock, alloc.ToBuy); err != nil {
			return nil, fmt.Errorf("failed to store allocation: %w", err)
		}
		item.QuantityFromStock = alloc.FromStock
		item.QuantityToBuy = alloc.ToBuy
		changed++
	}

	if changed > 0 {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"project_id": projectID.String(),
			"changed":    changed,
			"items":      len(items),
		}).Debug("Allocation recalculated")
	}
	return items, nil
}

// availableStock returns the quantity of every referenced component the project may draw from
func (s *PlanningService) availableStock(tx *repository.Store, projectID uuid.UUID, items []models.ProjectItem) (map[uuid.UUID]int, error) {
	ids := componentIDs(items)
	components, err := tx.Components().GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get components: %w", err)
	}

	stock := make(map[uuid.UUID]int, len(components))
	for _, c := range components {
		stock[c.ID] = c.Quantity
	}

	if s.reserveAcrossProjects {
		reserved, err := tx.ProjectItems().SumReservedByComponent(ids, projectID)
		if err != nil {
			return nil, fmt.Errorf("failed to get reserved stock: %w", err)
		}
		for id, qty := range reserved {
			stock[id] -= qty
		}
	}
	return stock, nil
}

// componentIDs returns the distinct component IDs referenced by items, in item order
func componentIDs(items []models.ProjectItem) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, item := range items {
		item := item // per-iteration copy (Go 1.22 loop semantics)
		if !item.HasComponent() || seen[*item.ComponentID] {
			continue
		}
		seen[*item.ComponentID] = true
		ids = append(ids, *item.ComponentID)
	}
	return ids
}
