package service

import (
	"errors"
	"fmt"

	"parts-inventory-backend/internal/database/models"
	apperrors "parts-inventory-backend/internal/errors"
	"parts-inventory-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// applyStockDelta changes the quantity of component by delta and appends the matching
// ledger row. It must run inside a transaction. A deduction larger than the current
// quantity fails with InsufficientStockError and writes nothing. On success
// component.Quantity holds the new value.
func applyStockDelta(tx *repository.Store, component *models.Component, delta int, txType models.TransactionType, projectID *uuid.UUID, note string) error {
	if delta == 0 {
		return nil
	}

	ok, err := tx.Components().ApplyDelta(component.ID, delta)
	if err != nil {
		return fmt.Errorf("failed to update stock of %s: %w", component.Name, err)
	}
	if !ok {
		available := 0
		current, err := tx.Components().GetByID(component.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to get component: %w", err)
		}
		if current != nil {
			available = current.Quantity
		}
		return apperrors.NewInsufficientStockError(component.Name, -delta, available)
	}

	entry := &models.InventoryTransaction{
		ComponentID:   component.ID,
		DeltaQuantity: delta,
		Type:          txType,
		ProjectID:     projectID,
		Note:          note,
	}
	if err := tx.Transactions().Create(entry); err != nil {
		return fmt.Errorf("failed to record inventory transaction: %w", err)
	}

	component.Quantity += delta
	return nil
}
