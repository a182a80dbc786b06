package repository

import (
	"time"

	"parts-inventory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryTransactionRepository handles the stock ledger
type InventoryTransactionRepository struct {
	db *gorm.DB
}

// NewInventoryTransactionRepository creates a new ledger repository
func NewInventoryTransactionRepository(db *gorm.DB) *InventoryTransactionRepository {
	return &InventoryTransactionRepository{db: db}
}

// Create appends a ledger row
func (r *InventoryTransactionRepository) Create(transaction *models.InventoryTransaction) error {
	return r.db.Create(transaction).Error
}

// GetByComponentID retrieves the most recent ledger rows of a component, newest first
func (r *InventoryTransactionRepository) GetByComponentID(componentID uuid.UUID, limit int) ([]models.InventoryTransaction, error) {
	var transactions []models.InventoryTransaction
	q := r.db.Where("component_id = ?", componentID).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&transactions).Error
	return transactions, err
}

// List retrieves ledger rows matching filter, newest first
func (r *InventoryTransactionRepository) List(filter TransactionFilter) ([]models.InventoryTransaction, int64, error) {
	var transactions []models.InventoryTransaction
	var total int64

	q := r.db.Model(&models.InventoryTransaction{})
	if filter.ComponentID != nil {
		q = q.Where("component_id = ?", *filter.ComponentID)
	}
	if filter.ProjectID != nil {
		q = q.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at < ?", *filter.To)
	}

	// Get total count
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order("id DESC").Offset(filter.Offset)
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if err := q.Find(&transactions).Error; err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}

// GetDeductionsSince retrieves all negative ledger rows created at or after since
func (r *InventoryTransactionRepository) GetDeductionsSince(since time.Time) ([]models.InventoryTransaction, error) {
	var transactions []models.InventoryTransaction
	err := r.db.Where("delta_quantity < 0 AND created_at >= ?", since).Order("id").Find(&transactions).Error
	return transactions, err
}

// DetachProject clears the project reference of ledger rows before the project is deleted
func (r *InventoryTransactionRepository) DetachProject(projectID uuid.UUID) error {
	return r.db.Model(&models.InventoryTransaction{}).
		Where("project_id = ?", projectID).
		Update("project_id", nil).Error
}
