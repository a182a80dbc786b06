package repository

import (
	"parts-inventory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SupplierRepository handles database operations for suppliers
type SupplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

// Create creates a new supplier
func (r *SupplierRepository) Create(supplier *models.Supplier) error {
	return r.db.Create(supplier).Error
}

// CreateIfNotExists inserts the supplier unless one with the same name key exists.
// The existing row is not loaded; use GetByName afterwards.
func (r *SupplierRepository) CreateIfNotExists(supplier *models.Supplier) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name_key"}},
		DoNothing: true,
	}).Create(supplier).Error
}

// GetByID retrieves a supplier by ID
func (r *SupplierRepository) GetByID(id uuid.UUID) (*models.Supplier, error) {
	var supplier models.Supplier
	err := r.db.First(&supplier, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

// GetByName retrieves a supplier by name, ignoring case
func (r *SupplierRepository) GetByName(name string) (*models.Supplier, error) {
	var supplier models.Supplier
	err := r.db.First(&supplier, "name_key = ?", models.SupplierNameKey(name)).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

// GetByIDs retrieves the suppliers with the given IDs
func (r *SupplierRepository) GetByIDs(ids []uuid.UUID) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if len(ids) == 0 {
		return suppliers, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&suppliers).Error
	return suppliers, err
}

// GetAll retrieves all suppliers ordered by name
func (r *SupplierRepository) GetAll() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := r.db.Order("name_key").Find(&suppliers).Error
	return suppliers, err
}
