package repository

import (
	"strings"

	"parts-inventory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComponentRepository handles database operations for components
type ComponentRepository struct {
	db *gorm.DB
}

// NewComponentRepository creates a new component repository
func NewComponentRepository(db *gorm.DB) *ComponentRepository {
	return &ComponentRepository{db: db}
}

// Create creates a new component
func (r *ComponentRepository) Create(component *models.Component) error {
	return r.db.Create(component).Error
}

// GetByID retrieves a component by ID
func (r *ComponentRepository) GetByID(id uuid.UUID) (*models.Component, error) {
	var component models.Component
	err := r.db.Preload("Location").First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// GetByIDs retrieves the components with the given IDs. Missing or deleted IDs are skipped.
func (r *ComponentRepository) GetByIDs(ids []uuid.UUID) ([]models.Component, error) {
	var components []models.Component
	if len(ids) == 0 {
		return components, nil
	}
	err := r.db.Where("id IN ?", ids).Order("id").Find(&components).Error
	return components, err
}

// GetByIDsUnscoped is GetByIDs including soft-deleted components
func (r *ComponentRepository) GetByIDsUnscoped(ids []uuid.UUID) ([]models.Component, error) {
	var components []models.Component
	if len(ids) == 0 {
		return components, nil
	}
	err := r.db.Unscoped().Where("id IN ?", ids).Order("id").Find(&components).Error
	return components, err
}

// GetAll retrieves all components with pagination, ordered by name
func (r *ComponentRepository) GetAll(limit, offset int) ([]models.Component, int64, error) {
	return r.List(ComponentFilter{}, limit, offset)
}

// Search finds components by name, manufacturer or part number
func (r *ComponentRepository) Search(query string, limit, offset int) ([]models.Component, int64, error) {
	return r.List(ComponentFilter{Query: query}, limit, offset)
}

// List retrieves the components matching filter with pagination, ordered by name.
// Location parts match exactly; components without a location never match them.
func (r *ComponentRepository) List(filter ComponentFilter, limit, offset int) ([]models.Component, int64, error) {
	var components []models.Component
	var total int64

	q := r.db.Model(&models.Component{})
	if query := strings.TrimSpace(filter.Query); query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		q = q.Where(
			"LOWER(components.name) LIKE ? OR LOWER(components.manufacturer) LIKE ? OR LOWER(components.manufacturer_part_number) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.LocationID != nil {
		q = q.Where("components.location_id = ?", *filter.LocationID)
	}
	if filter.Rack != "" || filter.Drawer != "" || filter.Box != "" {
		q = q.Joins("JOIN locations ON locations.id = components.location_id")
		if filter.Rack != "" {
			q = q.Where("locations.rack = ?", filter.Rack)
		}
		if filter.Drawer != "" {
			q = q.Where("locations.drawer = ?", filter.Drawer)
		}
		if filter.Box != "" {
			q = q.Where("locations.box = ?", filter.Box)
		}
	}

	// Get total count
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := q.Preload("Location").
		Order("components.name, components.id").
		Limit(limit).Offset(offset).
		Find(&components).Error
	if err != nil {
		return nil, 0, err
	}

	return components, total, nil
}

// GetLowStock retrieves components whose quantity is below their reorder point
func (r *ComponentRepository) GetLowStock() ([]models.Component, error) {
	var components []models.Component
	err := r.db.Preload("Location").Where("quantity < reorder_point").Order("quantity, name").Find(&components).Error
	return components, err
}

// Totals returns the number of live components and the sum of their quantities
func (r *ComponentRepository) Totals() (count int64, quantity int64, err error) {
	var row struct {
		Count    int64
		Quantity int64
	}
	err = r.db.Model(&models.Component{}).
		Select("COUNT(*) AS count, COALESCE(SUM(quantity), 0) AS quantity").
		Scan(&row).Error
	return row.Count, row.Quantity, err
}

// ClearLocation unassigns every component, deleted ones included, stored at locationID
func (r *ComponentRepository) ClearLocation(locationID uuid.UUID) (int64, error) {
	result := r.db.Unscoped().Model(&models.Component{}).
		Where("location_id = ?", locationID).
		UpdateColumn("location_id", nil)
	return result.RowsAffected, result.Error
}

// Update writes the descriptive fields of a component. Quantity is left untouched.
func (r *ComponentRepository) Update(component *models.Component) error {
	return r.db.Model(component).
		Select("name", "manufacturer", "manufacturer_part_number", "package", "location_id", "reorder_point").
		Updates(component).Error
}

// ApplyDelta adds delta to the on-hand quantity unless the result would be negative.
// It reports false when no row matched (unknown, deleted or insufficient stock).
func (r *ComponentRepository) ApplyDelta(id uuid.UUID, delta int) (bool, error) {
	result := r.db.Model(&models.Component{}).
		Where("id = ? AND quantity + ? >= 0", id, delta).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// Delete soft-deletes a component
func (r *ComponentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Component{}, "id = ?", id).Error
}
