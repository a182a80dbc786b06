package repository

import (
	"parts-inventory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationRepository handles database operations for storage locations
type LocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Create creates a new location
func (r *LocationRepository) Create(location *models.Location) error {
	return r.db.Create(location).Error
}

// GetByID retrieves a location by ID
func (r *LocationRepository) GetByID(id uuid.UUID) (*models.Location, error) {
	var location models.Location
	if err := r.db.First(&location, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

// GetBySlot retrieves the location with exactly this rack, drawer and box
func (r *LocationRepository) GetBySlot(rack, drawer, box string) (*models.Location, error) {
	var location models.Location
	err := r.db.Where("rack = ? AND drawer = ? AND box = ?", rack, drawer, box).First(&location).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// List retrieves locations ordered by rack, drawer and box. Empty arguments do not filter.
func (r *LocationRepository) List(rack, drawer string) ([]models.Location, error) {
	var locations []models.Location
	q := r.db.Model(&models.Location{})
	if rack != "" {
		q = q.Where("rack = ?", rack)
	}
	if drawer != "" {
		q = q.Where("drawer = ?", drawer)
	}
	err := q.Order("rack, drawer, box").Find(&locations).Error
	return locations, err
}

// Racks returns the distinct rack names in order
func (r *LocationRepository) Racks() ([]string, error) {
	var racks []string
	err := r.db.Model(&models.Location{}).
		Distinct("rack").
		Order("rack").
		Pluck("rack", &racks).Error
	return racks, err
}

// Drawers returns the distinct non-empty drawer names of a rack in order
func (r *LocationRepository) Drawers(rack string) ([]string, error) {
	var drawers []string
	err := r.db.Model(&models.Location{}).
		Where("rack = ? AND drawer <> ''", rack).
		Distinct("drawer").
		Order("drawer").
		Pluck("drawer", &drawers).Error
	return drawers, err
}

// CountComponents counts the live components stored at a location
func (r *LocationRepository) CountComponents(id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Component{}).Where("location_id = ?", id).Count(&count).Error
	return count, err
}

// Delete deletes a location
func (r *LocationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Location{}, "id = ?", id).Error
}
