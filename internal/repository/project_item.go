package repository

import (
	"parts-inventory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectItemRepository handles database operations for project requirement lines
type ProjectItemRepository struct {
	db *gorm.DB
}

// NewProjectItemRepository creates a new project item repository
func NewProjectItemRepository(db *gorm.DB) *ProjectItemRepository {
	return &ProjectItemRepository{db: db}
}

// Create creates a new project item
func (r *ProjectItemRepository) Create(item *models.ProjectItem) error {
	return r.db.Create(item).Error
}

// GetByID retrieves a project item by ID
func (r *ProjectItemRepository) GetByID(id uuid.UUID) (*models.ProjectItem, error) {
	var item models.ProjectItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByProjectID retrieves all items of a project in insertion order
func (r *ProjectItemRepository) GetByProjectID(projectID uuid.UUID) ([]models.ProjectItem, error) {
	var items []models.ProjectItem
	err := r.db.Where("project_id = ?", projectID).Order("id").Find(&items).Error
	return items, err
}

// Update writes the user-editable fields of an item
func (r *ProjectItemRepository) Update(item *models.ProjectItem) error {
	return r.db.Model(item).
		Select("quantity_required", "quantity_to_buy", "is_fulfilled", "type").
		Updates(item).Error
}

// UpdateAllocation writes the derived allocation of an item
func (r *ProjectItemRepository) UpdateAllocation(id uuid.UUID, fromStock, toBuy int) error {
	return r.db.Model(&models.ProjectItem{}).Where("id = ?", id).Updates(map[string]interface{}{
		"quantity_from_stock": fromStock,
		"quantity_to_buy":     toBuy,
	}).Error
}

// Delete deletes a project item
func (r *ProjectItemRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectItem{}, "id = ?", id).Error
}

// DeleteByProjectID deletes every item of a project
func (r *ProjectItemRepository) DeleteByProjectID(projectID uuid.UUID) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.ProjectItem{}).Error
}

// CountOpenByComponentID counts items referencing the component in projects that were not consumed yet
func (r *ProjectItemRepository) CountOpenByComponentID(componentID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProjectItem{}).
		Joins("JOIN projects ON projects.id = project_items.project_id").
		Where("project_items.component_id = ? AND projects.consumed_at IS NULL", componentID).
		Count(&count).Error
	return count, err
}

// SumReservedByComponent sums the stock already planned for the given components by
// unconsumed projects other than excludeProjectID
func (r *ProjectItemRepository) SumReservedByComponent(componentIDs []uuid.UUID, excludeProjectID uuid.UUID) (map[uuid.UUID]int, error) {
	reserved := make(map[uuid.UUID]int, len(componentIDs))
	if len(componentIDs) == 0 {
		return reserved, nil
	}

	var rows []struct {
		ComponentID uuid.UUID
		Total       int
	}
	err := r.db.Model(&models.ProjectItem{}).
		Select("project_items.component_id AS component_id, SUM(project_items.quantity_from_stock) AS total").
		Joins("JOIN projects ON projects.id = project_items.project_id").
		Where("project_items.component_id IN ?", componentIDs).
		Where("project_items.project_id <> ? AND projects.consumed_at IS NULL", excludeProjectID).
		Group("project_items.component_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		reserved[row.ComponentID] = row.Total
	}
	return reserved, nil
}
