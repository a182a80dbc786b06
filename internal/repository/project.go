package repository

import (
	"time"

	"parts-inventory-backend/internal/database"
	"parts-inventory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByIDForUpdate retrieves a project and locks its row until the surrounding
// transaction ends. SQLite has no row locks; there the single connection serialises writers.
func (r *ProjectRepository) GetByIDForUpdate(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	q := r.db
	if database.IsPostgres(r.db) {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := q.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByIDs retrieves the projects with the given IDs
func (r *ProjectRepository) GetByIDs(ids []uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	if len(ids) == 0 {
		return projects, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&projects).Error
	return projects, err
}

// GetAll retrieves all projects with pagination, newest first
func (r *ProjectRepository) GetAll(limit, offset int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	// Get total count
	if err := r.db.Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Order("id DESC").Limit(limit).Offset(offset).Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// Update updates the editable fields of a project. ConsumedAt is only set by MarkConsumed.
func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Model(project).
		Select("name", "description", "status", "estimated_hours", "real_hours", "ordered_at", "received_at").
		Updates(project).Error
}

// MarkConsumed sets ConsumedAt if it is still empty and reports whether it did
func (r *ProjectRepository) MarkConsumed(id uuid.UUID, at time.Time) (bool, error) {
	result := r.db.Model(&models.Project{}).
		Where("id = ? AND consumed_at IS NULL", id).
		Update("consumed_at", at)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// Delete deletes a project
func (r *ProjectRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
