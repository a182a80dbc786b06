package repository

import (
	"parts-inventory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupplierOfferRepository handles database operations for supplier offers
type SupplierOfferRepository struct {
	db *gorm.DB
}

// NewSupplierOfferRepository creates a new supplier offer repository
func NewSupplierOfferRepository(db *gorm.DB) *SupplierOfferRepository {
	return &SupplierOfferRepository{db: db}
}

// CreateBatch inserts offers in insertion order
func (r *SupplierOfferRepository) CreateBatch(offers []models.SupplierOffer) error {
	if len(offers) == 0 {
		return nil
	}
	return r.db.CreateInBatches(offers, 100).Error
}

// GetByID retrieves an offer by ID
func (r *SupplierOfferRepository) GetByID(id uuid.UUID) (*models.SupplierOffer, error) {
	var offer models.SupplierOffer
	err := r.db.First(&offer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *SupplierOfferRepository) projectItemIDs(projectID uuid.UUID) *gorm.DB {
	return r.db.Model(&models.ProjectItem{}).Select("id").Where("project_id = ?", projectID)
}

// GetByProjectID retrieves every offer for items of a project, in insertion order
func (r *SupplierOfferRepository) GetByProjectID(projectID uuid.UUID) ([]models.SupplierOffer, error) {
	var offers []models.SupplierOffer
	err := r.db.Where("project_item_id IN (?)", r.projectItemIDs(projectID)).Order("id").Find(&offers).Error
	return offers, err
}

// GetSelectedByProjectID retrieves the selected offers for items of a project
func (r *SupplierOfferRepository) GetSelectedByProjectID(projectID uuid.UUID) ([]models.SupplierOffer, error) {
	var offers []models.SupplierOffer
	err := r.db.Where("project_item_id IN (?) AND is_selected = ?", r.projectItemIDs(projectID), true).
		Order("id").Find(&offers).Error
	return offers, err
}

// Select marks offerID as the selected offer of itemID and clears its siblings.
// Run it inside a transaction to keep the at-most-one-selected invariant visible to readers.
func (r *SupplierOfferRepository) Select(itemID, offerID uuid.UUID) error {
	err := r.db.Model(&models.SupplierOffer{}).
		Where("project_item_id = ? AND id <> ? AND is_selected = ?", itemID, offerID, true).
		Update("is_selected", false).Error
	if err != nil {
		return err
	}
	result := r.db.Model(&models.SupplierOffer{}).
		Where("id = ? AND project_item_id = ?", offerID, itemID).
		Update("is_selected", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByProjectID deletes every offer for items of a project
func (r *SupplierOfferRepository) DeleteByProjectID(projectID uuid.UUID) error {
	return r.db.Where("project_item_id IN (?)", r.projectItemIDs(projectID)).Delete(&models.SupplierOffer{}).Error
}

// DeleteByItemID deletes every offer for one project item
func (r *SupplierOfferRepository) DeleteByItemID(itemID uuid.UUID) error {
	return r.db.Where("project_item_id = ?", itemID).Delete(&models.SupplierOffer{}).Error
}
