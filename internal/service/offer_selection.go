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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OfferService handles listing and selecting supplier offers
type OfferService struct {
	store *repository.Store
	locks *ProjectLocks
}

// NewOfferService creates a new offer service
func NewOfferService(store *repository.Store, locks *ProjectLocks) *OfferService {
	return &OfferService{
		store: store,
		locks: locks,
	}
}

// OfferResponse represents one supplier offer
type OfferResponse struct {
	ID                 uuid.UUID       `json:"id"`
	ProjectItemID      uuid.UUID       `json:"project_item_id"`
	SupplierID         uuid.UUID       `json:"supplier_id"`
	SupplierName       string          `json:"supplier_name"`
	SupplierPartNumber string          `json:"supplier_part_number"`
	Description        string          `json:"description"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	Currency           string          `json:"currency"`
	InStock            bool            `json:"in_stock"`
	MinOrderQty        int             `json:"min_order_qty"`
	LeadTimeDays       *int            `json:"lead_time_days,omitempty"`
	ProductURL         string          `json:"product_url,omitempty"`
	IsSelected         bool            `json:"is_selected"`
}

// AutoSelectResult reports what AutoSelectCheapest picked
type AutoSelectResult struct {
	ProjectID uuid.UUID       `json:"project_id"`
	Selected  []OfferResponse `json:"selected"`
	Skipped   int             `json:"skipped"`
}

// ListOffers returns every offer of a project in insertion order
func (s *OfferService) ListOffers(ctx context.Context, projectID uuid.UUID) ([]OfferResponse, error) {
	store := s.store.WithContext(ctx)
	if _, err := getProject(store, projectID); err != nil {
		return nil, err
	}

	offers, err := store.SupplierOffers().GetByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get offers: %w", err)
	}
	suppliers, err := supplierNames(store, offers)
	if err != nil {
		return nil, err
	}

	responses := make([]OfferResponse, len(offers))
	for i := range offers {
		responses[i] = toOfferResponse(&offers[i], suppliers)
	}
	return responses, nil
}

// SelectOffer makes offerID the single selected offer of its project item. The offer is
// read again under the project lock, so an offer replaced by a concurrent search is not found.
func (s *OfferService) SelectOffer(ctx context.Context, offerID uuid.UUID) (*OfferResponse, error) {
	store := s.store.WithContext(ctx)
	offer, err := store.SupplierOffers().GetByID(offerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	item, err := store.ProjectItems().GetByID(offer.ProjectItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectItemNotFound
		}
		return nil, fmt.Errorf("failed to get project item: %w", err)
	}

	unlock := s.locks.Lock(item.ProjectID)
	defer unlock()

	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		current, err := tx.SupplierOffers().GetByID(offerID)
		if err != nil {
			return err
		}
		if err := tx.SupplierOffers().Select(current.ProjectItemID, current.ID); err != nil {
			return err
		}
		offer = current
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to select offer: %w", err)
	}
	offer.IsSelected = true

	suppliers, err := supplierNames(store, []models.SupplierOffer{*offer})
	if err != nil {
		return nil, err
	}
	resp := toOfferResponse(offer, suppliers)
	return &resp, nil
}

// AutoSelectCheapest selects, for every item that still needs buying, its lowest priced
// offer. On equal prices the earliest stored offer wins. Items without offers are skipped.
func (s *OfferService) AutoSelectCheapest(ctx context.Context, projectID uuid.UUID) (*AutoSelectResult, error) {
	unlock := s.locks.Lock(projectID)
	defer unlock()

	result := &AutoSelectResult{ProjectID: projectID, Selected: []OfferResponse{}}
	var picked []models.SupplierOffer
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := getProject(tx, projectID); err != nil {
			return err
		}
		items, err := tx.ProjectItems().GetByProjectID(projectID)
		if err != nil {
			return fmt.Errorf("failed to get project items: %w", err)
		}
		offers, err := tx.SupplierOffers().GetByProjectID(projectID)
		if err != nil {
			return fmt.Errorf("failed to get offers: %w", err)
		}

		cheapest := make(map[uuid.UUID]int)
		for i := range offers {
			best, ok := cheapest[offers[i].ProjectItemID]
			if !ok || offers[i].UnitPrice.LessThan(offers[best].UnitPrice) {
				cheapest[offers[i].ProjectItemID] = i
			}
		}

		for _, item := range items {
			if item.QuantityToBuy <= 0 {
				continue
			}
			idx, ok := cheapest[item.ID]
			if !ok {
				result.Skipped++
				continue
			}
			if err := tx.SupplierOffers().Select(item.ID, offers[idx].ID); err != nil {
				return fmt.Errorf("failed to select offer: %w", err)
			}
			offers[idx].IsSelected = true
			picked = append(picked, offers[idx])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	suppliers, err := supplierNames(s.store.WithContext(ctx), picked)
	if err != nil {
		return nil, err
	}
	for i := range picked {
		result.Selected = append(result.Selected, toOfferResponse(&picked[i], suppliers))
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id": projectID.String(),
		"selected":   len(result.Selected),
		"skipped":    result.Skipped,
	}).Info("Cheapest offers selected")
	return result, nil
}

// supplierNames maps the suppliers referenced by offers to their names
func supplierNames(store *repository.Store, offers []models.SupplierOffer) (map[uuid.UUID]string, error) {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, o := range offers {
		if !seen[o.SupplierID] {
			seen[o.SupplierID] = true
			ids = append(ids, o.SupplierID)
		}
	}
	suppliers, err := store.Suppliers().GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get suppliers: %w", err)
	}
	names := make(map[uuid.UUID]string, len(suppliers))
	for _, s := range suppliers {
		names[s.ID] = s.Name
	}
	return names, nil
}

func toOfferResponse(o *models.SupplierOffer, suppliers map[uuid.UUID]string) OfferResponse {
	return OfferResponse{
		ID:                 o.ID,
		ProjectItemID:      o.ProjectItemID,
		SupplierID:         o.SupplierID,
		SupplierName:       suppliers[o.SupplierID],
		SupplierPartNumber: o.SupplierPartNumber,
		Description:        o.Description,
		UnitPrice:          o.UnitPrice,
		Currency:           o.Currency,
		InStock:            o.InStock,
		MinOrderQty:        o.MinOrderQty,
		LeadTimeDays:       o.LeadTimeDays,
		ProductURL:         o.ProductURL,
		IsSelected:         o.IsSelected,
	}
}
