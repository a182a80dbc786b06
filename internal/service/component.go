package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"parts-inventory-backend/internal/database/models"
	apperrors "parts-inventory-backend/internal/errors"
	"parts-inventory-backend/internal/logger"
	"parts-inventory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComponentService handles business logic for stocked components and their quantities
type ComponentService struct {
	store     *repository.Store
	validator *validator.Validate
}

// NewComponentService creates a new component service
func NewComponentService(store *repository.Store, validator *validator.Validate) *ComponentService {
	return &ComponentService{
		store:     store,
		validator: validator,
	}
}

// CreateComponentRequest represents the request to create a component
type CreateComponentRequest struct {
	Name                   string     `json:"name" validate:"required,min=1,max=200"`
	Manufacturer           string     `json:"manufacturer,omitempty" validate:"max=200"`
	ManufacturerPartNumber string     `json:"manufacturer_part_number,omitempty" validate:"max=100"`
	Package                string     `json:"package,omitempty" validate:"max=50"`
	LocationID             *uuid.UUID `json:"location_id,omitempty"`
	Quantity               int        `json:"quantity" validate:"gte=0"`
	ReorderPoint           *int       `json:"reorder_point,omitempty" validate:"omitempty,gte=0"`
}

// UpdateComponentRequest represents the request to update the descriptive fields of a component
type UpdateComponentRequest struct {
	Name                   *string    `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Manufacturer           *string    `json:"manufacturer,omitempty" validate:"omitempty,max=200"`
	ManufacturerPartNumber *string    `json:"manufacturer_part_number,omitempty" validate:"omitempty,max=100"`
	Package                *string    `json:"package,omitempty" validate:"omitempty,max=50"`
	LocationID             *uuid.UUID `json:"location_id,omitempty"`
	ClearLocation          bool       `json:"clear_location,omitempty"`
	ReorderPoint           *int       `json:"reorder_point,omitempty" validate:"omitempty,gte=0"`
}

// StockChangeRequest represents a manual receipt or withdrawal
type StockChangeRequest struct {
	Amount int    `json:"amount" validate:"required,gt=0"`
	Note   string `json:"note,omitempty" validate:"max=200"`
}

// AdjustStockRequest represents a stocktake correction to an absolute quantity
type AdjustStockRequest struct {
	Quantity *int   `json:"quantity" validate:"required,gte=0"`
	Note     string `json:"note,omitempty" validate:"max=200"`
}

// ComponentResponse represents the response for component operations
type ComponentResponse struct {
	ID                     uuid.UUID  `json:"id"`
	Name                   string     `json:"name"`
	Manufacturer           string     `json:"manufacturer"`
	ManufacturerPartNumber string     `json:"manufacturer_part_number"`
	Package                string     `json:"package"`
	LocationID             *uuid.UUID `json:"location_id,omitempty"`
	Location               string     `json:"location"`
	Quantity               int        `json:"quantity"`
	ReorderPoint           int        `json:"reorder_point"`
	IsLowStock             bool       `json:"is_low_stock"`
	CreatedAt              string     `json:"created_at"`
	UpdatedAt              string     `json:"updated_at"`
}

// ComponentListResponse represents a paginated list of components
type ComponentListResponse struct {
	Components []ComponentResponse `json:"components"`
	Total      int64               `json:"total"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}

// Create creates a new component. A positive initial quantity is booked as a receipt.
func (s *ComponentService) Create(ctx context.Context, req *CreateComponentRequest) (*ComponentResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	reorderPoint := models.DefaultReorderPoint
	if req.ReorderPoint != nil {
		reorderPoint = *req.ReorderPoint
	}

	component := &models.Component{
		Name:                   strings.TrimSpace(req.Name),
		Manufacturer:           req.Manufacturer,
		ManufacturerPartNumber: req.ManufacturerPartNumber,
		Package:                req.Package,
		LocationID:             req.LocationID,
		ReorderPoint:           reorderPoint,
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		location, err := resolveLocation(tx, req.LocationID)
		if err != nil {
			return err
		}
		if err := tx.Components().Create(component); err != nil {
			return fmt.Errorf("failed to create component: %w", err)
		}
		component.Location = location
		return applyStockDelta(tx, component, req.Quantity, models.TransactionTypeAdd, nil, "initial stock")
	})
	if err != nil {
		return nil, err
	}

	return toComponentResponse(component), nil
}

// GetByID retrieves a component by ID
func (s *ComponentService) GetByID(ctx context.Context, id uuid.UUID) (*ComponentResponse, error) {
	component, err := s.getComponent(s.store.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	return toComponentResponse(component), nil
}

// List retrieves components, optionally filtered by a search query and a storage location.
// A location id wins over the rack, drawer and box filters.
func (s *ComponentService) List(ctx context.Context, filter repository.ComponentFilter, limit, offset int) (*ComponentListResponse, error) {
	limit, offset = normalizePagination(limit, offset)
	filter.Query = strings.TrimSpace(filter.Query)
	filter.Rack = strings.TrimSpace(filter.Rack)
	filter.Drawer = strings.TrimSpace(filter.Drawer)
	filter.Box = strings.TrimSpace(filter.Box)
	if filter.LocationID != nil {
		filter.Rack, filter.Drawer, filter.Box = "", "", ""
	}

	components, total, err := s.store.WithContext(ctx).Components().List(filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list components: %w", err)
	}

	responses := make([]ComponentResponse, len(components))
	for i := range components {
		responses[i] = *toComponentResponse(&components[i])
	}

	return &ComponentListResponse{
		Components: responses,
		Total:      total,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// Update updates the descriptive fields of a component. The quantity is changed only
// through AddStock, UseStock and AdjustStock.
func (s *ComponentService) Update(ctx context.Context, id uuid.UUID, req *UpdateComponentRequest) (*ComponentResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	store := s.store.WithContext(ctx)
	component, err := s.getComponent(store, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		component.Name = strings.TrimSpace(*req.Name)
	}
	if req.Manufacturer != nil {
		component.Manufacturer = *req.Manufacturer
	}
	if req.ManufacturerPartNumber != nil {
		component.ManufacturerPartNumber = *req.ManufacturerPartNumber
	}
	if req.Package != nil {
		component.Package = *req.Package
	}
	switch {
	case req.ClearLocation:
		component.LocationID = nil
		component.Location = nil
	case req.LocationID != nil:
		location, err := resolveLocation(store, req.LocationID)
		if err != nil {
			return nil, err
		}
		component.LocationID = &location.ID
		component.Location = location
	}
	if req.ReorderPoint != nil {
		component.ReorderPoint = *req.ReorderPoint
	}

	if err := store.Components().Update(component); err != nil {
		return nil, fmt.Errorf("failed to update component: %w", err)
	}

	return toComponentResponse(component), nil
}

// Delete soft-deletes a component. Components still planned by an unconsumed project cannot be deleted.
func (s *ComponentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := s.getComponent(tx, id); err != nil {
			return err
		}

		inUse, err := tx.ProjectItems().CountOpenByComponentID(id)
		if err != nil {
			return fmt.Errorf("failed to check component usage: %w", err)
		}
		if inUse > 0 {
			return apperrors.ErrComponentInUse
		}

		if err := tx.Components().Delete(id); err != nil {
			return fmt.Errorf("failed to delete component: %w", err)
		}
		return nil
	})
}

// AddStock books a receipt of req.Amount pieces
func (s *ComponentService) AddStock(ctx context.Context, id uuid.UUID, req *StockChangeRequest) (*ComponentResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	return s.changeStock(ctx, id, func(c *models.Component) (int, models.TransactionType, string) {
		return req.Amount, models.TransactionTypeAdd, noteOrDefault(req.Note, "manual receipt")
	})
}

// UseStock books a manual withdrawal of req.Amount pieces
func (s *ComponentService) UseStock(ctx context.Context, id uuid.UUID, req *StockChangeRequest) (*ComponentResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	return s.changeStock(ctx, id, func(c *models.Component) (int, models.TransactionType, string) {
		return -req.Amount, models.TransactionTypeUse, noteOrDefault(req.Note, "manual withdrawal")
	})
}

// AdjustStock sets the quantity to an absolute value and books the difference
func (s *ComponentService) AdjustStock(ctx context.Context, id uuid.UUID, req *AdjustStockRequest) (*ComponentResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	return s.changeStock(ctx, id, func(c *models.Component) (int, models.TransactionType, string) {
		return *req.Quantity - c.Quantity, models.TransactionTypeAdjust, noteOrDefault(req.Note, "stocktake")
	})
}

func (s *ComponentService) changeStock(ctx context.Context, id uuid.UUID, change func(*models.Component) (int, models.TransactionType, string)) (*ComponentResponse, error) {
	var component *models.Component
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		component, err = s.getComponent(tx, id)
		if err != nil {
			return err
		}
		delta, txType, note := change(component)
		return applyStockDelta(tx, component, delta, txType, nil, note)
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"component_id": id.String(),
		"quantity":     component.Quantity,
	}).Info("Stock changed")

	return toComponentResponse(component), nil
}

func (s *ComponentService) getComponent(store *repository.Store, id uuid.UUID) (*models.Component, error) {
	component, err := store.Components().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrComponentNotFound
		}
		return nil, fmt.Errorf("failed to get component: %w", err)
	}
	return component, nil
}

func noteOrDefault(note, fallback string) string {
	if n := strings.TrimSpace(note); n != "" {
		return n
	}
	return fallback
}

func normalizePagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func toComponentResponse(c *models.Component) *ComponentResponse {
	return &ComponentResponse{
		ID:                     c.ID,
		Name:                   c.Name,
		Manufacturer:           c.Manufacturer,
		ManufacturerPartNumber: c.ManufacturerPartNumber,
		Package:                c.Package,
		LocationID:             c.LocationID,
		Location:               c.LocationName(),
		Quantity:               c.Quantity,
		ReorderPoint:           c.ReorderPoint,
		IsLowStock:             c.IsLowStock(),
		CreatedAt:              c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              c.UpdatedAt.Format(time.RFC3339),
	}
}
