package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"parts-inventory-backend/internal/database/models"
	apperrors "parts-inventory-backend/internal/errors"
	"parts-inventory-backend/internal/logger"
	"parts-inventory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationService manages the rack, drawer and box slots components are stored in
type LocationService struct {
	store     *repository.Store
	validator *validator.Validate
}

// NewLocationService creates a new location service
func NewLocationService(store *repository.Store, validator *validator.Validate) *LocationService {
	return &LocationService{
		store:     store,
		validator: validator,
	}
}

// CreateLocationRequest represents the request to create a storage location
type CreateLocationRequest struct {
	Rack   string `json:"rack" validate:"required,min=1,max=50"`
	Drawer string `json:"drawer,omitempty" validate:"required_with=Box,max=50"`
	Box    string `json:"box,omitempty" validate:"max=50"`
}

// LocationResponse represents a storage location
type LocationResponse struct {
	ID             uuid.UUID `json:"id"`
	Rack           string    `json:"rack"`
	Drawer         string    `json:"drawer"`
	Box            string    `json:"box"`
	DisplayName    string    `json:"display_name"`
	ComponentCount *int64    `json:"component_count,omitempty"`
}

// BoxOption is one box of a drawer, addressed by the location that holds it
type BoxOption struct {
	ID  uuid.UUID `json:"id"`
	Box string    `json:"box"`
}

// Create creates a storage location. Each rack, drawer and box combination exists once.
func (s *LocationService) Create(ctx context.Context, req *CreateLocationRequest) (*LocationResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	location := &models.Location{
		Rack:   strings.TrimSpace(req.Rack),
		Drawer: strings.TrimSpace(req.Drawer),
		Box:    strings.TrimSpace(req.Box),
	}
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		_, err := tx.Locations().GetBySlot(location.Rack, location.Drawer, location.Box)
		if err == nil {
			return apperrors.ErrLocationExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check location: %w", err)
		}
		if err := tx.Locations().Create(location); err != nil {
			return fmt.Errorf("failed to create location: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// List returns the locations, optionally narrowed to one rack and drawer
func (s *LocationService) List(ctx context.Context, rack, drawer string) ([]LocationResponse, error) {
	locations, err := s.store.WithContext(ctx).Locations().List(strings.TrimSpace(rack), strings.TrimSpace(drawer))
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	out := make([]LocationResponse, len(locations))
	for i := range locations {
		out[i] = *toLocationResponse(&locations[i])
	}
	return out, nil
}

// GetByID returns a location together with the number of components stored there
func (s *LocationService) GetByID(ctx context.Context, id uuid.UUID) (*LocationResponse, error) {
	store := s.store.WithContext(ctx)
	location, err := getLocation(store, id)
	if err != nil {
		return nil, err
	}
	count, err := store.Locations().CountComponents(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count components: %w", err)
	}
	resp := toLocationResponse(location)
	resp.ComponentCount = &count
	return resp, nil
}

// Delete deletes a location. Components stored there keep existing without a location.
func (s *LocationService) Delete(ctx context.Context, id uuid.UUID) error {
	var detached int64
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := getLocation(tx, id); err != nil {
			return err
		}
		var err error
		if detached, err = tx.Components().ClearLocation(id); err != nil {
			return fmt.Errorf("failed to detach components: %w", err)
		}
		if err := tx.Locations().Delete(id); err != nil {
			return fmt.Errorf("failed to delete location: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"location_id": id.String(),
		"detached":    detached,
	}).Info("Location deleted")
	return nil
}

// Racks returns the distinct rack names
func (s *LocationService) Racks(ctx context.Context) ([]string, error) {
	racks, err := s.store.WithContext(ctx).Locations().Racks()
	if err != nil {
		return nil, fmt.Errorf("failed to list racks: %w", err)
	}
	return racks, nil
}

// Drawers returns the distinct drawers of a rack
func (s *LocationService) Drawers(ctx context.Context, rack string) ([]string, error) {
	rack = strings.TrimSpace(rack)
	if rack == "" {
		return nil, apperrors.NewValidationError("rack", "is required")
	}
	drawers, err := s.store.WithContext(ctx).Locations().Drawers(rack)
	if err != nil {
		return nil, fmt.Errorf("failed to list drawers: %w", err)
	}
	return drawers, nil
}

// Boxes returns the boxes of one drawer with the location each of them is
func (s *LocationService) Boxes(ctx context.Context, rack, drawer string) ([]BoxOption, error) {
	rack, drawer = strings.TrimSpace(rack), strings.TrimSpace(drawer)
	if rack == "" {
		return nil, apperrors.NewValidationError("rack", "is required")
	}
	if drawer == "" {
		return nil, apperrors.NewValidationError("drawer", "is required")
	}
	locations, err := s.store.WithContext(ctx).Locations().List(rack, drawer)
	if err != nil {
		return nil, fmt.Errorf("failed to list boxes: %w", err)
	}
	boxes := []BoxOption{}
	for _, l := range locations {
		if l.Box != "" {
			boxes = append(boxes, BoxOption{ID: l.ID, Box: l.Box})
		}
	}
	return boxes, nil
}

func getLocation(store *repository.Store, id uuid.UUID) (*models.Location, error) {
	location, err := store.Locations().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return location, nil
}

// resolveLocation loads the location a component is assigned to. An unknown id is a
// validation error of the component request, not a missing resource.
func resolveLocation(store *repository.Store, id *uuid.UUID) (*models.Location, error) {
	if id == nil {
		return nil, nil
	}
	location, err := getLocation(store, *id)
	if errors.Is(err, apperrors.ErrLocationNotFound) {
		return nil, apperrors.NewValidationError("location_id", "location does not exist")
	}
	return location, err
}

func toLocationResponse(l *models.Location) *LocationResponse {
	return &LocationResponse{
		ID:          l.ID,
		Rack:        l.Rack,
		Drawer:      l.Drawer,
		Box:         l.Box,
		DisplayName: l.DisplayName(),
	}
}
