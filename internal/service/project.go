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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects and their requirement lines
type ProjectService struct {
	store     *repository.Store
	planner   *PlanningService
	locks     *ProjectLocks
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(store *repository.Store, planner *PlanningService, locks *ProjectLocks, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		store:     store,
		planner:   planner,
		locks:     locks,
		validator: validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name           string  `json:"name" validate:"required,min=1,max=200"`
	Description    string  `json:"description,omitempty"`
	EstimatedHours float64 `json:"estimated_hours,omitempty" validate:"gte=0"`
}

// UpdateProjectRequest represents the request to update a project
type UpdateProjectRequest struct {
	Name           *string               `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description    *string               `json:"description,omitempty"`
	Status         *models.ProjectStatus `json:"status,omitempty"`
	EstimatedHours *float64              `json:"estimated_hours,omitempty" validate:"omitempty,gte=0"`
	RealHours      *float64              `json:"real_hours,omitempty" validate:"omitempty,gte=0"`
}

// AddItemRequest represents the request to add a requirement line. Exactly one of
// ComponentID and CustomName must be set.
type AddItemRequest struct {
	ComponentID      *uuid.UUID      `json:"component_id,omitempty"`
	CustomName       string          `json:"custom_name,omitempty" validate:"max=200"`
	QuantityRequired int             `json:"quantity_required" validate:"required,gt=0"`
	Type             models.ItemType `json:"type,omitempty"`
}

// UpdateItemRequest represents the request to update a requirement line
type UpdateItemRequest struct {
	QuantityRequired *int             `json:"quantity_required,omitempty" validate:"omitempty,gt=0"`
	Type             *models.ItemType `json:"type,omitempty"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID             uuid.UUID            `json:"id"`
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	Status         models.ProjectStatus `json:"status"`
	EstimatedHours float64              `json:"estimated_hours"`
	RealHours      float64              `json:"real_hours"`
	OrderedAt      *time.Time           `json:"ordered_at,omitempty"`
	ReceivedAt     *time.Time           `json:"received_at,omitempty"`
	ConsumedAt     *time.Time           `json:"consumed_at,omitempty"`
	IsLocked       bool                 `json:"is_locked"`
	CreatedAt      string               `json:"created_at"`
	UpdatedAt      string               `json:"updated_at"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int64             `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// ProjectItemResponse represents one requirement line with its offers
type ProjectItemResponse struct {
	ID                uuid.UUID       `json:"id"`
	ProjectID         uuid.UUID       `json:"project_id"`
	ComponentID       *uuid.UUID      `json:"component_id,omitempty"`
	ComponentName     string          `json:"component_name,omitempty"`
	CustomName        string          `json:"custom_name,omitempty"`
	DisplayName       string          `json:"display_name"`
	QuantityRequired  int             `json:"quantity_required"`
	QuantityFromStock int             `json:"quantity_from_stock"`
	QuantityToBuy     int             `json:"quantity_to_buy"`
	IsFulfilled       bool            `json:"is_fulfilled"`
	Type              models.ItemType `json:"type"`
	Offers            []OfferResponse `json:"offers,omitempty"`
}

// CostTotal is the sum of selected offers in one currency
type CostTotal struct {
	Currency string          `json:"currency"`
	Total    decimal.Decimal `json:"total"`
}

// ProjectDetailResponse represents a project with its current fulfilment state
type ProjectDetailResponse struct {
	ProjectResponse
	Items          []ProjectItemResponse `json:"items"`
	ItemsToBuy     int                   `json:"items_to_buy"`
	ItemsUnpriced  int                   `json:"items_unpriced"`
	SelectedTotals []CostTotal           `json:"selected_totals"`
}

// Create creates a new project in planning status
func (s *ProjectService) Create(ctx context.Context, req *CreateProjectRequest) (*ProjectResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	project := &models.Project{
		Name:           strings.TrimSpace(req.Name),
		Description:    req.Description,
		Status:         models.ProjectStatusPlanning,
		EstimatedHours: req.EstimatedHours,
	}
	if err := s.store.WithContext(ctx).Projects().Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return toProjectResponse(project), nil
}

// List retrieves projects, newest first
func (s *ProjectService) List(ctx context.Context, limit, offset int) (*ProjectListResponse, error) {
	limit, offset = normalizePagination(limit, offset)
	projects, total, err := s.store.WithContext(ctx).Projects().GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *toProjectResponse(&projects[i])
	}

	return &ProjectListResponse{
		Projects: responses,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// GetDetails recomputes the allocation of a project and returns it with items and offers
func (s *ProjectService) GetDetails(ctx context.Context, id uuid.UUID) (*ProjectDetailResponse, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	items, err := s.planner.recalculate(ctx, id)
	if err != nil {
		return nil, err
	}

	store := s.store.WithContext(ctx)
	project, err := getProject(store, id)
	if err != nil {
		return nil, err
	}

	offers, err := store.SupplierOffers().GetByProjectID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get offers: %w", err)
	}
	names, err := componentNames(store, items)
	if err != nil {
		return nil, err
	}
	suppliers, err := supplierNames(store, offers)
	if err != nil {
		return nil, err
	}

	offersByItem := make(map[uuid.UUID][]OfferResponse)
	for i := range offers {
		offersByItem[offers[i].ProjectItemID] = append(offersByItem[offers[i].ProjectItemID], toOfferResponse(&offers[i], suppliers))
	}

	detail := &ProjectDetailResponse{
		ProjectResponse: *toProjectResponse(project),
		Items:           make([]ProjectItemResponse, len(items)),
	}
	totals := make(map[string]decimal.Decimal)
	var currencies []string
	for i := range items {
		item := &items[i]
		resp := toProjectItemResponse(item, names)
		resp.Offers = offersByItem[item.ID]
		detail.Items[i] = resp

		if item.QuantityToBuy <= 0 {
			continue
		}
		detail.ItemsToBuy++

		selected := false
		for _, o := range resp.Offers {
			if !o.IsSelected {
				continue
			}
			selected = true
			if _, ok := totals[o.Currency]; !ok {
				currencies = append(currencies, o.Currency)
			}
			totals[o.Currency] = totals[o.Currency].Add(o.UnitPrice.Mul(decimal.NewFromInt(int64(item.QuantityToBuy))))
		}
		if !selected {
			detail.ItemsUnpriced++
		}
	}
	detail.SelectedTotals = make([]CostTotal, 0, len(currencies))
	for _, c := range currencies {
		detail.SelectedTotals = append(detail.SelectedTotals, CostTotal{Currency: c, Total: totals[c]})
	}

	return detail, nil
}

// Update updates a project. Moving to ordered or received stamps the matching date once.
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", "must be one of: planning ordered received completed")
	}

	store := s.store.WithContext(ctx)
	project, err := getProject(store, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.EstimatedHours != nil {
		project.EstimatedHours = *req.EstimatedHours
	}
	if req.RealHours != nil {
		project.RealHours = *req.RealHours
	}
	if req.Status != nil {
		applyStatus(project, *req.Status, time.Now())
	}

	if err := store.Projects().Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return toProjectResponse(project), nil
}

func applyStatus(project *models.Project, status models.ProjectStatus, now time.Time) {
	project.Status = status
	switch status {
	case models.ProjectStatusOrdered:
		if project.OrderedAt == nil {
			project.OrderedAt = &now
		}
	case models.ProjectStatusReceived, models.ProjectStatusCompleted:
		if project.OrderedAt == nil {
			project.OrderedAt = &now
		}
		if project.ReceivedAt == nil {
			project.ReceivedAt = &now
		}
	}
}

// Delete deletes an unlocked project with its items and offers. Ledger rows that
// referenced the project are kept and lose the reference.
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		project, err := tx.Projects().GetByIDForUpdate(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProjectNotFound
			}
			return fmt.Errorf("failed to get project: %w", err)
		}
		if project.IsLocked() {
			return apperrors.ErrProjectLocked
		}

		if err := tx.Transactions().DetachProject(id); err != nil {
			return fmt.Errorf("failed to detach ledger rows: %w", err)
		}
		if err := tx.SupplierOffers().DeleteByProjectID(id); err != nil {
			return fmt.Errorf("failed to delete offers: %w", err)
		}
		if err := tx.ProjectItems().DeleteByProjectID(id); err != nil {
			return fmt.Errorf("failed to delete items: %w", err)
		}
		if err := tx.Projects().Delete(id); err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithField("project_id", id.String()).Info("Project deleted")
	return nil
}

// AddItem adds a requirement line and recomputes the allocation
func (s *ProjectService) AddItem(ctx context.Context, projectID uuid.UUID, req *AddItemRequest) (*ProjectItemResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	customName := strings.TrimSpace(req.CustomName)
	hasComponent := req.ComponentID != nil && *req.ComponentID != uuid.Nil
	if hasComponent == (customName != "") {
		return nil, apperrors.NewValidationError("", "exactly one of component_id and custom_name is required")
	}
	itemType := req.Type
	if itemType == "" {
		itemType = models.ItemTypePart
	}
	if !itemType.IsValid() {
		return nil, apperrors.NewValidationError("type", "must be one of: part material tool other")
	}

	item := &models.ProjectItem{
		ProjectID:        projectID,
		QuantityRequired: req.QuantityRequired,
		Type:             itemType,
	}
	if hasComponent {
		id := *req.ComponentID
		item.ComponentID = &id
	} else {
		item.CustomName = customName
	}

	return s.mutateItems(ctx, projectID, func(tx *repository.Store) (uuid.UUID, error) {
		if hasComponent {
			if _, err := tx.Components().GetByID(*item.ComponentID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return uuid.Nil, apperrors.ErrComponentNotFound
				}
				return uuid.Nil, fmt.Errorf("failed to get component: %w", err)
			}
		}
		if err := tx.ProjectItems().Create(item); err != nil {
			return uuid.Nil, fmt.Errorf("failed to create item: %w", err)
		}
		return item.ID, nil
	})
}

// UpdateItem changes the quantity or type of a requirement line and recomputes the allocation
func (s *ProjectService) UpdateItem(ctx context.Context, projectID, itemID uuid.UUID, req *UpdateItemRequest) (*ProjectItemResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if req.Type != nil && !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", "must be one of: part material tool other")
	}

	return s.mutateItems(ctx, projectID, func(tx *repository.Store) (uuid.UUID, error) {
		item, err := getProjectItem(tx, projectID, itemID)
		if err != nil {
			return uuid.Nil, err
		}
		if req.QuantityRequired != nil {
			item.QuantityRequired = *req.QuantityRequired
		}
		if req.Type != nil {
			item.Type = *req.Type
		}
		if err := tx.ProjectItems().Update(item); err != nil {
			return uuid.Nil, fmt.Errorf("failed to update item: %w", err)
		}
		return item.ID, nil
	})
}

// SetItemFulfilled marks a line as resolved outside the stock and purchase flow, or clears the mark
func (s *ProjectService) SetItemFulfilled(ctx context.Context, projectID, itemID uuid.UUID, fulfilled bool) (*ProjectItemResponse, error) {
	return s.mutateItems(ctx, projectID, func(tx *repository.Store) (uuid.UUID, error) {
		item, err := getProjectItem(tx, projectID, itemID)
		if err != nil {
			return uuid.Nil, err
		}
		item.IsFulfilled = fulfilled
		if err := tx.ProjectItems().Update(item); err != nil {
			return uuid.Nil, fmt.Errorf("failed to update item: %w", err)
		}
		return item.ID, nil
	})
}

// DeleteItem removes a requirement line with its offers and recomputes the allocation
func (s *ProjectService) DeleteItem(ctx context.Context, projectID, itemID uuid.UUID) error {
	_, err := s.mutateItems(ctx, projectID, func(tx *repository.Store) (uuid.UUID, error) {
		if _, err := getProjectItem(tx, projectID, itemID); err != nil {
			return uuid.Nil, err
		}
		if err := tx.SupplierOffers().DeleteByItemID(itemID); err != nil {
			return uuid.Nil, fmt.Errorf("failed to delete offers: %w", err)
		}
		if err := tx.ProjectItems().Delete(itemID); err != nil {
			return uuid.Nil, fmt.Errorf("failed to delete item: %w", err)
		}
		return uuid.Nil, nil
	})
	return err
}

// mutateItems runs mutate and the allocation recompute in one transaction under the project
// lock. mutate returns the ID of the item to report back, or uuid.Nil.
func (s *ProjectService) mutateItems(ctx context.Context, projectID uuid.UUID, mutate func(tx *repository.Store) (uuid.UUID, error)) (*ProjectItemResponse, error) {
	unlock := s.locks.Lock(projectID)
	defer unlock()

	var (
		items  []models.ProjectItem
		itemID uuid.UUID
		names  map[uuid.UUID]string
	)
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		project, err := tx.Projects().GetByIDForUpdate(projectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProjectNotFound
			}
			return fmt.Errorf("failed to get project: %w", err)
		}
		if project.IsLocked() {
			return apperrors.ErrProjectLocked
		}

		if itemID, err = mutate(tx); err != nil {
			return err
		}

		if items, err = s.planner.recalculateTx(ctx, tx, projectID); err != nil {
			return err
		}
		names, err = componentNames(tx, items)
		return err
	})
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID == itemID {
			resp := toProjectItemResponse(&items[i], names)
			return &resp, nil
		}
	}
	return nil, nil
}

func getProject(store *repository.Store, id uuid.UUID) (*models.Project, error) {
	project, err := store.Projects().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

func getProjectItem(store *repository.Store, projectID, itemID uuid.UUID) (*models.ProjectItem, error) {
	item, err := store.ProjectItems().GetByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectItemNotFound
		}
		return nil, fmt.Errorf("failed to get project item: %w", err)
	}
	if item.ProjectID != projectID {
		return nil, apperrors.ErrProjectItemNotFound
	}
	return item, nil
}

// componentNames maps the components referenced by items to their names. Deleted
// components are looked up as well so existing lines keep their label.
func componentNames(store *repository.Store, items []models.ProjectItem) (map[uuid.UUID]string, error) {
	ids := componentIDs(items)
	components, err := store.Components().GetByIDsUnscoped(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get components: %w", err)
	}
	names := make(map[uuid.UUID]string, len(components))
	for _, c := range components {
		names[c.ID] = c.Name
	}
	return names, nil
}

// itemDisplayName is the component name, else the custom name, else "Unknown"
func itemDisplayName(item *models.ProjectItem, names map[uuid.UUID]string) string {
	if item.HasComponent() {
		if name, ok := names[*item.ComponentID]; ok && name != "" {
			return name
		}
	}
	if item.CustomName != "" {
		return item.CustomName
	}
	return "Unknown"
}

func toProjectResponse(p *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Status:         p.Status,
		EstimatedHours: p.EstimatedHours,
		RealHours:      p.RealHours,
		OrderedAt:      p.OrderedAt,
		ReceivedAt:     p.ReceivedAt,
		ConsumedAt:     p.ConsumedAt,
		IsLocked:       p.IsLocked(),
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.Format(time.RFC3339),
	}
}

func toProjectItemResponse(item *models.ProjectItem, names map[uuid.UUID]string) ProjectItemResponse {
	resp := ProjectItemResponse{
		ID:                item.ID,
		ProjectID:         item.ProjectID,
		ComponentID:       item.ComponentID,
		CustomName:        item.CustomName,
		DisplayName:       itemDisplayName(item, names),
		QuantityRequired:  item.QuantityRequired,
		QuantityFromStock: item.QuantityFromStock,
		QuantityToBuy:     item.QuantityToBuy,
		IsFulfilled:       item.IsFulfilled,
		Type:              item.Type,
	}
	if item.HasComponent() {
		resp.ComponentName = names[*item.ComponentID]
	}
	return resp
}
