package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"parts-inventory-backend/internal/database/models"
	apperrors "parts-inventory-backend/internal/errors"
	"parts-inventory-backend/internal/logger"
	"parts-inventory-backend/internal/repository"
	"parts-inventory-backend/internal/supplier"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const defaultOfferCurrency = "CZK"

// OfferAggregator queries every configured supplier connector for the lines of a project
// that need purchasing and replaces the stored offers with the result
type OfferAggregator struct {
	store          *repository.Store
	planner        *PlanningService
	locks          *ProjectLocks
	connectors     []supplier.Connector
	timeout        time.Duration
	maxConcurrency int
}

// NewOfferAggregator creates a new offer aggregator
func NewOfferAggregator(store *repository.Store, planner *PlanningService, locks *ProjectLocks, connectors []supplier.Connector, timeout time.Duration, maxConcurrency int) *OfferAggregator {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return &OfferAggregator{
		store:          store,
		planner:        planner,
		locks:          locks,
		connectors:     connectors,
		timeout:        timeout,
		maxConcurrency: maxConcurrency,
	}
}

// SearchFailure describes one connector call that produced no offers because of an error
type SearchFailure struct {
	ItemID   uuid.UUID `json:"item_id"`
	Supplier string    `json:"supplier"`
	Error    string    `json:"error"`
}

// AggregationResult summarises one SearchOffers run
type AggregationResult struct {
	ProjectID     uuid.UUID       `json:"project_id"`
	ItemsSearched int             `json:"items_searched"`
	OffersFound   int             `json:"offers_found"`
	Failures      []SearchFailure `json:"failures"`
}

type searchTask struct {
	item      *models.ProjectItem
	request   supplier.SearchRequest
	connector supplier.Connector
	offers    []supplier.Offer
}

// SearchOffers refreshes the offers of every line with a quantity to buy. Connector errors,
// timeouts and panics are logged and count as "no offer". The stored offer set is replaced
// in a single transaction once every call has returned.
func (a *OfferAggregator) SearchOffers(ctx context.Context, projectID uuid.UUID) (*AggregationResult, error) {
	ctx = logger.ContextWithProject(ctx, projectID.String())
	unlock := a.locks.Lock(projectID)
	defer unlock()

	project, err := getProject(a.store.WithContext(ctx), projectID)
	if err != nil {
		return nil, err
	}
	if project.IsLocked() {
		return nil, apperrors.ErrProjectLocked
	}

	items, err := a.planner.recalculate(ctx, projectID)
	if err != nil {
		return nil, err
	}
	requests, err := a.buildRequests(ctx, items)
	if err != nil {
		return nil, err
	}

	var tasks []*searchTask
	searched := 0
	for i := range items {
		item := &items[i]
		if item.QuantityToBuy <= 0 {
			continue
		}
		searched++
		for _, c := range a.connectors {
			tasks = append(tasks, &searchTask{item: item, request: requests[item.ID], connector: c})
		}
	}

	result := &AggregationResult{
		ProjectID:     projectID,
		ItemsSearched: searched,
		Failures:      []SearchFailure{},
	}

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(a.maxConcurrency)
	for _, task := range tasks {
		task := task // per-iteration copy (Go 1.22 loop semantics)
		g.Go(func() error {
			offers, err := a.search(ctx, task.connector, task.request)
			if err != nil {
				logger.WithContext(ctx).WithError(err).WithFields(map[string]interface{}{
					"supplier": task.connector.Name(),
					"item_id":  task.item.ID.String(),
					"query":    task.request.Query(),
				}).Warn("Supplier search failed")
				mu.Lock()
				result.Failures = append(result.Failures, SearchFailure{
					ItemID:   task.item.ID,
					Supplier: task.connector.Name(),
					Error:    err.Error(),
				})
				mu.Unlock()
				return nil
			}
			task.offers = filterOffers(offers, task.item.QuantityToBuy)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("offer search cancelled: %w", err)
	}

	if err := a.persist(ctx, projectID, tasks, result); err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"items_searched": result.ItemsSearched,
		"offers_found":   result.OffersFound,
		"failures":       len(result.Failures),
	}).Info("Supplier offers refreshed")
	return result, nil
}

type searchOutcome struct {
	offers []supplier.Offer
	err    error
}

// search runs one connector call with its own timeout and converts a panic into an error.
// The call is abandoned when the timeout fires, even if the connector ignores ctx; whatever
// it returns afterwards is dropped.
func (a *OfferAggregator) search(ctx context.Context, c supplier.Connector, req supplier.SearchRequest) ([]supplier.Offer, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	done := make(chan searchOutcome, 1)
	go func() {
		var out searchOutcome
		defer func() {
			if r := recover(); r != nil {
				out = searchOutcome{err: fmt.Errorf("connector panicked: %v", r)}
			}
			done <- out
		}()
		out.offers, out.err = c.Search(ctx, req)
	}()

	select {
	case out := <-done:
		return out.offers, out.err
	case <-ctx.Done():
		return nil, fmt.Errorf("supplier search aborted: %w", ctx.Err())
	}
}

// buildRequests describes every item in the terms connectors search for
func (a *OfferAggregator) buildRequests(ctx context.Context, items []models.ProjectItem) (map[uuid.UUID]supplier.SearchRequest, error) {
	components, err := a.store.WithContext(ctx).Components().GetByIDsUnscoped(componentIDs(items))
	if err != nil {
		return nil, fmt.Errorf("failed to get components: %w", err)
	}
	byID := make(map[uuid.UUID]*models.Component, len(components))
	for i := range components {
		byID[components[i].ID] = &components[i]
	}

	requests := make(map[uuid.UUID]supplier.SearchRequest, len(items))
	for _, item := range items {
		item := item // per-iteration copy (Go 1.22 loop semantics)
		req := supplier.SearchRequest{
			PartNumber: item.CustomName,
			Name:       item.CustomName,
			Quantity:   item.QuantityToBuy,
		}
		if item.HasComponent() {
			if c, ok := byID[*item.ComponentID]; ok {
				req.PartNumber = c.ManufacturerPartNumber
				req.Name = c.Name
				req.Manufacturer = c.Manufacturer
			}
		}
		requests[item.ID] = req
	}
	return requests, nil
}

// filterOffers keeps the offers that can cover toBuy and normalises their fields
func filterOffers(offers []supplier.Offer, toBuy int) []supplier.Offer {
	kept := make([]supplier.Offer, 0, len(offers))
	for _, o := range offers {
		if !o.InStock {
			continue
		}
		if o.AvailableQty != nil && *o.AvailableQty < toBuy {
			continue
		}
		if o.UnitPrice.IsNegative() {
			continue
		}
		if o.MinOrderQty < 1 {
			o.MinOrderQty = 1
		}
		if o.Currency == "" {
			o.Currency = defaultOfferCurrency
		}
		kept = append(kept, o)
	}
	return kept
}

// persist replaces the offers of the project in one transaction. Tasks are written in
// dispatch order so the stored order does not depend on which connector answered first.
func (a *OfferAggregator) persist(ctx context.Context, projectID uuid.UUID, tasks []*searchTask, result *AggregationResult) error {
	return a.store.Transaction(ctx, func(tx *repository.Store) error {
		suppliers := make(map[string]uuid.UUID)
		for _, c := range a.connectors {
			id, err := ensureSupplier(tx, c)
			if err != nil {
				return err
			}
			suppliers[c.Name()] = id
		}

		if err := tx.SupplierOffers().DeleteByProjectID(projectID); err != nil {
			return fmt.Errorf("failed to delete offers: %w", err)
		}

		var rows []models.SupplierOffer
		for _, task := range tasks {
			for _, o := range task.offers {
				rows = append(rows, models.SupplierOffer{
					ProjectItemID:      task.item.ID,
					SupplierID:         suppliers[task.connector.Name()],
					SupplierPartNumber: truncateString(o.PartNumber, 100),
					Description:        truncateString(o.Description, 300),
					UnitPrice:          o.UnitPrice,
					Currency:           o.Currency,
					InStock:            o.InStock,
					MinOrderQty:        o.MinOrderQty,
					LeadTimeDays:       o.LeadTimeDays,
					ProductURL:         truncateString(o.ProductURL, 500),
				})
			}
		}
		if err := tx.SupplierOffers().CreateBatch(rows); err != nil {
			return fmt.Errorf("failed to store offers: %w", err)
		}
		result.OffersFound = len(rows)
		return nil
	})
}

// ensureSupplier returns the ID of the supplier row for c, creating it on first use
func ensureSupplier(tx *repository.Store, c supplier.Connector) (uuid.UUID, error) {
	row := &models.Supplier{
		Name:       c.Name(),
		WebsiteURL: c.WebsiteURL(),
		HasAPI:     c.HasAPI(),
	}
	if err := tx.Suppliers().CreateIfNotExists(row); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create supplier %s: %w", c.Name(), err)
	}
	existing, err := tx.Suppliers().GetByName(c.Name())
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to get supplier %s: %w", c.Name(), err)
	}
	return existing.ID, nil
}

func truncateString(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
