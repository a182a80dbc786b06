package handlers

import (
	"net/http"
	"strconv"

	"parts-inventory-backend/internal/repository"
	"parts-inventory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ComponentHandler handles HTTP requests for stocked components
type ComponentHandler struct {
	componentService service.ComponentServiceInterface
	reportService    service.ReportServiceInterface
}

// NewComponentHandler creates a new component handler
func NewComponentHandler(componentService service.ComponentServiceInterface, reportService service.ReportServiceInterface) *ComponentHandler {
	return &ComponentHandler{
		componentService: componentService,
		reportService:    reportService,
	}
}

// ListComponents handles GET /components
// @Summary List components
// @Description List stocked components, optionally filtered by a search term over name, manufacturer and part number and by storage location
// @Tags components
// @Produce json
// @Param q query string false "Search term"
// @Param location_id query string false "Location ID (UUID), overrides rack, drawer and box"
// @Param rack query string false "Rack"
// @Param drawer query string false "Drawer"
// @Param box query string false "Box"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.ComponentListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /components [get]
func (h *ComponentHandler) ListComponents(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := repository.ComponentFilter{
		Query:  c.Query("q"),
		Rack:   c.Query("rack"),
		Drawer: c.Query("drawer"),
		Box:    c.Query("box"),
	}
	var ok bool
	if filter.LocationID, ok = optionalUUIDQuery(c, "location_id"); !ok {
		return
	}

	components, err := h.componentService.List(c.Request.Context(), filter, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, components)
}

// CreateComponent handles POST /components
// @Summary Create a component
// @Description Create a stocked component. A positive initial quantity is booked in the ledger.
// @Tags components
// @Accept json
// @Produce json
// @Param component body service.CreateComponentRequest true "Component data"
// @Success 201 {object} service.ComponentResponse
// @Failure 400 {object} ErrorResponse
// @Router /components [post]
func (h *ComponentHandler) CreateComponent(c *gin.Context) {
	var req service.CreateComponentRequest
	if !bindJSON(c, &req) {
		return
	}

	component, err := h.componentService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, component)
}

// GetComponent handles GET /components/:id
// @Summary Get component by ID
// @Tags components
// @Produce json
// @Param id path string true "Component ID (UUID)"
// @Success 200 {object} service.ComponentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /components/{id} [get]
func (h *ComponentHandler) GetComponent(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "component")
	if !ok {
		return
	}

	component, err := h.componentService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, component)
}

// UpdateComponent handles PUT /components/:id
// @Summary Update component
// @Description Update the descriptive fields of a component. The quantity changes only through the stock endpoints.
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Component ID (UUID)"
// @Param component body service.UpdateComponentRequest true "Updated fields"
// @Success 200 {object} service.ComponentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /components/{id} [put]
func (h *ComponentHandler) UpdateComponent(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "component")
	if !ok {
		return
	}

	var req service.UpdateComponentRequest
	if !bindJSON(c, &req) {
		return
	}

	component, err := h.componentService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, component)
}

// DeleteComponent handles DELETE /components/:id
// @Summary Delete component
// @Description Delete a component that no unconsumed project references
// @Tags components
// @Param id path string true "Component ID (UUID)"
// @Success 204 "Component deleted"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Component is still planned by a project"
// @Router /components/{id} [delete]
func (h *ComponentHandler) DeleteComponent(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "component")
	if !ok {
		return
	}

	if err := h.componentService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddStock handles POST /components/:id/stock/add
// @Summary Receive stock
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Component ID (UUID)"
// @Param change body service.StockChangeRequest true "Received amount"
// @Success 200 {object} service.ComponentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /components/{id}/stock/add [post]
func (h *ComponentHandler) AddStock(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "component")
	if !ok {
		return
	}

	var req service.StockChangeRequest
	if !bindJSON(c, &req) {
		return
	}

	component, err := h.componentService.AddStock(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, component)
}

// UseStock handles POST /components/:id/stock/use
// @Summary Withdraw stock
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Component ID (UUID)"
// @Param change body service.StockChangeRequest true "Withdrawn amount"
// @Success 200 {object} service.ComponentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} InsufficientStockResponse
// @Router /components/{id}/stock/use [post]
func (h *ComponentHandler) UseStock(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "component")
	if !ok {
		return
	}

	var req service.StockChangeRequest
	if !bindJSON(c, &req) {
		return
	}

	component, err := h.componentService.UseStock(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, component)
}

// AdjustStock handles POST /components/:id/stock/adjust
// @Summary Correct stock after a stocktake
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Component ID (UUID)"
// @Param change body service.AdjustStockRequest true "Counted quantity"
// @Success 200 {object} service.ComponentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /components/{id}/stock/adjust [post]
func (h *ComponentHandler) AdjustStock(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "component")
	if !ok {
		return
	}

	var req service.AdjustStockRequest
	if !bindJSON(c, &req) {
		return
	}

	component, err := h.componentService.AdjustStock(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, component)
}

// GetComponentTransactions handles GET /components/:id/transactions
// @Summary Ledger history of a component
// @Tags components
// @Produce json
// @Param id path string true "Component ID (UUID)"
// @Param limit query int false "Number of rows to return" default(50)
// @Success 200 {array} service.TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Router /components/{id}/transactions [get]
func (h *ComponentHandler) GetComponentTransactions(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "component")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	rows, err := h.reportService.TransactionHistory(c.Request.Context(), id, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
