package handlers

import (
	"net/http"
	"strconv"
	"time"

	"parts-inventory-backend/internal/database/models"
	"parts-inventory-backend/internal/repository"
	"parts-inventory-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportHandler handles stock and ledger reports
type ReportHandler struct {
	reportService service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Summary handles GET /reports/summary
// @Summary Inventory overview
// @Description Number of components, pieces in stock and components below their reorder point
// @Tags reports
// @Produce json
// @Success 200 {object} service.InventorySummary
// @Failure 500 {object} ErrorResponse
// @Router /reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.reportService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// LowStock handles GET /reports/low-stock
// @Summary Components at or below their reorder point
// @Tags reports
// @Produce json
// @Param filter query string false "all, out or low" default(all)
// @Success 200 {array} service.LowStockEntry
// @Failure 400 {object} ErrorResponse
// @Router /reports/low-stock [get]
func (h *ReportHandler) LowStock(c *gin.Context) {
	entries, err := h.reportService.LowStock(c.Request.Context(), c.DefaultQuery("filter", service.LowStockFilterAll))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// Consumption handles GET /reports/consumption
// @Summary Component usage over a period
// @Tags reports
// @Produce json
// @Param days query int false "Period length in days (1-365)" default(30)
// @Param projects_only query bool false "Count only project consumption"
// @Success 200 {object} service.ConsumptionReport
// @Failure 400 {object} ErrorResponse
// @Router /reports/consumption [get]
func (h *ReportHandler) Consumption(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid days parameter"})
		return
	}
	projectsOnly, err := strconv.ParseBool(c.DefaultQuery("projects_only", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid projects_only parameter"})
		return
	}

	report, err := h.reportService.Consumption(c.Request.Context(), days, projectsOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ListTransactions handles GET /transactions
// @Summary Browse the inventory ledger
// @Tags reports
// @Produce json
// @Param component_id query string false "Component ID (UUID)"
// @Param project_id query string false "Project ID (UUID)"
// @Param type query string false "add, use or adjust"
// @Param from query string false "RFC3339 lower bound (inclusive)"
// @Param to query string false "RFC3339 upper bound (exclusive)"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.TransactionListResponse
// @Failure 400 {object} ErrorResponse
// @Router /transactions [get]
func (h *ReportHandler) ListTransactions(c *gin.Context) {
	filter := repository.TransactionFilter{
		Type: models.TransactionType(c.Query("type")),
	}

	var ok bool
	if filter.ComponentID, ok = optionalUUIDQuery(c, "component_id"); !ok {
		return
	}
	if filter.ProjectID, ok = optionalUUIDQuery(c, "project_id"); !ok {
		return
	}
	if filter.From, ok = optionalTimeQuery(c, "from"); !ok {
		return
	}
	if filter.To, ok = optionalTimeQuery(c, "to"); !ok {
		return
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	result, err := h.reportService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func optionalUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return nil, false
	}
	return &id, true
}

func optionalTimeQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name + ": expected RFC3339"})
		return nil, false
	}
	return &t, true
}
