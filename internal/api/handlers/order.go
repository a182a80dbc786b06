package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"parts-inventory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// OrderHandler handles stock consumption and purchase order export
type OrderHandler struct {
	consumptionService service.ConsumptionServiceInterface
	exportService      service.ExportServiceInterface
	defaultBOM         bool
}

// NewOrderHandler creates a new order handler. defaultBOM applies when the
// CSV request carries no bom query parameter.
func NewOrderHandler(consumptionService service.ConsumptionServiceInterface, exportService service.ExportServiceInterface, defaultBOM bool) *OrderHandler {
	return &OrderHandler{
		consumptionService: consumptionService,
		exportService:      exportService,
		defaultBOM:         defaultBOM,
	}
}

// Consume handles POST /projects/:id/consume
// @Summary Consume project items from stock
// @Description Deduct every allocated quantity in one transaction and lock the project
// @Tags orders
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.ConsumptionResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Project already consumed"
// @Failure 422 {object} InsufficientStockResponse
// @Router /projects/{id}/consume [post]
func (h *OrderHandler) Consume(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "project")
	if !ok {
		return
	}

	result, err := h.consumptionService.ConsumeFromStock(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetOrderLines handles GET /projects/:id/order
// @Summary Preview the purchase order
// @Tags orders
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} service.OrderLine
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "No offers selected"
// @Router /projects/{id}/order [get]
func (h *OrderHandler) GetOrderLines(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "project")
	if !ok {
		return
	}

	lines, err := h.exportService.OrderLines(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lines)
}

// ExportCSV handles GET /projects/:id/order.csv
// @Summary Export the purchase order as CSV
// @Description Semicolon separated, one row per item with a selected offer
// @Tags orders
// @Produce text/csv
// @Param id path string true "Project ID (UUID)"
// @Param bom query bool false "Prefix the file with a UTF-8 byte order mark"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "No offers selected"
// @Router /projects/{id}/order.csv [get]
func (h *OrderHandler) ExportCSV(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "project")
	if !ok {
		return
	}

	withBOM := h.defaultBOM
	if raw := c.Query("bom"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid bom parameter"})
			return
		}
		withBOM = parsed
	}

	data, err := h.exportService.ExportOrderCSV(c.Request.Context(), id, withBOM)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", attachment(id.String(), "csv"))
	c.Data(http.StatusOK, csvContentType, data)
}

// ExportXLSX handles GET /projects/:id/order.xlsx
// @Summary Export the purchase order as an Excel workbook
// @Tags orders
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Project ID (UUID)"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "No offers selected"
// @Router /projects/{id}/order.xlsx [get]
func (h *OrderHandler) ExportXLSX(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "project")
	if !ok {
		return
	}

	data, err := h.exportService.ExportOrderXLSX(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", attachment(id.String(), "xlsx"))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func attachment(projectID, ext string) string {
	return fmt.Sprintf("attachment; filename=\"order-%s.%s\"", projectID, ext)
}
