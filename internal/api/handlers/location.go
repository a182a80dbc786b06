package handlers

import (
	"net/http"

	"parts-inventory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LocationHandler handles HTTP requests for storage locations
type LocationHandler struct {
	locationService service.LocationServiceInterface
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationService service.LocationServiceInterface) *LocationHandler {
	return &LocationHandler{
		locationService: locationService,
	}
}

// ListLocations handles GET /locations
// @Summary List storage locations
// @Tags locations
// @Produce json
// @Param rack query string false "Rack"
// @Param drawer query string false "Drawer"
// @Success 200 {array} service.LocationResponse
// @Failure 500 {object} ErrorResponse
// @Router /locations [get]
func (h *LocationHandler) ListLocations(c *gin.Context) {
	locations, err := h.locationService.List(c.Request.Context(), c.Query("rack"), c.Query("drawer"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, locations)
}

// CreateLocation handles POST /locations
// @Summary Create a storage location
// @Description Create a rack, rack and drawer, or rack, drawer and box slot
// @Tags locations
// @Accept json
// @Produce json
// @Param location body service.CreateLocationRequest true "Location data"
// @Success 201 {object} service.LocationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Location already exists"
// @Router /locations [post]
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req service.CreateLocationRequest
	if !bindJSON(c, &req) {
		return
	}

	location, err := h.locationService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, location)
}

// GetLocation handles GET /locations/:id
// @Summary Get location by ID
// @Description Returns the location with the number of components stored there
// @Tags locations
// @Produce json
// @Param id path string true "Location ID (UUID)"
// @Success 200 {object} service.LocationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /locations/{id} [get]
func (h *LocationHandler) GetLocation(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "location")
	if !ok {
		return
	}

	location, err := h.locationService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, location)
}

// DeleteLocation handles DELETE /locations/:id
// @Summary Delete location
// @Description Delete a location. Components stored there lose their location.
// @Tags locations
// @Param id path string true "Location ID (UUID)"
// @Success 204 "Location deleted"
// @Failure 404 {object} ErrorResponse
// @Router /locations/{id} [delete]
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "location")
	if !ok {
		return
	}

	if err := h.locationService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListRacks handles GET /locations/racks
// @Summary List racks
// @Tags locations
// @Produce json
// @Success 200 {array} string
// @Router /locations/racks [get]
func (h *LocationHandler) ListRacks(c *gin.Context) {
	racks, err := h.locationService.Racks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, racks)
}

// ListDrawers handles GET /locations/drawers
// @Summary List the drawers of a rack
// @Tags locations
// @Produce json
// @Param rack query string true "Rack"
// @Success 200 {array} string
// @Failure 400 {object} ErrorResponse
// @Router /locations/drawers [get]
func (h *LocationHandler) ListDrawers(c *gin.Context) {
	drawers, err := h.locationService.Drawers(c.Request.Context(), c.Query("rack"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, drawers)
}

// ListBoxes handles GET /locations/boxes
// @Summary List the boxes of a drawer
// @Tags locations
// @Produce json
// @Param rack query string true "Rack"
// @Param drawer query string true "Drawer"
// @Success 200 {array} service.BoxOption
// @Failure 400 {object} ErrorResponse
// @Router /locations/boxes [get]
func (h *LocationHandler) ListBoxes(c *gin.Context) {
	boxes, err := h.locationService.Boxes(c.Request.Context(), c.Query("rack"), c.Query("drawer"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, boxes)
}
