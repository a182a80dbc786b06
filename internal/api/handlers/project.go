package handlers

import (
	"net/http"
	"strconv"

	"parts-inventory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for projects and their requirement lines
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// SetFulfilledRequest toggles the fulfilled flag of an item
type SetFulfilledRequest struct {
	Fulfilled *bool `json:"fulfilled" binding:"required"`
}

// ListProjects handles GET /projects
// @Summary List projects
// @Tags projects
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.ProjectListResponse
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	projects, err := h.projectService.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// CreateProject handles POST /projects
// @Summary Create a new project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} service.ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req service.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProject handles GET /projects/:id
// @Summary Get project details
// @Description Recompute the stock allocation and return the project with its items and offers
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.ProjectDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "project")
	if !ok {
		return
	}

	project, err := h.projectService.GetDetails(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProject handles PUT /projects/:id
// @Summary Update project
// @Description Update name, description, status or hours. Allowed on consumed projects.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param project body service.UpdateProjectRequest true "Updated project data"
// @Success 200 {object} service.ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "project")
	if !ok {
		return
	}

	var req service.UpdateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /projects/:id
// @Summary Delete project
// @Tags projects
// @Param id path string true "Project ID (UUID)"
// @Success 204 "Project deleted"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Project is locked"
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "project")
	if !ok {
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddItem handles POST /projects/:id/items
// @Summary Add a requirement line
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param item body service.AddItemRequest true "Item data"
// @Success 201 {object} service.ProjectItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Project is locked"
// @Router /projects/{id}/items [post]
func (h *ProjectHandler) AddItem(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "project")
	if !ok {
		return
	}

	var req service.AddItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.projectService.AddItem(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateItem handles PUT /projects/:id/items/:itemId
// @Summary Update a requirement line
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param itemId path string true "Item ID (UUID)"
// @Param item body service.UpdateItemRequest true "Updated fields"
// @Success 200 {object} service.ProjectItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Project is locked"
// @Router /projects/{id}/items/{itemId} [put]
func (h *ProjectHandler) UpdateItem(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "project")
	if !ok {
		return
	}
	itemID, ok := parseUUIDParam(c, "itemId", "item")
	if !ok {
		return
	}

	var req service.UpdateItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.projectService.UpdateItem(c.Request.Context(), id, itemID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// SetItemFulfilled handles PUT /projects/:id/items/:itemId/fulfilled
// @Summary Mark a requirement line as fulfilled
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param itemId path string true "Item ID (UUID)"
// @Param body body SetFulfilledRequest true "Fulfilled flag"
// @Success 200 {object} service.ProjectItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Project is locked"
// @Router /projects/{id}/items/{itemId}/fulfilled [put]
func (h *ProjectHandler) SetItemFulfilled(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "project")
	if !ok {
		return
	}
	itemID, ok := parseUUIDParam(c, "itemId", "item")
	if !ok {
		return
	}

	var req SetFulfilledRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.projectService.SetItemFulfilled(c.Request.Context(), id, itemID, *req.Fulfilled)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /projects/:id/items/:itemId
// @Summary Delete a requirement line
// @Tags projects
// @Param id path string true "Project ID (UUID)"
// @Param itemId path string true "Item ID (UUID)"
// @Success 204 "Item deleted"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Project is locked"
// @Router /projects/{id}/items/{itemId} [delete]
func (h *ProjectHandler) DeleteItem(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "project")
	if !ok {
		return
	}
	itemID, ok := parseUUIDParam(c, "itemId", "item")
	if !ok {
		return
	}

	if err := h.projectService.DeleteItem(c.Request.Context(), id, itemID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
