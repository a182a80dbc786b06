package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"parts-inventory-backend/internal/api/handlers"
	"parts-inventory-backend/internal/database/models"
	apperrors "parts-inventory-backend/internal/errors"
	"parts-inventory-backend/internal/mocks"
	"parts-inventory-backend/internal/service"
	"parts-inventory-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockProjectServiceInterface
	handler     *handlers.ProjectHandler
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *ProjectHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockProjectServiceInterface(suite.ctrl)
	suite.handler = handlers.NewProjectHandler(suite.mockService)
	suite.router = gin.New()

	projects := suite.router.Group("/projects")
	projects.GET("", suite.handler.ListProjects)
	projects.POST("", suite.handler.CreateProject)
	projects.GET("/:id", suite.handler.GetProject)
	projects.PUT("/:id", suite.handler.UpdateProject)
	projects.DELETE("/:id", suite.handler.DeleteProject)
	projects.POST("/:id/items", suite.handler.AddItem)
	projects.PUT("/:id/items/:itemId", suite.handler.UpdateItem)
	projects.DELETE("/:id/items/:itemId", suite.handler.DeleteItem)
	projects.PUT("/:id/items/:itemId/fulfilled", suite.handler.SetItemFulfilled)
}

// TearDownTest cleans up after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateProject tests the CreateProject handler
func (suite *ProjectHandlerTestSuite) TestCreateProject() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Create(gomock.Any(), &service.CreateProjectRequest{Name: "Amp", EstimatedHours: 4}).
		Return(&service.ProjectResponse{ID: id, Name: "Amp", Status: models.ProjectStatusPlanning}, nil)

	w := testutils.PerformRequest(suite.router, http.MethodPost, "/projects", map[string]interface{}{"name": "Amp", "estimated_hours": 4})

	suite.Equal(http.StatusCreated, w.Code)
	var resp service.ProjectResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(id, resp.ID)
	suite.Equal(models.ProjectStatusPlanning, resp.Status)
}

// TestGetProject tests the GetProject handler
func (suite *ProjectHandlerTestSuite) TestGetProject() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().GetDetails(gomock.Any(), id).Return(&service.ProjectDetailResponse{
			ProjectResponse: service.ProjectResponse{ID: id, Name: "Amp"},
			Items: []service.ProjectItemResponse{
				{ID: uuid.New(), DisplayName: "NE555", QuantityRequired: 10, QuantityFromStock: 7, QuantityToBuy: 3},
			},
			ItemsToBuy: 1,
		}, nil)

		w := testutils.PerformRequest(suite.router, http.MethodGet, "/projects/"+id.String(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp service.ProjectDetailResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Amp", resp.Name)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 7, resp.Items[0].QuantityFromStock)
		assert.Equal(t, 3, resp.Items[0].QuantityToBuy)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().GetDetails(gomock.Any(), id).Return(nil, apperrors.ErrProjectNotFound)

		w := testutils.PerformRequest(suite.router, http.MethodGet, "/projects/"+id.String(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		w := testutils.PerformRequest(suite.router, http.MethodGet, "/projects/123", nil)
		testutils.AssertErrorResponse(t, w, http.StatusBadRequest, "invalid project ID")
	})
}

// TestUpdateProject tests the UpdateProject handler
func (suite *ProjectHandlerTestSuite) TestUpdateProject() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Update(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req *service.UpdateProjectRequest) (*service.ProjectResponse, error) {
			suite.Require().NotNil(req.Status)
			suite.Equal(models.ProjectStatusOrdered, *req.Status)
			suite.Nil(req.Name)
			return &service.ProjectResponse{ID: id, Status: *req.Status}, nil
		})

	w := testutils.PerformRequest(suite.router, http.MethodPut, "/projects/"+id.String(), map[string]interface{}{"status": "ordered"})
	suite.Equal(http.StatusOK, w.Code)
}

// TestDeleteProject tests the DeleteProject handler
func (suite *ProjectHandlerTestSuite) TestDeleteProject() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Delete(gomock.Any(), id).Return(nil)

		w := testutils.PerformRequest(suite.router, http.MethodDelete, "/projects/"+id.String(), nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	suite.T().Run("Locked", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Delete(gomock.Any(), id).Return(apperrors.ErrProjectLocked)

		w := testutils.PerformRequest(suite.router, http.MethodDelete, "/projects/"+id.String(), nil)
		testutils.AssertErrorResponse(t, w, http.StatusConflict, "locked")
	})
}

// TestAddItem tests the AddItem handler
func (suite *ProjectHandlerTestSuite) TestAddItem() {
	suite.T().Run("Success", func(t *testing.T) {
		projectID := uuid.New()
		componentID := uuid.New()
		suite.mockService.EXPECT().
			AddItem(gomock.Any(), projectID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req *service.AddItemRequest) (*service.ProjectItemResponse, error) {
				require.NotNil(t, req.ComponentID)
				assert.Equal(t, componentID, *req.ComponentID)
				assert.Equal(t, 4, req.QuantityRequired)
				return &service.ProjectItemResponse{ID: uuid.New(), ProjectID: projectID, ComponentID: req.ComponentID, QuantityRequired: 4}, nil
			})

		w := testutils.PerformRequest(suite.router, http.MethodPost, "/projects/"+projectID.String()+"/items",
			map[string]interface{}{"component_id": componentID, "quantity_required": 4})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	suite.T().Run("Locked Project", func(t *testing.T) {
		projectID := uuid.New()
		suite.mockService.EXPECT().
			AddItem(gomock.Any(), projectID, gomock.Any()).
			Return(nil, apperrors.ErrProjectLocked)

		w := testutils.PerformRequest(suite.router, http.MethodPost, "/projects/"+projectID.String()+"/items",
			map[string]interface{}{"custom_name": "Heatsink", "quantity_required": 1})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

// TestItemRoutes tests UpdateItem, SetItemFulfilled and DeleteItem
func (suite *ProjectHandlerTestSuite) TestItemRoutes() {
	projectID := uuid.New()
	itemID := uuid.New()
	base := "/projects/" + projectID.String() + "/items/" + itemID.String()

	suite.T().Run("Update", func(t *testing.T) {
		qty := 6
		suite.mockService.EXPECT().
			UpdateItem(gomock.Any(), projectID, itemID, &service.UpdateItemRequest{QuantityRequired: &qty}).
			Return(&service.ProjectItemResponse{ID: itemID, QuantityRequired: qty}, nil)

		w := testutils.PerformRequest(suite.router, http.MethodPut, base, map[string]interface{}{"quantity_required": 6})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	suite.T().Run("Fulfilled", func(t *testing.T) {
		suite.mockService.EXPECT().
			SetItemFulfilled(gomock.Any(), projectID, itemID, true).
			Return(&service.ProjectItemResponse{ID: itemID, IsFulfilled: true}, nil)

		w := testutils.PerformRequest(suite.router, http.MethodPut, base+"/fulfilled", map[string]interface{}{"fulfilled": true})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	suite.T().Run("Fulfilled Missing Flag", func(t *testing.T) {
		w := testutils.PerformRequest(suite.router, http.MethodPut, base+"/fulfilled", map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	suite.T().Run("Delete Item Of Other Project", func(t *testing.T) {
		suite.mockService.EXPECT().
			DeleteItem(gomock.Any(), projectID, itemID).
			Return(apperrors.ErrProjectItemNotFound)

		w := testutils.PerformRequest(suite.router, http.MethodDelete, base, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	suite.T().Run("Invalid Item ID", func(t *testing.T) {
		w := testutils.PerformRequest(suite.router, http.MethodDelete, "/projects/"+projectID.String()+"/items/x", nil)
		testutils.AssertErrorResponse(t, w, http.StatusBadRequest, "invalid item ID")
	})
}

// Run the test suite
func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
