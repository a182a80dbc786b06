package handlers_test

import (
	"net/http"
	"testing"

	"parts-inventory-backend/internal/api/handlers"
	apperrors "parts-inventory-backend/internal/errors"
	"parts-inventory-backend/internal/mocks"
	"parts-inventory-backend/internal/service"
	"parts-inventory-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LocationHandlerTestSuite defines the test suite for LocationHandler
type LocationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockLocationServiceInterface
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *LocationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockLocationServiceInterface(suite.ctrl)
	handler := handlers.NewLocationHandler(suite.mockService)

	suite.router = gin.New()
	locations := suite.router.Group("/locations")
	locations.GET("", handler.ListLocations)
	locations.POST("", handler.CreateLocation)
	locations.GET("/racks", handler.ListRacks)
	locations.GET("/drawers", handler.ListDrawers)
	locations.GET("/boxes", handler.ListBoxes)
	locations.GET("/:id", handler.GetLocation)
	locations.DELETE("/:id", handler.DeleteLocation)
}

// TearDownTest cleans up after each test
func (suite *LocationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateLocation tests the CreateLocation handler
func (suite *LocationHandlerTestSuite) TestCreateLocation() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().
			Create(gomock.Any(), &service.CreateLocationRequest{Rack: "A", Drawer: "1", Box: "3"}).
			Return(&service.LocationResponse{ID: id, Rack: "A", Drawer: "1", Box: "3", DisplayName: "A-1-3"}, nil)

		w := testutils.PerformRequest(suite.router, http.MethodPost, "/locations",
			map[string]string{"rack": "A", "drawer": "1", "box": "3"})

		var resp service.LocationResponse
		testutils.AssertJSONResponse(t, w, http.StatusCreated, &resp)
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, "A-1-3", resp.DisplayName)
	})

	suite.T().Run("Duplicate", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrLocationExists)

		w := testutils.PerformRequest(suite.router, http.MethodPost, "/locations", map[string]string{"rack": "A"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	suite.T().Run("Malformed Body", func(t *testing.T) {
		w := testutils.PerformRequest(suite.router, http.MethodPost, "/locations", "rack A")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestListLocations tests the ListLocations handler
func (suite *LocationHandlerTestSuite) TestListLocations() {
	suite.mockService.EXPECT().List(gomock.Any(), "B", "").
		Return([]service.LocationResponse{{Rack: "B", DisplayName: "B"}}, nil)

	w := testutils.PerformRequest(suite.router, http.MethodGet, "/locations?rack=B", nil)

	var resp []service.LocationResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	suite.Len(resp, 1)
}

// TestGetLocation tests the GetLocation handler
func (suite *LocationHandlerTestSuite) TestGetLocation() {
	suite.T().Run("Found", func(t *testing.T) {
		id := uuid.New()
		count := int64(4)
		suite.mockService.EXPECT().GetByID(gomock.Any(), id).
			Return(&service.LocationResponse{ID: id, Rack: "A", DisplayName: "A", ComponentCount: &count}, nil)

		w := testutils.PerformRequest(suite.router, http.MethodGet, "/locations/"+id.String(), nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"component_count":4`)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().GetByID(gomock.Any(), id).Return(nil, apperrors.ErrLocationNotFound)

		w := testutils.PerformRequest(suite.router, http.MethodGet, "/locations/"+id.String(), nil)
		testutils.AssertErrorResponse(t, w, http.StatusNotFound, "location not found")
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		w := testutils.PerformRequest(suite.router, http.MethodGet, "/locations/shelf", nil)
		testutils.AssertErrorResponse(t, w, http.StatusBadRequest, "invalid location ID")
	})
}

// TestDeleteLocation tests the DeleteLocation handler
func (suite *LocationHandlerTestSuite) TestDeleteLocation() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), id).Return(nil)

	w := testutils.PerformRequest(suite.router, http.MethodDelete, "/locations/"+id.String(), nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

// TestLookups tests the rack, drawer and box lookups
func (suite *LocationHandlerTestSuite) TestLookups() {
	suite.T().Run("Racks", func(t *testing.T) {
		suite.mockService.EXPECT().Racks(gomock.Any()).Return([]string{"A", "B"}, nil)

		w := testutils.PerformRequest(suite.router, http.MethodGet, "/locations/racks", nil)

		var racks []string
		testutils.AssertJSONResponse(t, w, http.StatusOK, &racks)
		assert.Equal(t, []string{"A", "B"}, racks)
	})

	suite.T().Run("Drawers", func(t *testing.T) {
		suite.mockService.EXPECT().Drawers(gomock.Any(), "A").Return([]string{"1", "2"}, nil)

		w := testutils.PerformRequest(suite.router, http.MethodGet, "/locations/drawers?rack=A", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	suite.T().Run("Drawers Without Rack", func(t *testing.T) {
		suite.mockService.EXPECT().Drawers(gomock.Any(), "").
			Return(nil, apperrors.NewValidationError("rack", "is required"))

		w := testutils.PerformRequest(suite.router, http.MethodGet, "/locations/drawers", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	suite.T().Run("Boxes", func(t *testing.T) {
		boxID := uuid.New()
		suite.mockService.EXPECT().Boxes(gomock.Any(), "A", "1").
			Return([]service.BoxOption{{ID: boxID, Box: "3"}}, nil)

		w := testutils.PerformRequest(suite.router, http.MethodGet, "/locations/boxes?rack=A&drawer=1", nil)

		var boxes []service.BoxOption
		testutils.AssertJSONResponse(t, w, http.StatusOK, &boxes)
		assert.Equal(t, []service.BoxOption{{ID: boxID, Box: "3"}}, boxes)
	})
}

// Run the test suite
func TestLocationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LocationHandlerTestSuite))
}
