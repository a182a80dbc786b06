package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"parts-inventory-backend/internal/api/handlers"
	apperrors "parts-inventory-backend/internal/errors"
	"parts-inventory-backend/internal/mocks"
	"parts-inventory-backend/internal/service"
	"parts-inventory-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OfferHandlerTestSuite defines the test suite for OfferHandler
type OfferHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockAggregator *mocks.MockOfferAggregatorInterface
	mockService    *mocks.MockOfferServiceInterface
	router         *gin.Engine
}

// SetupTest sets up the test suite
func (suite *OfferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAggregator = mocks.NewMockOfferAggregatorInterface(suite.ctrl)
	suite.mockService = mocks.NewMockOfferServiceInterface(suite.ctrl)
	handler := handlers.NewOfferHandler(suite.mockAggregator, suite.mockService)

	suite.router = gin.New()
	suite.router.POST("/projects/:id/offers/search", handler.SearchOffers)
	suite.router.GET("/projects/:id/offers", handler.ListOffers)
	suite.router.POST("/projects/:id/offers/auto-select", handler.AutoSelect)
	suite.router.POST("/offers/:id/select", handler.SelectOffer)
}

// TearDownTest cleans up after each test
func (suite *OfferHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestSearchOffers tests the SearchOffers handler
func (suite *OfferHandlerTestSuite) TestSearchOffers() {
	suite.T().Run("Partial Failure Still Succeeds", func(t *testing.T) {
		projectID := uuid.New()
		suite.mockAggregator.EXPECT().SearchOffers(gomock.Any(), projectID).Return(&service.AggregationResult{
			ProjectID:     projectID,
			ItemsSearched: 2,
			OffersFound:   3,
			Failures:      []service.SearchFailure{{ItemID: uuid.New(), Supplier: "TME", Error: "timeout"}},
		}, nil)

		w := testutils.PerformRequest(suite.router, http.MethodPost, "/projects/"+projectID.String()+"/offers/search", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp service.AggregationResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.OffersFound)
		require.Len(t, resp.Failures, 1)
		assert.Equal(t, "TME", resp.Failures[0].Supplier)
	})

	suite.T().Run("Locked Project", func(t *testing.T) {
		projectID := uuid.New()
		suite.mockAggregator.EXPECT().SearchOffers(gomock.Any(), projectID).Return(nil, apperrors.ErrProjectLocked)

		w := testutils.PerformRequest(suite.router, http.MethodPost, "/projects/"+projectID.String()+"/offers/search", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

// TestListOffers tests the ListOffers handler
func (suite *OfferHandlerTestSuite) TestListOffers() {
	projectID := uuid.New()
	suite.mockService.EXPECT().ListOffers(gomock.Any(), projectID).Return([]service.OfferResponse{
		{ID: uuid.New(), SupplierName: "Mock", UnitPrice: decimal.RequireFromString("9.99"), Currency: "CZK"},
	}, nil)

	w := testutils.PerformRequest(suite.router, http.MethodGet, "/projects/"+projectID.String()+"/offers", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []service.OfferResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.True(resp[0].UnitPrice.Equal(decimal.RequireFromString("9.99")))
}

// TestSelectOffer tests the SelectOffer handler
func (suite *OfferHandlerTestSuite) TestSelectOffer() {
	suite.T().Run("Success", func(t *testing.T) {
		offerID := uuid.New()
		suite.mockService.EXPECT().SelectOffer(gomock.Any(), offerID).Return(&service.OfferResponse{ID: offerID, IsSelected: true}, nil)

		w := testutils.PerformRequest(suite.router, http.MethodPost, "/offers/"+offerID.String()+"/select", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	suite.T().Run("Unknown Offer", func(t *testing.T) {
		offerID := uuid.New()
		suite.mockService.EXPECT().SelectOffer(gomock.Any(), offerID).Return(nil, apperrors.ErrOfferNotFound)

		w := testutils.PerformRequest(suite.router, http.MethodPost, "/offers/"+offerID.String()+"/select", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		w := testutils.PerformRequest(suite.router, http.MethodPost, "/offers/abc/select", nil)
		testutils.AssertErrorResponse(t, w, http.StatusBadRequest, "invalid offer ID")
	})
}

// TestAutoSelect tests the AutoSelect handler
func (suite *OfferHandlerTestSuite) TestAutoSelect() {
	suite.T().Run("Success", func(t *testing.T) {
		projectID := uuid.New()
		suite.mockService.EXPECT().AutoSelectCheapest(gomock.Any(), projectID).Return(&service.AutoSelectResult{ProjectID: projectID, Skipped: 1}, nil)

		w := testutils.PerformRequest(suite.router, http.MethodPost, "/projects/"+projectID.String()+"/offers/auto-select", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"skipped":1`)
	})

	suite.T().Run("Storage Failure", func(t *testing.T) {
		projectID := uuid.New()
		suite.mockService.EXPECT().AutoSelectCheapest(gomock.Any(), projectID).Return(nil, errors.New("disk full"))

		w := testutils.PerformRequest(suite.router, http.MethodPost, "/projects/"+projectID.String()+"/offers/auto-select", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

// Run the test suite
func TestOfferHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OfferHandlerTestSuite))
}
