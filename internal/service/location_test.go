package service_test

import (
	"testing"

	apperrors "parts-inventory-backend/internal/errors"
	"parts-inventory-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// LocationServiceTestSuite defines the test suite for LocationService
type LocationServiceTestSuite struct {
	suite.Suite
	env     *testEnv
	service *service.LocationService
}

// SetupTest sets up a fresh database for every test
func (suite *LocationServiceTestSuite) SetupTest() {
	suite.env = newTestEnv(suite.T())
	suite.service = service.NewLocationService(suite.env.store, service.NewValidator())
}

func (suite *LocationServiceTestSuite) create(rack, drawer, box string) *service.LocationResponse {
	resp, err := suite.service.Create(suite.env.ctx, &service.CreateLocationRequest{Rack: rack, Drawer: drawer, Box: box})
	suite.Require().NoError(err)
	return resp
}

func (suite *LocationServiceTestSuite) TestCreate() {
	resp := suite.create(" A ", "1", " 3")
	suite.NotEqual(uuid.Nil, resp.ID)
	suite.Equal("A", resp.Rack)
	suite.Equal("3", resp.Box)
	suite.Equal("A-1-3", resp.DisplayName)

	_, err := suite.service.Create(suite.env.ctx, &service.CreateLocationRequest{Rack: "A", Drawer: "1", Box: "3"})
	suite.ErrorIs(err, apperrors.ErrLocationExists)

	rackOnly := suite.create("A", "", "")
	suite.Equal("A", rackOnly.DisplayName)
}

func (suite *LocationServiceTestSuite) TestCreate_Validation() {
	_, err := suite.service.Create(suite.env.ctx, &service.CreateLocationRequest{})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.service.Create(suite.env.ctx, &service.CreateLocationRequest{Rack: "A", Box: "3"})
	suite.True(apperrors.IsValidation(err), "a box needs a drawer")
}

func (suite *LocationServiceTestSuite) TestLookups() {
	suite.create("B", "1", "")
	suite.create("A", "2", "")
	suite.create("A", "1", "4")
	suite.create("A", "1", "3")
	suite.create("A", "1", "")

	racks, err := suite.service.Racks(suite.env.ctx)
	suite.Require().NoError(err)
	suite.Equal([]string{"A", "B"}, racks)

	drawers, err := suite.service.Drawers(suite.env.ctx, "A")
	suite.Require().NoError(err)
	suite.Equal([]string{"1", "2"}, drawers)

	boxes, err := suite.service.Boxes(suite.env.ctx, "A", "1")
	suite.Require().NoError(err)
	suite.Require().Len(boxes, 2)
	suite.Equal("3", boxes[0].Box)
	suite.Equal("4", boxes[1].Box)

	boxes, err = suite.service.Boxes(suite.env.ctx, "A", "2")
	suite.Require().NoError(err)
	suite.NotNil(boxes)
	suite.Empty(boxes)

	_, err = suite.service.Drawers(suite.env.ctx, " ")
	suite.True(apperrors.IsValidation(err))
	_, err = suite.service.Boxes(suite.env.ctx, "A", "")
	suite.True(apperrors.IsValidation(err))

	inRack, err := suite.service.List(suite.env.ctx, "A", "")
	suite.Require().NoError(err)
	suite.Len(inRack, 4)
}

func (suite *LocationServiceTestSuite) TestGetByID_CountsComponents() {
	shelf := suite.create("A", "1", "")
	location := suite.env.reloadLocation(suite.T(), shelf.ID)
	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.env.store.Components().Create(suite.env.factories.Component.AtLocation(location)))
	}

	got, err := suite.service.GetByID(suite.env.ctx, shelf.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(got.ComponentCount)
	suite.Equal(int64(3), *got.ComponentCount)

	_, err = suite.service.GetByID(suite.env.ctx, uuid.New())
	suite.ErrorIs(err, apperrors.ErrLocationNotFound)
}

func (suite *LocationServiceTestSuite) TestDelete_DetachesComponents() {
	shelf := suite.create("A", "1", "")
	c := suite.env.factories.Component.AtLocation(suite.env.reloadLocation(suite.T(), shelf.ID))
	suite.Require().NoError(suite.env.store.Components().Create(c))

	suite.Require().NoError(suite.service.Delete(suite.env.ctx, shelf.ID))

	stored := suite.env.reloadComponent(suite.T(), c.ID)
	suite.Nil(stored.LocationID)
	suite.Empty(stored.LocationName())

	_, err := suite.service.GetByID(suite.env.ctx, shelf.ID)
	suite.ErrorIs(err, apperrors.ErrLocationNotFound)

	err = suite.service.Delete(suite.env.ctx, shelf.ID)
	suite.ErrorIs(err, apperrors.ErrLocationNotFound)
}

func TestLocationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LocationServiceTestSuite))
}
