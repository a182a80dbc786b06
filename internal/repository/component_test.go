package repository

import (
	"testing"

	"parts-inventory-backend/internal/database/models"
	"parts-inventory-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ComponentRepositoryTestSuite tests the ComponentRepository on SQLite
type ComponentRepositoryTestSuite struct {
	suite.Suite
	db        *gorm.DB
	repo      *ComponentRepository
	factories *testutils.FactorySet
}

// SetupTest opens a fresh database for every test
func (suite *ComponentRepositoryTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.repo = NewComponentRepository(suite.db)
	suite.factories = testutils.NewFactorySet()
}

func (suite *ComponentRepositoryTestSuite) create(c *models.Component) *models.Component {
	suite.Require().NoError(suite.repo.Create(c))
	return c
}

// TestCreate tests creating a component
func (suite *ComponentRepositoryTestSuite) TestCreate() {
	component := suite.create(suite.factories.Component.WithQuantity(4))

	suite.NotEqual(uuid.Nil, component.ID)
	suite.Equal(byte(7), component.ID[6]>>4, "ids are UUIDv7")

	found, err := suite.repo.GetByID(component.ID)
	suite.Require().NoError(err)
	suite.Equal(component.Name, found.Name)
	suite.Equal(4, found.Quantity)
}

// TestGetByIDNotFound tests retrieving an unknown component
func (suite *ComponentRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByIDs tests batch retrieval with and without deleted rows
func (suite *ComponentRepositoryTestSuite) TestGetByIDs() {
	a := suite.create(suite.factories.Component.Create())
	b := suite.create(suite.factories.Component.Create())
	suite.Require().NoError(suite.repo.Delete(b.ID))

	live, err := suite.repo.GetByIDs([]uuid.UUID{a.ID, b.ID, uuid.New()})
	suite.Require().NoError(err)
	suite.Len(live, 1)
	suite.Equal(a.ID, live[0].ID)

	all, err := suite.repo.GetByIDsUnscoped([]uuid.UUID{b.ID, a.ID})
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal(a.ID, all[0].ID)
	suite.Equal(b.ID, all[1].ID)

	empty, err := suite.repo.GetByIDs(nil)
	suite.NoError(err)
	suite.Empty(empty)
}

// TestGetAllAndSearch tests listing and case-insensitive search
func (suite *ComponentRepositoryTestSuite) TestGetAllAndSearch() {
	suite.create(suite.factories.Component.WithName("NE555 Timer"))
	suite.create(suite.factories.Component.WithName("LM358 OpAmp"))
	capacitor := suite.factories.Component.WithName("Capacitor 100n")
	capacitor.Manufacturer = "TIMERTRONIC"
	suite.create(capacitor)

	all, total, err := suite.repo.GetAll(2, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Require().Len(all, 2)
	suite.Equal("Capacitor 100n", all[0].Name)

	found, total, err := suite.repo.Search("timer", 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(found, 2)

	found, _, err = suite.repo.Search("lm358", 10, 0)
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal("LM358 OpAmp", found[0].Name)
}

// TestListByLocation tests the location filters of List
func (suite *ComponentRepositoryTestSuite) TestListByLocation() {
	locations := NewLocationRepository(suite.db)
	a13 := suite.factories.Location.Slot("A", "1", "3")
	a14 := suite.factories.Location.Slot("A", "1", "4")
	b1 := suite.factories.Location.Slot("B", "1", "")
	for _, l := range []*models.Location{a13, a14, b1} {
		suite.Require().NoError(locations.Create(l))
	}

	timer := suite.factories.Component.WithName("NE555 Timer")
	timer.LocationID = &a13.ID
	suite.create(timer)
	opamp := suite.create(suite.factories.Component.AtLocation(a14))
	suite.create(suite.factories.Component.AtLocation(b1))
	suite.create(suite.factories.Component.Create())

	found, total, err := suite.repo.List(ComponentFilter{Rack: "A"}, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(found, 2)
	for _, c := range found {
		suite.Require().NotNil(c.Location, "location is preloaded")
		suite.Equal("A", c.Location.Rack)
	}

	found, total, err = suite.repo.List(ComponentFilter{Rack: "A", Drawer: "1", Box: "4"}, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(opamp.ID, found[0].ID)
	suite.Equal("A-1-4", found[0].LocationName())

	found, _, err = suite.repo.List(ComponentFilter{LocationID: &a13.ID}, 10, 0)
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(timer.ID, found[0].ID)

	found, total, err = suite.repo.List(ComponentFilter{Query: "timer", Rack: "B"}, 10, 0)
	suite.Require().NoError(err)
	suite.Zero(total)
	suite.Empty(found)

	_, total, err = suite.repo.List(ComponentFilter{}, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(4), total, "components without a location are listed unfiltered")
}

// TestTotals tests the component count and quantity sum
func (suite *ComponentRepositoryTestSuite) TestTotals() {
	count, quantity, err := suite.repo.Totals()
	suite.Require().NoError(err)
	suite.Zero(count)
	suite.Zero(quantity)

	suite.create(suite.factories.Component.WithQuantity(7))
	suite.create(suite.factories.Component.WithQuantity(5))
	deleted := suite.create(suite.factories.Component.WithQuantity(100))
	suite.Require().NoError(suite.repo.Delete(deleted.ID))

	count, quantity, err = suite.repo.Totals()
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
	suite.Equal(int64(12), quantity)
}

// TestClearLocation tests detaching components from a location
func (suite *ComponentRepositoryTestSuite) TestClearLocation() {
	locations := NewLocationRepository(suite.db)
	shelf := suite.factories.Location.Create()
	other := suite.factories.Location.Create()
	suite.Require().NoError(locations.Create(shelf))
	suite.Require().NoError(locations.Create(other))

	live := suite.create(suite.factories.Component.AtLocation(shelf))
	deleted := suite.create(suite.factories.Component.AtLocation(shelf))
	suite.Require().NoError(suite.repo.Delete(deleted.ID))
	elsewhere := suite.create(suite.factories.Component.AtLocation(other))

	cleared, err := suite.repo.ClearLocation(shelf.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), cleared)

	found, err := suite.repo.GetByID(live.ID)
	suite.Require().NoError(err)
	suite.Nil(found.LocationID)
	suite.Nil(found.Location)

	found, err = suite.repo.GetByID(elsewhere.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(found.LocationID)
	suite.Equal(other.ID, *found.LocationID)
}

// TestGetLowStock tests the reorder point comparison
func (suite *ComponentRepositoryTestSuite) TestGetLowStock() {
	empty := suite.create(suite.factories.Component.WithQuantity(0))
	low := suite.create(suite.factories.Component.WithQuantity(2))
	suite.create(suite.factories.Component.WithQuantity(models.DefaultReorderPoint))

	found, err := suite.repo.GetLowStock()
	suite.Require().NoError(err)
	suite.Require().Len(found, 2)
	suite.Equal(empty.ID, found[0].ID)
	suite.Equal(low.ID, found[1].ID)
}

// TestUpdateLeavesQuantity tests that Update never writes the quantity
func (suite *ComponentRepositoryTestSuite) TestUpdateLeavesQuantity() {
	component := suite.create(suite.factories.Component.WithQuantity(9))

	component.Name = "Renamed"
	component.Quantity = 100
	suite.Require().NoError(suite.repo.Update(component))

	found, err := suite.repo.GetByID(component.ID)
	suite.Require().NoError(err)
	suite.Equal("Renamed", found.Name)
	suite.Equal(9, found.Quantity)
}

// TestApplyDelta tests the conditional quantity update
func (suite *ComponentRepositoryTestSuite) TestApplyDelta() {
	component := suite.create(suite.factories.Component.WithQuantity(5))

	ok, err := suite.repo.ApplyDelta(component.ID, -5)
	suite.Require().NoError(err)
	suite.True(ok)

	ok, err = suite.repo.ApplyDelta(component.ID, -1)
	suite.Require().NoError(err)
	suite.False(ok)

	ok, err = suite.repo.ApplyDelta(uuid.New(), 1)
	suite.Require().NoError(err)
	suite.False(ok)

	found, err := suite.repo.GetByID(component.ID)
	suite.Require().NoError(err)
	suite.Equal(0, found.Quantity)
}

// TestComponentRepositoryTestSuite runs the test suite
func TestComponentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ComponentRepositoryTestSuite))
}
