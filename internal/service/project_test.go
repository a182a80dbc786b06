package service_test

import (
	"testing"
	"time"

	"parts-inventory-backend/internal/database/models"
	apperrors "parts-inventory-backend/internal/errors"
	"parts-inventory-backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ProjectServiceTestSuite defines the test suite for ProjectService
type ProjectServiceTestSuite struct {
	suite.Suite
	env     *testEnv
	service *service.ProjectService
}

// SetupTest sets up a fresh database for every test
func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.env = newTestEnv(suite.T())
	suite.service = service.NewProjectService(suite.env.store, suite.env.planner, suite.env.locks, service.NewValidator())
}

func (suite *ProjectServiceTestSuite) lock(projectID uuid.UUID) {
	ok, err := suite.env.store.Projects().MarkConsumed(projectID, time.Now())
	suite.Require().NoError(err)
	suite.Require().True(ok)
}

func (suite *ProjectServiceTestSuite) TestCreateAndList() {
	created, err := suite.service.Create(suite.env.ctx, &service.CreateProjectRequest{Name: " Tube amp ", EstimatedHours: 12})
	suite.Require().NoError(err)
	suite.Equal("Tube amp", created.Name)
	suite.Equal(models.ProjectStatusPlanning, created.Status)
	suite.False(created.IsLocked)

	_, err = suite.service.Create(suite.env.ctx, &service.CreateProjectRequest{})
	suite.True(apperrors.IsValidation(err))

	list, err := suite.service.List(suite.env.ctx, 0, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), list.Total)
	suite.Equal(created.ID, list.Projects[0].ID)
}

func (suite *ProjectServiceTestSuite) TestAddItem_RecomputesAllocation() {
	x := suite.env.createComponent(suite.T(), "X", 3)
	p := suite.env.createProject(suite.T(), "Amp")

	first, err := suite.service.AddItem(suite.env.ctx, p.ID, &service.AddItemRequest{ComponentID: &x.ID, QuantityRequired: 2})
	suite.Require().NoError(err)
	suite.Equal(2, first.QuantityFromStock)
	suite.Equal(0, first.QuantityToBuy)
	suite.Equal("X", first.DisplayName)
	suite.Equal(models.ItemTypePart, first.Type)

	second, err := suite.service.AddItem(suite.env.ctx, p.ID, &service.AddItemRequest{ComponentID: &x.ID, QuantityRequired: 2})
	suite.Require().NoError(err)
	suite.Equal(1, second.QuantityFromStock)
	suite.Equal(1, second.QuantityToBuy)

	custom, err := suite.service.AddItem(suite.env.ctx, p.ID, &service.AddItemRequest{CustomName: "Enclosure", QuantityRequired: 1, Type: models.ItemTypeMaterial})
	suite.Require().NoError(err)
	suite.Equal(1, custom.QuantityToBuy)
	suite.Equal("Enclosure", custom.DisplayName)
}

func (suite *ProjectServiceTestSuite) TestAddItem_Validation() {
	x := suite.env.createComponent(suite.T(), "X", 3)
	p := suite.env.createProject(suite.T(), "Amp")

	testCases := []struct {
		name string
		req  *service.AddItemRequest
	}{
		{"Neither component nor name", &service.AddItemRequest{QuantityRequired: 1}},
		{"Both component and name", &service.AddItemRequest{ComponentID: &x.ID, CustomName: "dup", QuantityRequired: 1}},
		{"Zero quantity", &service.AddItemRequest{ComponentID: &x.ID}},
		{"Unknown type", &service.AddItemRequest{CustomName: "a", QuantityRequired: 1, Type: "gadget"}},
	}
	for _, tc := range testCases {
		tc := tc // per-iteration copy (Go 1.22 loop semantics)
		suite.Run(tc.name, func() {
			_, err := suite.service.AddItem(suite.env.ctx, p.ID, tc.req)
			suite.True(apperrors.IsValidation(err), "got %v", err)
		})
	}

	missing := uuid.New()
	_, err := suite.service.AddItem(suite.env.ctx, p.ID, &service.AddItemRequest{ComponentID: &missing, QuantityRequired: 1})
	suite.ErrorIs(err, apperrors.ErrComponentNotFound)

	_, err = suite.service.AddItem(suite.env.ctx, uuid.New(), &service.AddItemRequest{CustomName: "a", QuantityRequired: 1})
	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func (suite *ProjectServiceTestSuite) TestUpdateItem_ReleasesStockToLaterLines() {
	x := suite.env.createComponent(suite.T(), "X", 3)
	p := suite.env.createProject(suite.T(), "Amp")
	a := suite.env.addComponentItem(suite.T(), p.ID, x.ID, 3)
	b := suite.env.addComponentItem(suite.T(), p.ID, x.ID, 2)

	updated, err := suite.service.UpdateItem(suite.env.ctx, p.ID, a.ID, &service.UpdateItemRequest{QuantityRequired: intPtr(1)})
	suite.Require().NoError(err)
	suite.Equal(1, updated.QuantityFromStock)

	stored := suite.env.reloadItem(suite.T(), b.ID)
	suite.Equal(2, stored.QuantityFromStock)
	suite.Equal(0, stored.QuantityToBuy)
}

func (suite *ProjectServiceTestSuite) TestItemOfAnotherProjectIsNotFound() {
	p := suite.env.createProject(suite.T(), "Amp")
	other := suite.env.createProject(suite.T(), "Other")
	item := suite.env.addCustomItem(suite.T(), other.ID, "knob", 1)

	_, err := suite.service.UpdateItem(suite.env.ctx, p.ID, item.ID, &service.UpdateItemRequest{QuantityRequired: intPtr(2)})
	suite.ErrorIs(err, apperrors.ErrProjectItemNotFound)

	err = suite.service.DeleteItem(suite.env.ctx, p.ID, item.ID)
	suite.ErrorIs(err, apperrors.ErrProjectItemNotFound)
}

func (suite *ProjectServiceTestSuite) TestSetItemFulfilled() {
	p := suite.env.createProject(suite.T(), "Amp")
	item := suite.env.addCustomItem(suite.T(), p.ID, "knob", 4)

	resp, err := suite.service.SetItemFulfilled(suite.env.ctx, p.ID, item.ID, true)
	suite.Require().NoError(err)
	suite.True(resp.IsFulfilled)
	suite.Equal(0, resp.QuantityToBuy)

	resp, err = suite.service.SetItemFulfilled(suite.env.ctx, p.ID, item.ID, false)
	suite.Require().NoError(err)
	suite.Equal(4, resp.QuantityToBuy)
}

func (suite *ProjectServiceTestSuite) TestDeleteItem_RemovesOffers() {
	p := suite.env.createProject(suite.T(), "Amp")
	item := suite.env.addCustomItem(suite.T(), p.ID, "knob", 1)
	keep := suite.env.addCustomItem(suite.T(), p.ID, "nut", 1)
	s := suite.env.createSupplier(suite.T(), "Shop")
	suite.env.createOffer(suite.T(), item.ID, s.ID, "1.00")
	suite.env.createOffer(suite.T(), keep.ID, s.ID, "2.00")

	suite.Require().NoError(suite.service.DeleteItem(suite.env.ctx, p.ID, item.ID))

	offers, err := suite.env.store.SupplierOffers().GetByProjectID(p.ID)
	suite.Require().NoError(err)
	suite.Require().Len(offers, 1)
	suite.Equal(keep.ID, offers[0].ProjectItemID)
}

func (suite *ProjectServiceTestSuite) TestLockedProjectRejectsMutations() {
	x := suite.env.createComponent(suite.T(), "X", 3)
	p := suite.env.createProject(suite.T(), "Amp")
	item := suite.env.addComponentItem(suite.T(), p.ID, x.ID, 1)
	suite.lock(p.ID)

	_, err := suite.service.AddItem(suite.env.ctx, p.ID, &service.AddItemRequest{CustomName: "a", QuantityRequired: 1})
	suite.ErrorIs(err, apperrors.ErrProjectLocked)
	_, err = suite.service.UpdateItem(suite.env.ctx, p.ID, item.ID, &service.UpdateItemRequest{QuantityRequired: intPtr(2)})
	suite.ErrorIs(err, apperrors.ErrProjectLocked)
	_, err = suite.service.SetItemFulfilled(suite.env.ctx, p.ID, item.ID, true)
	suite.ErrorIs(err, apperrors.ErrProjectLocked)
	suite.ErrorIs(suite.service.DeleteItem(suite.env.ctx, p.ID, item.ID), apperrors.ErrProjectLocked)
	suite.ErrorIs(suite.service.Delete(suite.env.ctx, p.ID), apperrors.ErrProjectLocked)

	// header fields stay editable
	resp, err := suite.service.Update(suite.env.ctx, p.ID, &service.UpdateProjectRequest{RealHours: floatPtr(3.5)})
	suite.Require().NoError(err)
	suite.Equal(3.5, resp.RealHours)
	suite.True(resp.IsLocked)
}

func (suite *ProjectServiceTestSuite) TestUpdate_StatusStampsDates() {
	p := suite.env.createProject(suite.T(), "Amp")

	ordered := models.ProjectStatusOrdered
	resp, err := suite.service.Update(suite.env.ctx, p.ID, &service.UpdateProjectRequest{Status: &ordered})
	suite.Require().NoError(err)
	suite.Require().NotNil(resp.OrderedAt)
	suite.Nil(resp.ReceivedAt)
	orderedAt := *resp.OrderedAt

	received := models.ProjectStatusReceived
	resp, err = suite.service.Update(suite.env.ctx, p.ID, &service.UpdateProjectRequest{Status: &received})
	suite.Require().NoError(err)
	suite.Require().NotNil(resp.ReceivedAt)
	suite.True(orderedAt.Equal(*resp.OrderedAt))

	stored := suite.env.reloadProject(suite.T(), p.ID)
	suite.Equal(models.ProjectStatusReceived, stored.Status)
	suite.NotNil(stored.ReceivedAt)

	bogus := models.ProjectStatus("shipped")
	_, err = suite.service.Update(suite.env.ctx, p.ID, &service.UpdateProjectRequest{Status: &bogus})
	suite.True(apperrors.IsValidation(err))
}

func (suite *ProjectServiceTestSuite) TestDelete_KeepsLedgerRows() {
	x := suite.env.createComponent(suite.T(), "X", 5)
	p := suite.env.createProject(suite.T(), "Amp")
	item := suite.env.addCustomItem(suite.T(), p.ID, "knob", 1)
	s := suite.env.createSupplier(suite.T(), "Shop")
	suite.env.createOffer(suite.T(), item.ID, s.ID, "1.00")
	suite.Require().NoError(suite.env.store.Transactions().Create(&models.InventoryTransaction{
		ComponentID:   x.ID,
		DeltaQuantity: -1,
		Type:          models.TransactionTypeUse,
		ProjectID:     &p.ID,
		Note:          "Project: Amp",
	}))

	suite.Require().NoError(suite.service.Delete(suite.env.ctx, p.ID))

	_, err := suite.service.GetDetails(suite.env.ctx, p.ID)
	suite.ErrorIs(err, apperrors.ErrProjectNotFound)

	rows := suite.env.ledger(suite.T(), x.ID)
	suite.Require().Len(rows, 1)
	suite.Nil(rows[0].ProjectID)
	suite.Equal("Project: Amp", rows[0].Note)

	var offers int64
	suite.Require().NoError(suite.env.db.Model(&models.SupplierOffer{}).Count(&offers).Error)
	suite.Zero(offers)
}

func (suite *ProjectServiceTestSuite) TestGetDetails() {
	x := suite.env.createComponent(suite.T(), "X", 1)
	p := suite.env.createProject(suite.T(), "Amp")
	stocked := suite.env.addComponentItem(suite.T(), p.ID, x.ID, 3)
	custom := suite.env.addCustomItem(suite.T(), p.ID, "Enclosure", 1)
	unpriced := suite.env.addCustomItem(suite.T(), p.ID, "Feet", 4)
	s := suite.env.createSupplier(suite.T(), "Shop")
	offer := suite.env.createOffer(suite.T(), stocked.ID, s.ID, "2.50")
	suite.Require().NoError(suite.env.store.SupplierOffers().Select(stocked.ID, offer.ID))
	customOffer := suite.env.createOffer(suite.T(), custom.ID, s.ID, "100")
	suite.Require().NoError(suite.env.store.SupplierOffers().Select(custom.ID, customOffer.ID))

	detail, err := suite.service.GetDetails(suite.env.ctx, p.ID)
	suite.Require().NoError(err)

	suite.Require().Len(detail.Items, 3)
	suite.Equal(stocked.ID, detail.Items[0].ID)
	suite.Equal(1, detail.Items[0].QuantityFromStock)
	suite.Equal(2, detail.Items[0].QuantityToBuy)
	suite.Equal("X", detail.Items[0].ComponentName)
	suite.Require().Len(detail.Items[0].Offers, 1)
	suite.Equal("Shop", detail.Items[0].Offers[0].SupplierName)
	suite.Equal(unpriced.ID, detail.Items[2].ID)

	suite.Equal(3, detail.ItemsToBuy)
	suite.Equal(1, detail.ItemsUnpriced)
	suite.Require().Len(detail.SelectedTotals, 1)
	suite.Equal("CZK", detail.SelectedTotals[0].Currency)
	suite.True(decimal.RequireFromString("105").Equal(detail.SelectedTotals[0].Total))
}

// TestProjectServiceTestSuite runs the test suite
func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}

func floatPtr(v float64) *float64 {
	return &v
}
