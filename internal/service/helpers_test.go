package service_test

import (
	"context"
	"testing"

	"parts-inventory-backend/internal/database/models"
	"parts-inventory-backend/internal/repository"
	"parts-inventory-backend/internal/service"
	"parts-inventory-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testEnv wires the services against a private in-memory database
type testEnv struct {
	ctx       context.Context
	db        *gorm.DB
	store     *repository.Store
	locks     *service.ProjectLocks
	planner   *service.PlanningService
	factories *testutils.FactorySet
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutils.NewSQLiteDB(t)
	store := repository.NewStore(db)
	locks := service.NewProjectLocks()
	return &testEnv{
		ctx:       context.Background(),
		db:        db,
		store:     store,
		locks:     locks,
		planner:   service.NewPlanningService(store, locks, false),
		factories: testutils.NewFactorySet(),
	}
}

func (e *testEnv) createComponent(t *testing.T, name string, quantity int) *models.Component {
	t.Helper()
	c := e.factories.Component.WithName(name)
	c.Quantity = quantity
	require.NoError(t, e.store.Components().Create(c))
	return c
}

func (e *testEnv) createLocation(t *testing.T, rack, drawer, box string) *models.Location {
	t.Helper()
	l := e.factories.Location.Slot(rack, drawer, box)
	require.NoError(t, e.store.Locations().Create(l))
	return l
}

func (e *testEnv) createProject(t *testing.T, name string) *models.Project {
	t.Helper()
	p := e.factories.Project.WithName(name)
	require.NoError(t, e.store.Projects().Create(p))
	return p
}

func (e *testEnv) addComponentItem(t *testing.T, projectID, componentID uuid.UUID, quantity int) *models.ProjectItem {
	t.Helper()
	item := e.factories.ProjectItem.ForComponent(projectID, componentID, quantity)
	require.NoError(t, e.store.ProjectItems().Create(item))
	return item
}

func (e *testEnv) addCustomItem(t *testing.T, projectID uuid.UUID, name string, quantity int) *models.ProjectItem {
	t.Helper()
	item := e.factories.ProjectItem.Custom(projectID, name, quantity)
	require.NoError(t, e.store.ProjectItems().Create(item))
	return item
}

func (e *testEnv) createSupplier(t *testing.T, name string) *models.Supplier {
	t.Helper()
	s := e.factories.Supplier.WithName(name)
	require.NoError(t, e.store.Suppliers().Create(s))
	return s
}

func (e *testEnv) createOffer(t *testing.T, itemID, supplierID uuid.UUID, price string) *models.SupplierOffer {
	t.Helper()
	o := e.factories.SupplierOffer.Create(itemID, supplierID, price)
	require.NoError(t, e.store.SupplierOffers().CreateBatch([]models.SupplierOffer{*o}))
	stored, err := e.store.SupplierOffers().GetByProjectID(e.projectOfItem(t, itemID))
	require.NoError(t, err)
	return &stored[len(stored)-1]
}

func (e *testEnv) projectOfItem(t *testing.T, itemID uuid.UUID) uuid.UUID {
	t.Helper()
	item, err := e.store.ProjectItems().GetByID(itemID)
	require.NoError(t, err)
	return item.ProjectID
}

func (e *testEnv) reloadItem(t *testing.T, id uuid.UUID) *models.ProjectItem {
	t.Helper()
	item, err := e.store.ProjectItems().GetByID(id)
	require.NoError(t, err)
	return item
}

func (e *testEnv) reloadLocation(t *testing.T, id uuid.UUID) *models.Location {
	t.Helper()
	l, err := e.store.Locations().GetByID(id)
	require.NoError(t, err)
	return l
}

func (e *testEnv) reloadComponent(t *testing.T, id uuid.UUID) *models.Component {
	t.Helper()
	c, err := e.store.Components().GetByID(id)
	require.NoError(t, err)
	return c
}

func (e *testEnv) reloadProject(t *testing.T, id uuid.UUID) *models.Project {
	t.Helper()
	p, err := e.store.Projects().GetByID(id)
	require.NoError(t, err)
	return p
}

func (e *testEnv) ledger(t *testing.T, componentID uuid.UUID) []models.InventoryTransaction {
	t.Helper()
	rows, err := e.store.Transactions().GetByComponentID(componentID, 0)
	require.NoError(t, err)
	return rows
}
