package service_test

import (
	"testing"
	"time"

	apperrors "parts-inventory-backend/internal/errors"
	"parts-inventory-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanningService_RecalculatePersistsAllocation(t *testing.T) {
	env := newTestEnv(t)
	x := env.createComponent(t, "X", 3)
	y := env.createComponent(t, "Y", 2)
	p := env.createProject(t, "Amp")
	a := env.addComponentItem(t, p.ID, x.ID, 2)
	b := env.addComponentItem(t, p.ID, x.ID, 2)
	c := env.addComponentItem(t, p.ID, y.ID, 2)
	d := env.addCustomItem(t, p.ID, "heatsink", 1)

	items, err := env.planner.Recalculate(env.ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, items, 4)

	cases := []struct {
		id        uuid.UUID
		fromStock int
		toBuy     int
	}{
		{a.ID, 2, 0},
		{b.ID, 1, 1},
		{c.ID, 2, 0},
		{d.ID, 0, 1},
	}
	for _, tc := range cases {
		stored := env.reloadItem(t, tc.id)
		assert.Equal(t, tc.fromStock, stored.QuantityFromStock)
		assert.Equal(t, tc.toBuy, stored.QuantityToBuy)
	}

	again, err := env.planner.Recalculate(env.ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, again, len(items))
	for i := range items {
		assert.Equal(t, items[i].ID, again[i].ID)
		assert.Equal(t, items[i].QuantityFromStock, again[i].QuantityFromStock)
		assert.Equal(t, items[i].QuantityToBuy, again[i].QuantityToBuy)
	}
}

func TestPlanningService_FollowsStockChanges(t *testing.T) {
	env := newTestEnv(t)
	x := env.createComponent(t, "X", 1)
	p := env.createProject(t, "Amp")
	item := env.addComponentItem(t, p.ID, x.ID, 4)

	_, err := env.planner.Recalculate(env.ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, env.reloadItem(t, item.ID).QuantityToBuy)

	components := service.NewComponentService(env.store, service.NewValidator())
	_, err = components.AddStock(env.ctx, x.ID, &service.StockChangeRequest{Amount: 10})
	require.NoError(t, err)

	_, err = env.planner.Recalculate(env.ctx, p.ID)
	require.NoError(t, err)
	stored := env.reloadItem(t, item.ID)
	assert.Equal(t, 4, stored.QuantityFromStock)
	assert.Equal(t, 0, stored.QuantityToBuy)
}

func TestPlanningService_LockedProjectIsFrozen(t *testing.T) {
	env := newTestEnv(t)
	x := env.createComponent(t, "X", 5)
	p := env.createProject(t, "Amp")
	item := env.addComponentItem(t, p.ID, x.ID, 2)

	ok, err := env.store.Projects().MarkConsumed(p.ID, time.Now())
	require.NoError(t, err)
	require.True(t, ok)

	items, err := env.planner.Recalculate(env.ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	stored := env.reloadItem(t, item.ID)
	assert.Equal(t, 0, stored.QuantityFromStock)
	assert.Equal(t, 0, stored.QuantityToBuy)
}

func TestPlanningService_NotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.planner.Recalculate(env.ctx, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
}

func TestPlanningService_ReserveAcrossProjects(t *testing.T) {
	env := newTestEnv(t)
	planner := service.NewPlanningService(env.store, env.locks, true)
	x := env.createComponent(t, "X", 5)
	first := env.createProject(t, "First")
	second := env.createProject(t, "Second")
	firstItem := env.addComponentItem(t, first.ID, x.ID, 4)
	secondItem := env.addComponentItem(t, second.ID, x.ID, 4)

	_, err := planner.Recalculate(env.ctx, first.ID)
	require.NoError(t, err)
	_, err = planner.Recalculate(env.ctx, second.ID)
	require.NoError(t, err)

	assert.Equal(t, 4, env.reloadItem(t, firstItem.ID).QuantityFromStock)
	stored := env.reloadItem(t, secondItem.ID)
	assert.Equal(t, 1, stored.QuantityFromStock)
	assert.Equal(t, 3, stored.QuantityToBuy)

	// without reservation both projects see the whole stock
	_, err = env.planner.Recalculate(env.ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, env.reloadItem(t, secondItem.ID).QuantityFromStock)
}
