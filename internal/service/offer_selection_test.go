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

func TestSelectOffer_KeepsOneSelectedPerItem(t *testing.T) {
	env := newTestEnv(t)
	offers := service.NewOfferService(env.store, env.locks)
	p := env.createProject(t, "Amp")
	item := env.addCustomItem(t, p.ID, "Knob", 2)
	s := env.createSupplier(t, "Shop")
	a := env.createOffer(t, item.ID, s.ID, "1.00")
	b := env.createOffer(t, item.ID, s.ID, "2.00")

	resp, err := offers.SelectOffer(env.ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, resp.IsSelected)
	assert.Equal(t, "Shop", resp.SupplierName)

	_, err = offers.SelectOffer(env.ctx, b.ID)
	require.NoError(t, err)

	list, err := offers.ListOffers(env.ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.False(t, list[0].IsSelected)
	assert.True(t, list[1].IsSelected)

	_, err = offers.SelectOffer(env.ctx, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrOfferNotFound)
}

func TestSelectOffer_AllowedOnLockedProject(t *testing.T) {
	env := newTestEnv(t)
	offers := service.NewOfferService(env.store, env.locks)
	p := env.createProject(t, "Amp")
	item := env.addCustomItem(t, p.ID, "Knob", 2)
	s := env.createSupplier(t, "Shop")
	a := env.createOffer(t, item.ID, s.ID, "1.00")
	ok, err := env.store.Projects().MarkConsumed(p.ID, time.Now())
	require.NoError(t, err)
	require.True(t, ok)

	_, err = offers.SelectOffer(env.ctx, a.ID)
	assert.NoError(t, err)
}

func TestSelectOffer_OfferReplacedWhileWaiting(t *testing.T) {
	env := newTestEnv(t)
	offers := service.NewOfferService(env.store, env.locks)
	p := env.createProject(t, "Amp")
	item := env.addCustomItem(t, p.ID, "Knob", 2)
	a := env.createOffer(t, item.ID, env.createSupplier(t, "Shop").ID, "1.00")

	unlock := env.locks.Lock(p.ID)
	errs := make(chan error, 1)
	go func() {
		_, err := offers.SelectOffer(env.ctx, a.ID)
		errs <- err
	}()
	require.NoError(t, env.store.SupplierOffers().DeleteByProjectID(p.ID))
	unlock()

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, apperrors.ErrOfferNotFound)
	case <-time.After(5 * time.Second):
		t.Fatal("SelectOffer did not return")
	}

	selected, err := env.store.SupplierOffers().GetSelectedByProjectID(p.ID)
	require.NoError(t, err)
	assert.Empty(t, selected)
}

func TestAutoSelectCheapest(t *testing.T) {
	env := newTestEnv(t)
	offers := service.NewOfferService(env.store, env.locks)
	x := env.createComponent(t, "X", 10)
	p := env.createProject(t, "Amp")
	priced := env.addCustomItem(t, p.ID, "Knob", 2)
	tied := env.addCustomItem(t, p.ID, "Nut", 5)
	stocked := env.addComponentItem(t, p.ID, x.ID, 1)
	env.addCustomItem(t, p.ID, "Washer", 1)
	_, err := env.planner.Recalculate(env.ctx, p.ID)
	require.NoError(t, err)

	shop := env.createSupplier(t, "Shop")
	other := env.createSupplier(t, "Other")
	env.createOffer(t, priced.ID, shop.ID, "12.50")
	cheapest := env.createOffer(t, priced.ID, other.ID, "9.99")
	env.createOffer(t, priced.ID, shop.ID, "10.00")
	firstTie := env.createOffer(t, tied.ID, shop.ID, "0.10")
	env.createOffer(t, tied.ID, other.ID, "0.10")
	stockedOffer := env.createOffer(t, stocked.ID, shop.ID, "0.01")

	result, err := offers.AutoSelectCheapest(env.ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, result.Selected, 2)
	assert.Equal(t, cheapest.ID, result.Selected[0].ID)
	assert.Equal(t, "Other", result.Selected[0].SupplierName)
	assert.Equal(t, firstTie.ID, result.Selected[1].ID)
	assert.Equal(t, 1, result.Skipped)

	selected, err := env.store.SupplierOffers().GetSelectedByProjectID(p.ID)
	require.NoError(t, err)
	require.Len(t, selected, 2)
	for _, o := range selected {
		assert.NotEqual(t, stockedOffer.ID, o.ID)
	}

	_, err = offers.AutoSelectCheapest(env.ctx, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
}
