package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecalculate_FromDate(t *testing.T) {
	h := configured(t)
	ctx := context.Background()
	h.addOrder(t, "A", item("GR-1", 32))
	h.addOrder(t, "B", item("SH-1", 32))

	require.NoError(t, h.scheduleSvc.Recalculate(ctx, h.plan, &nextMon))
	assert.Equal(t, nextMon, h.plan.Orders[0].StartDate)
	assert.Equal(t, nextMon.AddDate(0, 0, 3), h.plan.Orders[1].StartDate)

	stored, err := h.stores.Orders.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, nextMon, stored[0].StartDate)
}

func TestRecalculate_Idempotent(t *testing.T) {
	h := configured(t)
	ctx := context.Background()
	h.addOrder(t, "A", item("GR-1", 32))
	h.addOrder(t, "B", item("SH-1", 7))
	before := domain.CloneOrders(h.plan.Orders)

	require.NoError(t, h.scheduleSvc.Recalculate(ctx, h.plan, nil))
	assert.Equal(t, before, h.plan.Orders)
}

func TestRecalculate_RepairsUndatedQueue(t *testing.T) {
	h := configured(t)
	h.addOrder(t, "A", item("GR-1", 32))
	h.plan.Orders[0].StartDate = h.plan.Orders[0].StartDate.AddDate(0, 0, -100)
	h.plan.Orders[0].EndDate = h.plan.Orders[0].StartDate
	h.plan.Orders[0].WorkingDaysNeeded = 0

	require.NoError(t, h.scheduleSvc.Recalculate(context.Background(), h.plan, &monday))
	assert.Equal(t, wednesday, h.plan.Orders[0].EndDate)
	assert.Equal(t, 2, h.plan.Orders[0].WorkingDaysNeeded)
}

func TestRecalculate_RequiresCapacity(t *testing.T) {
	h := newJSONHarness(t)
	err := h.scheduleSvc.Recalculate(context.Background(), h.plan, nil)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestNextStartAndStatus(t *testing.T) {
	h := configured(t)
	assert.Equal(t, monday, h.scheduleSvc.NextStart(h.plan), "empty queue starts today")

	h.addOrder(t, "A", item("GR-1", 32))
	h.addOrder(t, "B", item("SH-1", 32))
	require.NoError(t, h.calendarSvc.Block(context.Background(), h.plan, nextMon))

	st := h.scheduleSvc.Status(h.plan)
	assert.NoError(t, st.Ready)
	assert.Equal(t, 2, st.Orders)
	assert.Equal(t, 2, st.Parts)
	assert.Equal(t, 1, st.BlockedDays)
	assert.Equal(t, 2880.0, st.TotalMinutes)
	assert.Equal(t, 3, st.TotalDays)
	assert.Equal(t, monday, st.FirstStart)
	assert.Equal(t, friday, st.LastEnd)
	assert.Equal(t, nextMon.AddDate(0, 0, 1), st.NextStart, "blocked monday is skipped")
}
