package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/alexanderramin/prodsched/internal/repository"
	"github.com/alexanderramin/prodsched/internal/testutil"
	"github.com/stretchr/testify/require"
)

var (
	monday    = testutil.Monday
	tuesday   = monday.AddDate(0, 0, 1)
	wednesday = monday.AddDate(0, 0, 2)
	thursday  = monday.AddDate(0, 0, 3)
	friday    = monday.AddDate(0, 0, 4)
	nextMon   = monday.AddDate(0, 0, 7)
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Name
	}
	return out
}

// failingOrderStore loads normally and fails every save.
type failingOrderStore struct {
	repository.OrderStore
}

func (failingOrderStore) Save(context.Context, []domain.Order) error {
	return fmt.Errorf("disk full: %w", domain.ErrPersistence)
}

type harness struct {
	stores   repository.Stores
	plan     *domain.Plan
	observer *recordingObserver

	planSvc     PlanService
	capacitySvc CapacityService
	partSvc     PartService
	orderSvc    OrderService
	calendarSvc CalendarService
	scheduleSvc ScheduleService
}

func newHarness(t *testing.T, stores repository.Stores, now time.Time) *harness {
	t.Helper()
	clock := testutil.Clock(now)
	obs := &recordingObserver{}
	return &harness{
		stores:      stores,
		plan:        domain.NewPlan(),
		observer:    obs,
		planSvc:     NewPlanService(stores, obs),
		capacitySvc: NewCapacityService(stores.Capacity, stores.Orders, clock, obs),
		partSvc:     NewPartService(stores.Parts, obs),
		orderSvc:    NewOrderService(stores.Orders, clock, obs),
		calendarSvc: NewCalendarService(stores.Blocked, stores.Orders, clock, obs),
		scheduleSvc: NewScheduleService(stores.Orders, clock, obs),
	}
}

func newJSONHarness(t *testing.T) *harness {
	return newHarness(t, repository.NewJSONStores(t.TempDir()), monday)
}

// configured returns a harness with 960 min/day capacity and parts
// GR-1 (60 min) and SH-1 (30 min).
func configured(t *testing.T) *harness {
	t.Helper()
	h := newJSONHarness(t)
	ctx := context.Background()
	require.NoError(t, h.capacitySvc.Set(ctx, h.plan, testutil.NewTestCapacity()))
	require.NoError(t, h.partSvc.Add(ctx, h.plan, testutil.NewTestPart("GR-1", 60)))
	require.NoError(t, h.partSvc.Add(ctx, h.plan, testutil.NewTestPart("SH-1", 30)))
	return h
}

func (h *harness) addOrder(t *testing.T, name string, items ...ItemRequest) domain.Order {
	t.Helper()
	o, err := h.orderSvc.Add(context.Background(), h.plan, OrderDraft{Name: name, Items: items})
	require.NoError(t, err)
	return o
}

func item(ref string, qty int) ItemRequest {
	return ItemRequest{Reference: ref, Quantity: qty}
}

func names(orders []domain.Order) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.Name
	}
	return out
}
