package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/alexanderramin/prodsched/internal/repository"
)

type capacityService struct {
	capacity repository.CapacityStore
	orders   repository.OrderStore
	now      func() time.Time
	observer UseCaseObserver
}

func NewCapacityService(
	capacity repository.CapacityStore,
	orders repository.OrderStore,
	clock func() time.Time,
	observers ...UseCaseObserver,
) CapacityService {
	return &capacityService{
		capacity: capacity,
		orders:   orders,
		now:      clockOrNow(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

// Set replaces the capacity and reschedules the queue from its current anchor.
func (s *capacityService) Set(ctx context.Context, plan *domain.Plan, c domain.Capacity) (err error) {
	tr := newTracker(s.observer, "set-capacity")
	defer func() { tr.done(ctx, err) }()

	c.Configured = true
	if err = c.Validate(); err != nil {
		return err
	}
	tr.set("daily_minutes", c.DailyCapacityMinutes())

	anchor := queueAnchor(plan.Orders)
	plan.Capacity = c
	saveErr := s.capacity.Save(ctx, c)

	if reschedule(plan, anchor, s.now()) {
		tr.set("orders", len(plan.Orders))
		saveErr = errors.Join(saveErr, s.orders.Save(ctx, plan.Orders))
	}
	return saveErr
}
