package service

import (
	"context"
	"time"

	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/alexanderramin/prodsched/internal/repository"
	"github.com/alexanderramin/prodsched/internal/scheduler"
)

// Status is a summary of the plan for display.
type Status struct {
	Capacity     domain.Capacity
	Ready        error
	Parts        int
	Orders       int
	BlockedDays  int
	TotalMinutes float64
	TotalDays    int
	FirstStart   time.Time
	LastEnd      time.Time
	NextStart    time.Time
}

type scheduleService struct {
	orders   repository.OrderStore
	now      func() time.Time
	observer UseCaseObserver
}

func NewScheduleService(orders repository.OrderStore, clock func() time.Time, observers ...UseCaseObserver) ScheduleService {
	return &scheduleService{
		orders:   orders,
		now:      clockOrNow(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *scheduleService) Recalculate(ctx context.Context, plan *domain.Plan, from *time.Time) (err error) {
	tr := newTracker(s.observer, "recalculate")
	defer func() { tr.done(ctx, err) }()

	if err = plan.Capacity.Ready(); err != nil {
		return err
	}
	anchor := queueAnchor(plan.Orders)
	if from != nil {
		d := domain.DateOf(*from)
		anchor = &d
		tr.set("from", d.Format(domain.DateLayout))
	}
	tr.set("orders", len(plan.Orders))
	if !reschedule(plan, anchor, s.now()) {
		return nil
	}
	return s.orders.Save(ctx, plan.Orders)
}

// NextStart is the date a new order would start on.
func (s *scheduleService) NextStart(plan *domain.Plan) time.Time {
	return scheduler.NextAvailableStartDate(plan.Orders, plan.Blocked, nil, s.now())
}

func (s *scheduleService) Status(plan *domain.Plan) Status {
	st := Status{
		Capacity:     plan.Capacity,
		Ready:        plan.Capacity.Ready(),
		Parts:        len(plan.Parts),
		Orders:       len(plan.Orders),
		BlockedDays:  len(plan.Blocked),
		TotalMinutes: plan.TotalMinutes(),
		NextStart:    s.NextStart(plan),
	}
	for i, o := range plan.Orders {
		st.TotalDays += o.WorkingDaysNeeded
		if i == 0 {
			st.FirstStart = o.StartDate
		}
		if o.EndDate.After(st.LastEnd) {
			st.LastEnd = o.EndDate
		}
	}
	return st
}
