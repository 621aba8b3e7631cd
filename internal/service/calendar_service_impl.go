package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/alexanderramin/prodsched/internal/repository"
)

type calendarService struct {
	blocked  repository.BlockedDayStore
	orders   repository.OrderStore
	now      func() time.Time
	observer UseCaseObserver
}

func NewCalendarService(
	blocked repository.BlockedDayStore,
	orders repository.OrderStore,
	clock func() time.Time,
	observers ...UseCaseObserver,
) CalendarService {
	return &calendarService{
		blocked:  blocked,
		orders:   orders,
		now:      clockOrNow(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

// Block marks day as non-working and reschedules the queue. Blocking a day
// twice returns domain.ErrDuplicate and changes nothing.
func (s *calendarService) Block(ctx context.Context, plan *domain.Plan, day time.Time) (err error) {
	day = domain.DateOf(day)
	tr := newTracker(s.observer, "block-day")
	tr.set("day", day.Format(domain.DateLayout))
	defer func() { tr.done(ctx, err) }()

	ensureBlocked(plan)
	if !plan.Blocked.Add(day) {
		return fmt.Errorf("%s is already blocked: %w", day.Format(domain.DateLayout), domain.ErrDuplicate)
	}
	return s.persist(ctx, plan, queueAnchor(plan.Orders))
}

// Unblock returns day to the working calendar and reschedules the queue.
func (s *calendarService) Unblock(ctx context.Context, plan *domain.Plan, day time.Time) (err error) {
	day = domain.DateOf(day)
	tr := newTracker(s.observer, "unblock-day")
	tr.set("day", day.Format(domain.DateLayout))
	defer func() { tr.done(ctx, err) }()

	ensureBlocked(plan)
	if !plan.Blocked.Remove(day) {
		return fmt.Errorf("%s is not blocked: %w", day.Format(domain.DateLayout), domain.ErrNotFound)
	}
	return s.persist(ctx, plan, queueAnchor(plan.Orders))
}

func (s *calendarService) persist(ctx context.Context, plan *domain.Plan, anchor *time.Time) error {
	err := s.blocked.Save(ctx, plan.Blocked)
	if reschedule(plan, anchor, s.now()) {
		err = errors.Join(err, s.orders.Save(ctx, plan.Orders))
	}
	return err
}
