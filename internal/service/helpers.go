package service

import (
	"fmt"
	"time"

	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/alexanderramin/prodsched/internal/scheduler"
)

func clockOrNow(clock func() time.Time) func() time.Time {
	if clock == nil {
		return func() time.Time { return time.Now().UTC() }
	}
	return clock
}

// queueAnchor is the first order's start date, which later mutations keep
// fixed. Nil when the queue is empty or was never scheduled.
func queueAnchor(orders []domain.Order) *time.Time {
	if len(orders) == 0 || orders[0].StartDate.IsZero() {
		return nil
	}
	start := orders[0].StartDate
	return &start
}

// reschedule recomputes every order from anchor. It reports whether the
// queue was actually recomputed: without configured capacity it is left as is.
func reschedule(plan *domain.Plan, anchor *time.Time, now time.Time) bool {
	if len(plan.Orders) == 0 || plan.Capacity.Ready() != nil {
		return false
	}
	plan.Orders = scheduler.Recompute(plan.Orders, plan.Capacity, plan.Blocked, anchor, now)
	return true
}

// rankIndex converts a 1-based rank to a slice index.
func rankIndex(rank, n int, what string) (int, error) {
	if n == 0 {
		return 0, fmt.Errorf("no %ss: %w", what, domain.ErrValidation)
	}
	if rank < 1 || rank > n {
		return 0, fmt.Errorf("%s #%d out of range (1-%d): %w", what, rank, n, domain.ErrValidation)
	}
	return rank - 1, nil
}

func ensureBlocked(plan *domain.Plan) {
	if plan.Blocked == nil {
		plan.Blocked = domain.NewBlockedDays()
	}
}
