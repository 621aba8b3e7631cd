package scheduler

import (
	"fmt"
	"time"

	"github.com/alexanderramin/prodsched/internal/domain"
)

// Direction is a one-position move within the priority queue.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// NextAvailableStartDate picks the start date for a new order: explicit if
// given, otherwise now when the queue is empty, otherwise the day after the
// latest end date. The result is always a working day.
func NextAvailableStartDate(orders []domain.Order, blocked domain.BlockedDays, explicit *time.Time, now time.Time) time.Time {
	if explicit != nil {
		return NextWorkingDayOnOrAfter(*explicit, blocked)
	}
	if len(orders) == 0 {
		return NextWorkingDayOnOrAfter(now, blocked)
	}
	last := orders[0].EndDate
	for _, o := range orders[1:] {
		if o.EndDate.After(last) {
			last = o.EndDate
		}
	}
	return NextWorkingDayOnOrAfter(last.AddDate(0, 0, 1), blocked)
}

// Recompute assigns start/end dates to every order in rank order and returns
// a new slice; the input is not modified. The first order starts on
// pinnedFirstStart (or now) moved to a working day; each later order starts on
// the first working day after its predecessor ends. When capacity is not
// configured the orders are returned unchanged.
func Recompute(orders []domain.Order, capacity domain.Capacity, blocked domain.BlockedDays, pinnedFirstStart *time.Time, now time.Time) []domain.Order {
	out := domain.CloneOrders(orders)
	if len(out) == 0 || capacity.Ready() != nil {
		return out
	}

	current := now
	if pinnedFirstStart != nil {
		current = *pinnedFirstStart
	}
	current = NextWorkingDayOnOrAfter(current, blocked)

	for i := range out {
		end, days := ComputeEndDate(current, out[i].TotalMinutes, capacity, blocked)
		out[i].StartDate = current
		out[i].EndDate = end
		out[i].WorkingDaysNeeded = days
		current = NextWorkingDayOnOrAfter(end.AddDate(0, 0, 1), blocked)
	}
	return out
}

// Reorder swaps the orders at ranks a and b (zero-based) in a copy of the
// queue. Dates are left stale; callers recompute.
func Reorder(orders []domain.Order, a, b int) ([]domain.Order, error) {
	if err := checkRank(orders, a); err != nil {
		return nil, err
	}
	if err := checkRank(orders, b); err != nil {
		return nil, err
	}
	out := domain.CloneOrders(orders)
	out[a], out[b] = out[b], out[a]
	return out, nil
}

// Move shifts the order at rank one position up or down.
func Move(orders []domain.Order, rank int, dir Direction) ([]domain.Order, error) {
	if err := checkRank(orders, rank); err != nil {
		return nil, err
	}
	other := rank - 1
	if dir == Down {
		other = rank + 1
	}
	if other < 0 || other >= len(orders) {
		return nil, fmt.Errorf("order #%d cannot move %s: %w", rank+1, dir, domain.ErrValidation)
	}
	return Reorder(orders, rank, other)
}

func checkRank(orders []domain.Order, rank int) error {
	if rank < 0 || rank >= len(orders) {
		return fmt.Errorf("rank %d out of range (1-%d): %w", rank+1, len(orders), domain.ErrValidation)
	}
	return nil
}
