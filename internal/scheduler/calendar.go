package scheduler

import (
	"math"
	"time"

	"github.com/alexanderramin/prodsched/internal/domain"
)

// IsWorkingDay reports whether date is a weekday that is not blocked.
func IsWorkingDay(date time.Time, blocked domain.BlockedDays) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return !blocked.Contains(date)
}

// NextWorkingDayOnOrAfter returns the first working day >= date, truncated to
// its calendar day. The loop always ends: every week has five weekdays and
// blocked is finite.
func NextWorkingDayOnOrAfter(date time.Time, blocked domain.BlockedDays) time.Time {
	d := domain.DateOf(date)
	for !IsWorkingDay(d, blocked) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// WorkingDaysNeeded is ceil(totalMinutes / daily capacity). Zero or negative
// minutes need no days.
func WorkingDaysNeeded(totalMinutes float64, capacity domain.Capacity) int {
	if totalMinutes <= 0 {
		return 0
	}
	days := int(math.Ceil(totalMinutes / capacity.DailyCapacityMinutes()))
	if days < 1 {
		days = 1
	}
	return days
}

// ComputeEndDate returns the end date and working days needed for an order
// starting on start. Only working days strictly after start are counted:
// an order needing one day ends on the next working day after start.
func ComputeEndDate(start time.Time, totalMinutes float64, capacity domain.Capacity, blocked domain.BlockedDays) (time.Time, int) {
	days := WorkingDaysNeeded(totalMinutes, capacity)
	current := domain.DateOf(start)
	for remaining := days; remaining > 0; {
		current = current.AddDate(0, 0, 1)
		if IsWorkingDay(current, blocked) {
			remaining--
		}
	}
	return current, days
}
