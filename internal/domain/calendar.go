package domain

import (
	"fmt"
	"sort"
	"time"
)

// DateLayout is the ISO calendar-date layout used for storage and flags.
const DateLayout = "2006-01-02"

// DateOf truncates t to its calendar day at midnight UTC. The day is taken
// in t's own location, so a local 23:30 stays on the same day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, ErrValidation)
	}
	return t, nil
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}

// BlockedDays is a set of calendar dates excluded from production regardless
// of weekday. The zero value is an empty set ready to use for lookups; use
// NewBlockedDays before Add.
type BlockedDays map[string]struct{}

func NewBlockedDays(dates ...time.Time) BlockedDays {
	b := make(BlockedDays, len(dates))
	for _, d := range dates {
		b[DateOf(d).Format(DateLayout)] = struct{}{}
	}
	return b
}

// Contains reports whether the calendar day of t is blocked.
func (b BlockedDays) Contains(t time.Time) bool {
	_, ok := b[DateOf(t).Format(DateLayout)]
	return ok
}

// Add blocks the calendar day of t. It returns false if it was already blocked.
func (b BlockedDays) Add(t time.Time) bool {
	if b.Contains(t) {
		return false
	}
	b[DateOf(t).Format(DateLayout)] = struct{}{}
	return true
}

// Remove unblocks the calendar day of t. It returns false if it was not blocked.
func (b BlockedDays) Remove(t time.Time) bool {
	if !b.Contains(t) {
		return false
	}
	delete(b, DateOf(t).Format(DateLayout))
	return true
}

// Sorted returns the blocked dates in ascending order.
func (b BlockedDays) Sorted() []time.Time {
	keys := b.Strings()
	out := make([]time.Time, 0, len(keys))
	for _, k := range keys {
		t, err := time.Parse(DateLayout, k)
		if err != nil {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Strings returns the blocked dates as ascending ISO strings.
func (b BlockedDays) Strings() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy of the set.
func (b BlockedDays) Clone() BlockedDays {
	out := make(BlockedDays, len(b))
	for k := range b {
		out[k] = struct{}{}
	}
	return out
}
