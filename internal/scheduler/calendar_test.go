package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// 2025-03-10 is a Monday.
var (
	monday    = date(2025, 3, 10)
	tuesday   = date(2025, 3, 11)
	wednesday = date(2025, 3, 12)
	thursday  = date(2025, 3, 13)
	friday    = date(2025, 3, 14)
	saturday  = date(2025, 3, 15)
	sunday    = date(2025, 3, 16)
	nextMon   = date(2025, 3, 17)
)

func twoWorkers() domain.Capacity {
	return domain.Capacity{Workers: 2, MinutesPerDay: 480, EfficiencyPercent: 100, Configured: true}
}

func TestIsWorkingDay(t *testing.T) {
	blocked := domain.NewBlockedDays(wednesday, saturday)
	cases := []struct {
		day  time.Time
		want bool
	}{
		{monday, true},
		{tuesday, true},
		{wednesday, false},
		{thursday, true},
		{friday, true},
		{saturday, false},
		{sunday, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsWorkingDay(tc.day, blocked), "day=%s", tc.day.Weekday())
	}
}

func TestIsWorkingDay_IgnoresTimeOfDay(t *testing.T) {
	blocked := domain.NewBlockedDays(tuesday)
	assert.False(t, IsWorkingDay(tuesday.Add(17*time.Hour), blocked))
	assert.True(t, IsWorkingDay(monday.Add(23*time.Hour), blocked))
}

func TestNextWorkingDayOnOrAfter(t *testing.T) {
	cases := []struct {
		name    string
		from    time.Time
		blocked domain.BlockedDays
		want    time.Time
	}{
		{"working day is returned as is", tuesday, nil, tuesday},
		{"saturday moves to monday", saturday, nil, nextMon},
		{"sunday moves to monday", sunday, nil, nextMon},
		{"blocked friday rolls over weekend", friday, domain.NewBlockedDays(friday), nextMon},
		{"run of blocked days", monday, domain.NewBlockedDays(monday, tuesday, wednesday), thursday},
		{"time of day is dropped", wednesday.Add(14 * time.Hour), nil, wednesday},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextWorkingDayOnOrAfter(tc.from, tc.blocked))
		})
	}
}

func TestWorkingDaysNeeded(t *testing.T) {
	c := twoWorkers() // 960 min/day
	assert.Equal(t, 0, WorkingDaysNeeded(0, c))
	assert.Equal(t, 1, WorkingDaysNeeded(1, c))
	assert.Equal(t, 1, WorkingDaysNeeded(960, c))
	assert.Equal(t, 2, WorkingDaysNeeded(960.5, c), "real ceiling, not integer floor division")
	assert.Equal(t, 2, WorkingDaysNeeded(1920, c))
	assert.Equal(t, 3, WorkingDaysNeeded(1921, c))
}

func TestComputeEndDate_TwoDaysFromMonday(t *testing.T) {
	end, days := ComputeEndDate(monday, 1920, twoWorkers(), nil)
	assert.Equal(t, 2, days)
	assert.Equal(t, wednesday, end, "monday is the start, tuesday and wednesday are counted")
}

// The start date is never counted as a production day. This pins that
// behaviour: a one-day order spans start to the next working day.
func TestComputeEndDate_StartDayNotCounted(t *testing.T) {
	end, days := ComputeEndDate(monday, 100, twoWorkers(), nil)
	assert.Equal(t, 1, days)
	assert.Equal(t, tuesday, end)

	end, days = ComputeEndDate(friday, 960, twoWorkers(), nil)
	assert.Equal(t, 1, days)
	assert.Equal(t, nextMon, end, "one-day order starting friday ends monday")
}

func TestComputeEndDate_SkipsBlockedDay(t *testing.T) {
	end, days := ComputeEndDate(monday, 1920, twoWorkers(), domain.NewBlockedDays(tuesday))
	assert.Equal(t, 2, days)
	assert.Equal(t, thursday, end)
}

func TestComputeEndDate_ZeroMinutes(t *testing.T) {
	end, days := ComputeEndDate(monday, 0, twoWorkers(), nil)
	assert.Equal(t, 0, days)
	assert.Equal(t, monday, end)
}

func TestComputeEndDate_FractionalCapacity(t *testing.T) {
	c := domain.Capacity{Workers: 3, MinutesPerDay: 400, EfficiencyPercent: 85, Configured: true} // 1020 min/day
	end, days := ComputeEndDate(monday, 2500, c, nil)
	assert.Equal(t, 3, days)
	assert.Equal(t, thursday, end)
}
