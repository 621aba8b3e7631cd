package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/alexanderramin/prodsched/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends runs fn once per storage backend.
func backends(t *testing.T, fn func(t *testing.T, s Stores)) {
	t.Helper()
	t.Run("json", func(t *testing.T) {
		fn(t, NewJSONStores(t.TempDir()))
	})
	t.Run("sqlite", func(t *testing.T) {
		fn(t, NewSQLiteStores(testutil.NewTestDB(t)))
	})
}

func TestStores_EmptyLoadsDefaults(t *testing.T) {
	backends(t, func(t *testing.T, s Stores) {
		ctx := context.Background()

		c, err := s.Capacity.Load(ctx)
		require.NoError(t, err)
		assert.False(t, c.Configured)

		parts, err := s.Parts.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, parts)

		blocked, err := s.Blocked.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, blocked)

		orders, err := s.Orders.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func TestStores_CapacityRoundTrip(t *testing.T) {
	backends(t, func(t *testing.T, s Stores) {
		ctx := context.Background()
		want := domain.Capacity{Workers: 3, MinutesPerDay: 452.75, EfficiencyPercent: 87.5, Configured: true}

		require.NoError(t, s.Capacity.Save(ctx, want))
		got, err := s.Capacity.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got, "real precision must survive")

		want.Workers = 4
		require.NoError(t, s.Capacity.Save(ctx, want))
		got, err = s.Capacity.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, got.Workers)
	})
}

func TestStores_PartsRoundTrip(t *testing.T) {
	backends(t, func(t *testing.T, s Stores) {
		ctx := context.Background()
		want := []domain.Part{
			testutil.NewTestPart("ENG-002", 45.5),
			testutil.NewTestPart("ENG-001", 60, testutil.WithProductionOrder("")),
		}

		require.NoError(t, s.Parts.Save(ctx, want))
		got, err := s.Parts.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got, "catalog order is preserved")

		require.NoError(t, s.Parts.Save(ctx, want[:1]))
		got, err = s.Parts.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestStores_BlockedDaysRoundTrip(t *testing.T) {
	backends(t, func(t *testing.T, s Stores) {
		ctx := context.Background()
		want := domain.NewBlockedDays(
			testutil.Monday.AddDate(0, 0, 30),
			testutil.Monday,
			testutil.Monday.AddDate(0, 0, 2),
		)

		require.NoError(t, s.Blocked.Save(ctx, want))
		got, err := s.Blocked.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, want.Strings(), got.Strings())
	})
}

func TestStores_OrdersRoundTrip(t *testing.T) {
	backends(t, func(t *testing.T, s Stores) {
		ctx := context.Background()
		gear := testutil.NewTestPart("GR-1", 60)
		shaft := testutil.NewTestPart("SH-1", 12.5)

		want := []domain.Order{
			testutil.NewTestOrder(0,
				testutil.WithItem(gear, 10), testutil.WithItem(shaft, 4),
				testutil.WithDates(testutil.Monday, testutil.Monday.AddDate(0, 0, 1), 1)),
			testutil.NewTestOrder(1920,
				testutil.WithDates(testutil.Monday.AddDate(0, 0, 2), testutil.Monday.AddDate(0, 0, 4), 2)),
		}

		require.NoError(t, s.Orders.Save(ctx, want))
		got, err := s.Orders.Load(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, want, got)

		// Reordered queue replaces the previous one.
		require.NoError(t, s.Orders.Save(ctx, []domain.Order{want[1], want[0]}))
		got, err = s.Orders.Load(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, want[1].UID, got[0].UID)
		assert.Equal(t, want[0].Items, got[1].Items)
	})
}

func TestStores_OrderDatesKeepCalendarDay(t *testing.T) {
	backends(t, func(t *testing.T, s Stores) {
		ctx := context.Background()
		start := testutil.Monday.Add(15 * time.Hour)
		end := testutil.Monday.AddDate(0, 0, 1).Add(23*time.Hour + 59*time.Minute)
		want := testutil.NewTestOrder(960, testutil.WithDates(start, end, 1))

		require.NoError(t, s.Orders.Save(ctx, []domain.Order{want}))
		got, err := s.Orders.Load(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)

		assert.True(t, domain.SameDay(start, got[0].StartDate), "start %s", got[0].StartDate)
		assert.True(t, domain.SameDay(end, got[0].EndDate), "end %s", got[0].EndDate)
		assert.Equal(t, domain.DateOf(start), got[0].StartDate, "loaded dates are midnight UTC")
	})
}

func TestStores_OrdersWithoutDates(t *testing.T) {
	backends(t, func(t *testing.T, s Stores) {
		ctx := context.Background()
		o := testutil.NewTestOrder(100)

		require.NoError(t, s.Orders.Save(ctx, []domain.Order{o}))
		got, err := s.Orders.Load(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, got[0].StartDate.IsZero())
		assert.True(t, got[0].EndDate.IsZero())
	})
}

func TestStores_CancelledContext(t *testing.T) {
	backends(t, func(t *testing.T, s Stores) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.Error(t, s.Orders.Save(ctx, []domain.Order{testutil.NewTestOrder(10)}))
	})
}
