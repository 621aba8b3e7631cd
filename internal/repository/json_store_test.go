package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/alexanderramin/prodsched/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
}

func fixedIDs(ids ...string) func() string {
	i := 0
	return func() string {
		id := ids[i%len(ids)]
		i++
		return id
	}
}

func TestJSONOrders_LegacyBareArray(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, OrdersFile, `[
		{"id": 1, "name": "Old job", "total_minutes": 1920, "start_date": "2025-03-10", "end_date": "2025-03-12", "days_needed": 2}
	]`)

	store := NewJSONOrderStore(dir)
	store.newID = fixedIDs("uid-1")

	orders, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)

	o := orders[0]
	assert.Equal(t, "uid-1", o.UID, "missing uid is generated")
	assert.Equal(t, "Old job", o.Name)
	assert.Equal(t, testutil.Monday, o.StartDate)
	require.Len(t, o.Items, 1)
	assert.Equal(t, domain.LegacyItemName, o.Items[0].PartName)
	assert.Equal(t, domain.LegacyItemRef, o.Items[0].PartReference)
	assert.Equal(t, 1, o.Items[0].Quantity)
	assert.Equal(t, 1920.0, o.Items[0].TotalMinutes)
}

func TestJSONOrders_LegacyEnvelope(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, OrdersFile, `{
		"config": {"workers": 2, "minutes_per_day": 480, "efficiency": 100, "config_saved": true},
		"orders": [
			{"id": 1, "uid": "keep-me", "name": "A", "total_minutes": 60, "start_date": "", "end_date": ""},
			{"id": 2, "name": "B", "total_minutes": 30, "items": []}
		]
	}`)

	orders, err := NewJSONOrderStore(dir).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "keep-me", orders[0].UID)
	assert.True(t, orders[0].StartDate.IsZero())
	assert.NotEmpty(t, orders[1].UID)
	assert.Empty(t, orders[1].Items, "an explicit empty item list is not upgraded")
}

func TestJSONOrders_SaveWritesCurrentSchema(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, OrdersFile, `[{"id": 1, "name": "Old", "total_minutes": 10}]`)
	store := NewJSONOrderStore(dir)

	orders, err := store.Load(context.Background())
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), orders))

	raw, err := os.ReadFile(filepath.Join(dir, OrdersFile))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"version": 2`)
	assert.Contains(t, string(raw), `"items": [`)
	assert.Contains(t, string(raw), `"uid": "`+orders[0].UID+`"`)

	again, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, orders, again, "upgrade is stable once written back")
}

func TestJSONOrders_NewerSchemaRejected(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, OrdersFile, `{"version": 99, "orders": []}`)

	_, err := NewJSONOrderStore(dir).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Contains(t, err.Error(), "newer than supported")
}

func TestJSONOrders_BadDate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, OrdersFile, `[{"id": 1, "name": "A", "total_minutes": 10, "start_date": "10/03/2025"}]`)

	_, err := NewJSONOrderStore(dir).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestJSONStores_MalformedFiles(t *testing.T) {
	ctx := context.Background()
	cases := map[string]func(Stores) error{
		CapacityFile: func(s Stores) error { _, err := s.Capacity.Load(ctx); return err },
		PartsFile:    func(s Stores) error { _, err := s.Parts.Load(ctx); return err },
		BlockedFile:  func(s Stores) error { _, err := s.Blocked.Load(ctx); return err },
		OrdersFile:   func(s Stores) error { _, err := s.Orders.Load(ctx); return err },
	}
	for name, load := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, name, `{not json`)
			err := load(NewJSONStores(dir))
			assert.ErrorIs(t, err, domain.ErrPersistence)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestJSONStores_BlankFileIsMissing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CapacityFile, "  \n")

	c, err := NewJSONCapacityStore(dir).Load(context.Background())
	require.NoError(t, err)
	assert.False(t, c.Configured)
}

func TestJSONCapacity_LegacyEnvelopeAndNulls(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CapacityFile, `{"config": {"workers": 3, "minutes_per_day": 450.5, "efficiency": 90, "config_saved": true}}`)

	c, err := NewJSONCapacityStore(dir).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Capacity{Workers: 3, MinutesPerDay: 450.5, EfficiencyPercent: 90, Configured: true}, c)

	writeFile(t, dir, CapacityFile, `{"workers": null, "minutes_per_day": null, "efficiency": null, "config_saved": false}`)
	c, err = NewJSONCapacityStore(dir).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Capacity{}, c)
}

func TestJSONBlocked_SavedSorted(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONBlockedDayStore(dir)
	days := domain.NewBlockedDays(
		testutil.Monday.AddDate(0, 1, 0),
		testutil.Monday,
		testutil.Monday.AddDate(0, 0, 3),
	)
	require.NoError(t, store.Save(context.Background(), days))

	raw, err := os.ReadFile(filepath.Join(dir, BlockedFile))
	require.NoError(t, err)
	first := strings.Index(string(raw), "2025-03-10")
	second := strings.Index(string(raw), "2025-03-13")
	third := strings.Index(string(raw), "2025-04-10")
	assert.True(t, first < second && second < third, "dates are written ascending:\n%s", raw)
}

func TestJSONBlocked_BadEntry(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, BlockedFile, `["2025-03-10", "someday"]`)

	_, err := NewJSONBlockedDayStore(dir).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestJSONWrite_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	require.NoError(t, NewJSONPartStore(dir).Save(context.Background(), []domain.Part{testutil.NewTestPart("X", 1)}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp file is left behind")
	assert.Equal(t, PartsFile, entries[0].Name())
}

func TestJSONWrite_FailureKeepsPreviousFile(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONPartStore(dir)
	require.NoError(t, store.Save(context.Background(), []domain.Part{testutil.NewTestPart("X", 1)}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, store.Save(ctx, nil))

	parts, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, parts, 1)
}
