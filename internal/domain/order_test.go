package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderItem_TotalMinutes(t *testing.T) {
	part := Part{Name: "Gear", Reference: "GR-01", TimePerUnitMinutes: 60, ProductionOrderCode: "OP-7"}

	item, err := NewOrderItem(part, 10)
	require.NoError(t, err)
	assert.Equal(t, 600.0, item.TotalMinutes)
	assert.Equal(t, "Gear", item.PartName)
	assert.Equal(t, "GR-01", item.PartReference)
	assert.Equal(t, "OP-7", item.ProductionOrderCode)
}

func TestNewOrderItem_RejectsNonPositiveQuantity(t *testing.T) {
	part := Part{Name: "Gear", Reference: "GR-01", TimePerUnitMinutes: 60}
	for _, q := range []int{0, -3} {
		_, err := NewOrderItem(part, q)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation, "quantity=%d", q)
	}
}

func TestNewOrderItem_CopiesPartByValue(t *testing.T) {
	part := Part{Name: "Gear", Reference: "GR-01", TimePerUnitMinutes: 60}
	item, err := NewOrderItem(part, 2)
	require.NoError(t, err)

	part.TimePerUnitMinutes = 90
	part.Name = "Renamed"
	assert.Equal(t, 60.0, item.TimePerUnitMinutes)
	assert.Equal(t, "Gear", item.PartName)
}

func TestNewOrder_SumsItems(t *testing.T) {
	part := Part{Name: "Gear", Reference: "GR-01", TimePerUnitMinutes: 60}
	a, err := NewOrderItem(part, 10)
	require.NoError(t, err)
	b, err := NewOrderItem(part, 10)
	require.NoError(t, err)

	o, err := NewOrder(1, "uid-1", "Order 123", []OrderItem{a, b})
	require.NoError(t, err)
	assert.Equal(t, 1200.0, o.TotalMinutes)
	assert.Len(t, o.Items, 2)
}

func TestNewOrder_Validation(t *testing.T) {
	item := LegacyItem(30)
	cases := []struct {
		name  string
		order string
		items []OrderItem
	}{
		{"empty name", "", []OrderItem{item}},
		{"blank name", "   ", []OrderItem{item}},
		{"no items", "Order", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewOrder(1, "", tc.order, tc.items)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestLegacyItem(t *testing.T) {
	it := LegacyItem(450)
	assert.Equal(t, LegacyItemName, it.PartName)
	assert.Equal(t, "N/A", it.PartReference)
	assert.Equal(t, 1, it.Quantity)
	assert.Equal(t, 450.0, it.TimePerUnitMinutes)
	assert.Equal(t, 450.0, it.TotalMinutes)
}

func TestCloneOrders_Independent(t *testing.T) {
	orig := []Order{{Name: "A", Items: []OrderItem{LegacyItem(10)}}}
	cp := CloneOrders(orig)
	cp[0].Items[0].Quantity = 99
	cp[0].Name = "B"
	assert.Equal(t, 1, orig[0].Items[0].Quantity)
	assert.Equal(t, "A", orig[0].Name)
}

func TestPartValidate(t *testing.T) {
	assert.NoError(t, Part{Name: "Gear", Reference: "GR", TimePerUnitMinutes: 1}.Validate())
	assert.ErrorIs(t, Part{Reference: "GR", TimePerUnitMinutes: 1}.Validate(), ErrValidation)
	assert.ErrorIs(t, Part{Name: "Gear", TimePerUnitMinutes: 1}.Validate(), ErrValidation)
	assert.ErrorIs(t, Part{Name: "Gear", Reference: "GR"}.Validate(), ErrValidation)
	assert.ErrorIs(t, Part{Name: "Gear", Reference: "GR", TimePerUnitMinutes: math.NaN()}.Validate(), ErrValidation)
	assert.ErrorIs(t, Part{Name: "Gear", Reference: "GR", TimePerUnitMinutes: math.Inf(1)}.Validate(), ErrValidation)
}

func TestFindPart_CaseInsensitive(t *testing.T) {
	parts := []Part{{Reference: "ENG-001"}, {Reference: "ENG-002"}}
	assert.Equal(t, 1, FindPart(parts, "eng-002"))
	assert.Equal(t, -1, FindPart(parts, "ENG-003"))
}
