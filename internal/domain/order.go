package domain

import (
	"fmt"
	"strings"
	"time"
)

// Values used for the synthetic item of a legacy order record.
const (
	LegacyItemName  = "Generic Item"
	LegacyItemRef   = "N/A"
	LegacyOrderCode = "N/A"
)

type OrderItem struct {
	PartName            string
	PartReference       string
	Quantity            int
	TimePerUnitMinutes  float64
	TotalMinutes        float64
	ProductionOrderCode string
}

// NewOrderItem copies the part by value and derives the item total.
func NewOrderItem(p Part, quantity int) (OrderItem, error) {
	if quantity <= 0 {
		return OrderItem{}, fmt.Errorf("quantity for %q must be positive, got %d: %w", p.Reference, quantity, ErrValidation)
	}
	return OrderItem{
		PartName:            p.Name,
		PartReference:       p.Reference,
		Quantity:            quantity,
		TimePerUnitMinutes:  p.TimePerUnitMinutes,
		TotalMinutes:        float64(quantity) * p.TimePerUnitMinutes,
		ProductionOrderCode: p.ProductionOrderCode,
	}, nil
}

// LegacyItem builds the single item that stands in for an order record
// saved before orders had line items.
func LegacyItem(totalMinutes float64) OrderItem {
	return OrderItem{
		PartName:            LegacyItemName,
		PartReference:       LegacyItemRef,
		Quantity:            1,
		TimePerUnitMinutes:  totalMinutes,
		TotalMinutes:        totalMinutes,
		ProductionOrderCode: LegacyOrderCode,
	}
}

// Order is a production request scheduled as one indivisible unit.
// ID is display metadata assigned as 1 + order count and may collide after
// deletions; UID is the stable identity.
type Order struct {
	ID           int
	UID          string
	Name         string
	Items        []OrderItem
	TotalMinutes float64

	StartDate         time.Time
	EndDate           time.Time
	WorkingDaysNeeded int
}

// NewOrder validates the name and items and stores the derived total.
func NewOrder(id int, uid, name string, items []OrderItem) (Order, error) {
	if strings.TrimSpace(name) == "" {
		return Order{}, fmt.Errorf("order name is required: %w", ErrValidation)
	}
	if len(items) == 0 {
		return Order{}, fmt.Errorf("order %q needs at least one item: %w", name, ErrValidation)
	}
	o := Order{
		ID:    id,
		UID:   uid,
		Name:  strings.TrimSpace(name),
		Items: append([]OrderItem(nil), items...),
	}
	o.TotalMinutes = SumItemMinutes(o.Items)
	return o, nil
}

// SumItemMinutes totals the minutes of the given items.
func SumItemMinutes(items []OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += it.TotalMinutes
	}
	return total
}

// Clone returns a copy that shares no slices with o.
func (o Order) Clone() Order {
	o.Items = append([]OrderItem(nil), o.Items...)
	return o
}

// CloneOrders deep-copies a priority queue.
func CloneOrders(orders []Order) []Order {
	if orders == nil {
		return nil
	}
	out := make([]Order, len(orders))
	for i, o := range orders {
		out[i] = o.Clone()
	}
	return out
}
