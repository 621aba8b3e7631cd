package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/google/uuid"
)

var testOrderCounter atomic.Int64

// Monday is a fixed Monday (2025-03-10) used as the reference "now" in tests.
var Monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

// Clock returns a func() time.Time that always reports t.
func Clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// NewTestCapacity returns a configured 2 × 480 min × 100% capacity (960 min/day).
func NewTestCapacity() domain.Capacity {
	return domain.Capacity{Workers: 2, MinutesPerDay: 480, EfficiencyPercent: 100, Configured: true}
}

// Part options
type PartOption func(*domain.Part)

func WithPartName(name string) PartOption {
	return func(p *domain.Part) {
		p.Name = name
	}
}

func WithProductionOrder(code string) PartOption {
	return func(p *domain.Part) {
		p.ProductionOrderCode = code
	}
}

func NewTestPart(ref string, minutes float64, opts ...PartOption) domain.Part {
	p := domain.Part{
		Name:                "Part " + ref,
		Reference:           ref,
		TimePerUnitMinutes:  minutes,
		ProductionOrderCode: "OP-" + ref,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Order options
type OrderOption func(*domain.Order)

func WithOrderName(name string) OrderOption {
	return func(o *domain.Order) {
		o.Name = name
	}
}

func WithOrderID(id int) OrderOption {
	return func(o *domain.Order) {
		o.ID = id
	}
}

func WithItem(p domain.Part, qty int) OrderOption {
	return func(o *domain.Order) {
		o.Items = append(o.Items, domain.OrderItem{
			PartName:            p.Name,
			PartReference:       p.Reference,
			Quantity:            qty,
			TimePerUnitMinutes:  p.TimePerUnitMinutes,
			TotalMinutes:        float64(qty) * p.TimePerUnitMinutes,
			ProductionOrderCode: p.ProductionOrderCode,
		})
		o.TotalMinutes = domain.SumItemMinutes(o.Items)
	}
}

func WithDates(start, end time.Time, days int) OrderOption {
	return func(o *domain.Order) {
		o.StartDate = start
		o.EndDate = end
		o.WorkingDaysNeeded = days
	}
}

// NewTestOrder returns an order with a fresh UID. Without WithItem it gets a
// single item worth totalMinutes.
func NewTestOrder(totalMinutes float64, opts ...OrderOption) domain.Order {
	n := testOrderCounter.Add(1)
	o := domain.Order{
		ID:   int(n),
		UID:  uuid.New().String(),
		Name: fmt.Sprintf("Order %d", n),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.Items) == 0 {
		o.Items = []domain.OrderItem{domain.LegacyItem(totalMinutes)}
		o.TotalMinutes = totalMinutes
	}
	return o
}
