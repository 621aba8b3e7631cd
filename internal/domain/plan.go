package domain

// Plan is the complete caller-owned scheduling state: capacity, catalog,
// priority queue and calendar exceptions. Command handlers take a *Plan,
// mutate it and persist the parts they touched.
type Plan struct {
	Capacity Capacity
	Parts    []Part
	Orders   []Order
	Blocked  BlockedDays
}

// NewPlan returns an empty, unconfigured plan.
func NewPlan() *Plan {
	return &Plan{Blocked: NewBlockedDays()}
}

// NextOrderID returns the display ID for a new order.
func (p *Plan) NextOrderID() int {
	return len(p.Orders) + 1
}

// TotalMinutes sums the minutes of every queued order.
func (p *Plan) TotalMinutes() float64 {
	var total float64
	for _, o := range p.Orders {
		total += o.TotalMinutes
	}
	return total
}
