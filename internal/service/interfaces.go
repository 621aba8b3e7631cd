package service

import (
	"context"
	"time"

	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/alexanderramin/prodsched/internal/scheduler"
)

// Every command takes the caller-owned plan, mutates it and persists the
// stores it touched. When a save fails the plan keeps the mutation and the
// returned error wraps domain.ErrPersistence.

type PlanService interface {
	// Load reads every store. A store that fails to load falls back to its
	// empty value and its error is returned as a warning.
	Load(ctx context.Context) (plan *domain.Plan, warnings []error)
}

type CapacityService interface {
	Set(ctx context.Context, plan *domain.Plan, c domain.Capacity) error
}

type PartService interface {
	Add(ctx context.Context, plan *domain.Plan, p domain.Part) error
	Remove(ctx context.Context, plan *domain.Plan, rank int) (domain.Part, error)
}

// ItemRequest asks for Quantity units of the catalog part Reference.
type ItemRequest struct {
	Reference string
	Quantity  int
}

// OrderDraft is an order not yet queued.
type OrderDraft struct {
	Name  string
	Items []ItemRequest
	// Start is only honoured when the queue is empty.
	Start *time.Time
}

type OrderService interface {
	Preview(ctx context.Context, plan *domain.Plan, draft OrderDraft) (domain.Order, error)
	Add(ctx context.Context, plan *domain.Plan, draft OrderDraft) (domain.Order, error)
	Remove(ctx context.Context, plan *domain.Plan, rank int) (domain.Order, error)
	Move(ctx context.Context, plan *domain.Plan, rank int, dir scheduler.Direction) error
}

type CalendarService interface {
	Block(ctx context.Context, plan *domain.Plan, day time.Time) error
	Unblock(ctx context.Context, plan *domain.Plan, day time.Time) error
}

type ScheduleService interface {
	// Recalculate reschedules the whole queue from from, or from the current
	// first start date when from is nil.
	Recalculate(ctx context.Context, plan *domain.Plan, from *time.Time) error
	NextStart(plan *domain.Plan) time.Time
	Status(plan *domain.Plan) Status
}
