package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/alexanderramin/prodsched/internal/repository"
	"github.com/alexanderramin/prodsched/internal/scheduler"
	"github.com/google/uuid"
)

type orderService struct {
	orders   repository.OrderStore
	now      func() time.Time
	newID    func() string
	observer UseCaseObserver
}

func NewOrderService(orders repository.OrderStore, clock func() time.Time, observers ...UseCaseObserver) OrderService {
	return &orderService{
		orders:   orders,
		now:      clockOrNow(clock),
		newID:    func() string { return uuid.New().String() },
		observer: useCaseObserverOrNoop(observers),
	}
}

// schedule builds the order described by draft and returns the queue with it
// appended and every order dated. plan is not modified.
func (s *orderService) schedule(plan *domain.Plan, draft OrderDraft) ([]domain.Order, error) {
	if err := plan.Capacity.Ready(); err != nil {
		return nil, err
	}
	if len(draft.Items) == 0 {
		return nil, fmt.Errorf("order %q needs at least one item: %w", draft.Name, domain.ErrValidation)
	}

	items := make([]domain.OrderItem, 0, len(draft.Items))
	for _, req := range draft.Items {
		idx := domain.FindPart(plan.Parts, req.Reference)
		if idx < 0 {
			return nil, fmt.Errorf("unknown part reference %q: %w", req.Reference, domain.ErrValidation)
		}
		item, err := domain.NewOrderItem(plan.Parts[idx], req.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	o, err := domain.NewOrder(plan.NextOrderID(), s.newID(), draft.Name, items)
	if err != nil {
		return nil, err
	}

	now := s.now()
	anchor := queueAnchor(plan.Orders)
	switch {
	case len(plan.Orders) == 0:
		start := scheduler.NextAvailableStartDate(nil, plan.Blocked, draft.Start, now)
		anchor = &start
	case draft.Start != nil:
		return nil, fmt.Errorf("a start date only applies to the first order; use schedule recalc --from to move the queue: %w", domain.ErrValidation)
	}

	queue := append(domain.CloneOrders(plan.Orders), o)
	return scheduler.Recompute(queue, plan.Capacity, plan.Blocked, anchor, now), nil
}

// Preview returns the order draft would become, dated, without queueing it.
func (s *orderService) Preview(ctx context.Context, plan *domain.Plan, draft OrderDraft) (domain.Order, error) {
	queue, err := s.schedule(plan, draft)
	if err != nil {
		return domain.Order{}, err
	}
	return queue[len(queue)-1], nil
}

// Add appends the order at the lowest priority.
func (s *orderService) Add(ctx context.Context, plan *domain.Plan, draft OrderDraft) (added domain.Order, err error) {
	tr := newTracker(s.observer, "add-order")
	tr.set("items", len(draft.Items))
	defer func() { tr.done(ctx, err) }()

	queue, err := s.schedule(plan, draft)
	if err != nil {
		return domain.Order{}, err
	}
	plan.Orders = queue
	added = queue[len(queue)-1]
	tr.set("rank", len(queue))
	tr.set("days_needed", added.WorkingDaysNeeded)
	return added, s.orders.Save(ctx, plan.Orders)
}

func (s *orderService) Remove(ctx context.Context, plan *domain.Plan, rank int) (removed domain.Order, err error) {
	tr := newTracker(s.observer, "remove-order")
	tr.set("rank", rank)
	defer func() { tr.done(ctx, err) }()

	idx, err := rankIndex(rank, len(plan.Orders), "order")
	if err != nil {
		return domain.Order{}, err
	}
	removed = plan.Orders[idx]
	plan.Orders = append(plan.Orders[:idx:idx], plan.Orders[idx+1:]...)
	// The new first order keeps its own start date; later orders close the gap.
	reschedule(plan, queueAnchor(plan.Orders), s.now())
	return removed, s.orders.Save(ctx, plan.Orders)
}

// Move shifts the order at rank one position and reschedules from the
// queue's existing first start date.
func (s *orderService) Move(ctx context.Context, plan *domain.Plan, rank int, dir scheduler.Direction) (err error) {
	tr := newTracker(s.observer, "move-order")
	tr.set("rank", rank)
	tr.set("direction", dir.String())
	defer func() { tr.done(ctx, err) }()

	idx, err := rankIndex(rank, len(plan.Orders), "order")
	if err != nil {
		return err
	}
	moved, err := scheduler.Move(plan.Orders, idx, dir)
	if err != nil {
		return err
	}
	anchor := queueAnchor(plan.Orders)
	plan.Orders = moved
	reschedule(plan, anchor, s.now())
	return s.orders.Save(ctx, plan.Orders)
}
