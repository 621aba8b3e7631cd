package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/alexanderramin/prodsched/internal/repository"
)

type planService struct {
	stores   repository.Stores
	observer UseCaseObserver
}

func NewPlanService(stores repository.Stores, observers ...UseCaseObserver) PlanService {
	return &planService{stores: stores, observer: useCaseObserverOrNoop(observers)}
}

func (s *planService) Load(ctx context.Context) (*domain.Plan, []error) {
	tr := newTracker(s.observer, "load-plan")
	plan := domain.NewPlan()
	var warnings []error

	if c, err := s.stores.Capacity.Load(ctx); err != nil {
		warnings = append(warnings, fmt.Errorf("loading capacity: %w", err))
	} else {
		plan.Capacity = c
	}

	if parts, err := s.stores.Parts.Load(ctx); err != nil {
		warnings = append(warnings, fmt.Errorf("loading parts: %w", err))
	} else {
		plan.Parts = parts
	}

	if blocked, err := s.stores.Blocked.Load(ctx); err != nil {
		warnings = append(warnings, fmt.Errorf("loading blocked days: %w", err))
	} else if blocked != nil {
		plan.Blocked = blocked
	}

	if orders, err := s.stores.Orders.Load(ctx); err != nil {
		warnings = append(warnings, fmt.Errorf("loading orders: %w", err))
	} else {
		plan.Orders = orders
	}

	tr.set("orders", len(plan.Orders))
	tr.set("parts", len(plan.Parts))
	tr.set("warnings", len(warnings))
	var err error
	if len(warnings) > 0 {
		err = warnings[0]
	}
	tr.done(ctx, err)
	return plan, warnings
}
