package repository

import (
	"context"

	"github.com/alexanderramin/prodsched/internal/domain"
)

// Each store loads and saves one collection as a whole. There is no
// transactional link between stores: a failed write leaves the others as
// they were.

type CapacityStore interface {
	Load(ctx context.Context) (domain.Capacity, error)
	Save(ctx context.Context, c domain.Capacity) error
}

type PartStore interface {
	Load(ctx context.Context) ([]domain.Part, error)
	Save(ctx context.Context, parts []domain.Part) error
}

type BlockedDayStore interface {
	Load(ctx context.Context) (domain.BlockedDays, error)
	Save(ctx context.Context, days domain.BlockedDays) error
}

type OrderStore interface {
	Load(ctx context.Context) ([]domain.Order, error)
	Save(ctx context.Context, orders []domain.Order) error
}

// Stores bundles the four stores of one backend.
type Stores struct {
	Capacity CapacityStore
	Parts    PartStore
	Blocked  BlockedDayStore
	Orders   OrderStore
}
