package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/alexanderramin/prodsched/internal/repository"
)

type partService struct {
	parts    repository.PartStore
	observer UseCaseObserver
}

func NewPartService(parts repository.PartStore, observers ...UseCaseObserver) PartService {
	return &partService{parts: parts, observer: useCaseObserverOrNoop(observers)}
}

func (s *partService) Add(ctx context.Context, plan *domain.Plan, p domain.Part) (err error) {
	tr := newTracker(s.observer, "add-part")
	tr.set("reference", p.Reference)
	defer func() { tr.done(ctx, err) }()

	if err = p.Validate(); err != nil {
		return err
	}
	if domain.FindPart(plan.Parts, p.Reference) >= 0 {
		return fmt.Errorf("part reference %q already in the catalog: %w", p.Reference, domain.ErrValidation)
	}

	plan.Parts = append(plan.Parts, p)
	return s.parts.Save(ctx, plan.Parts)
}

// Remove drops a catalog entry. Orders keep their own copy of the part.
func (s *partService) Remove(ctx context.Context, plan *domain.Plan, rank int) (removed domain.Part, err error) {
	tr := newTracker(s.observer, "remove-part")
	tr.set("rank", rank)
	defer func() { tr.done(ctx, err) }()

	idx, err := rankIndex(rank, len(plan.Parts), "part")
	if err != nil {
		return domain.Part{}, err
	}
	removed = plan.Parts[idx]
	plan.Parts = append(plan.Parts[:idx:idx], plan.Parts[idx+1:]...)
	return removed, s.parts.Save(ctx, plan.Parts)
}
