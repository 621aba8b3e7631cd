package domain

import (
	"fmt"
	"strings"
)

// Part is a catalog entry. Order items copy its fields at creation time, so
// later catalog edits never reach existing orders.
type Part struct {
	Name                string
	Reference           string
	TimePerUnitMinutes  float64
	ProductionOrderCode string
}

func (p Part) Validate() error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Reference) == "" {
		return fmt.Errorf("part name and reference are required: %w", ErrValidation)
	}
	if !finite(p.TimePerUnitMinutes) || p.TimePerUnitMinutes <= 0 {
		return fmt.Errorf("part %q: time per unit must be a positive number, got %g: %w", p.Reference, p.TimePerUnitMinutes, ErrValidation)
	}
	return nil
}

// FindPart returns the index of the first part with the given reference, or -1.
func FindPart(parts []Part, reference string) int {
	for i, p := range parts {
		if strings.EqualFold(p.Reference, reference) {
			return i
		}
	}
	return -1
}
