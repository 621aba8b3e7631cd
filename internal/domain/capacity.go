package domain

import (
	"fmt"
	"math"
)

// Capacity is the shop's production capacity configuration.
type Capacity struct {
	Workers           int
	MinutesPerDay     float64
	EfficiencyPercent float64
	Configured        bool
}

// EffectiveMinutesPerDay is the derated working time of a single worker.
func (c Capacity) EffectiveMinutesPerDay() float64 {
	return c.MinutesPerDay * c.EfficiencyPercent / 100
}

// NominalMinutesPerDay is the capacity before the efficiency derating.
func (c Capacity) NominalMinutesPerDay() float64 {
	return float64(c.Workers) * c.MinutesPerDay
}

// DailyCapacityMinutes is the total effective minutes the shop produces per working day.
func (c Capacity) DailyCapacityMinutes() float64 {
	return float64(c.Workers) * c.EffectiveMinutesPerDay()
}

// Validate checks the inputs that guarantee DailyCapacityMinutes > 0.
// It does not look at Configured; use Ready for that.
func (c Capacity) Validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d: %w", c.Workers, ErrConfiguration)
	}
	if !finite(c.MinutesPerDay) || c.MinutesPerDay <= 0 {
		return fmt.Errorf("minutes per day must be a positive number, got %g: %w", c.MinutesPerDay, ErrConfiguration)
	}
	if !finite(c.EfficiencyPercent) || c.EfficiencyPercent <= 0 || c.EfficiencyPercent > 100 {
		return fmt.Errorf("efficiency must be in (0, 100], got %g: %w", c.EfficiencyPercent, ErrConfiguration)
	}
	return nil
}

// finite rejects NaN, which fails every ordered comparison, and ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Ready reports whether the capacity has been configured with valid values.
// The returned error wraps ErrConfiguration.
func (c Capacity) Ready() error {
	if !c.Configured {
		return fmt.Errorf("configure capacity first: %w", ErrConfiguration)
	}
	return c.Validate()
}
