package repository

import (
	"context"
	"encoding/json"
	"path/filepath"

	"github.com/alexanderramin/prodsched/internal/domain"
)

// capacityRecord is the on-disk capacity shape. Fields are pointers because
// an unconfigured shop was historically saved with nulls.
type capacityRecord struct {
	Workers       *int     `json:"workers"`
	MinutesPerDay *float64 `json:"minutes_per_day"`
	Efficiency    *float64 `json:"efficiency"`
	ConfigSaved   bool     `json:"config_saved"`
}

// JSONCapacityStore keeps the capacity configuration in capacity.json.
type JSONCapacityStore struct {
	path string
}

func NewJSONCapacityStore(dir string) *JSONCapacityStore {
	return &JSONCapacityStore{path: filepath.Join(dir, CapacityFile)}
}

func (s *JSONCapacityStore) Load(ctx context.Context) (domain.Capacity, error) {
	data, found, err := readJSONFile(ctx, s.path)
	if err != nil || !found {
		return domain.Capacity{}, err
	}

	// Accept both a bare record and the legacy {"config": {...}} history envelope.
	var envelope struct {
		Config *capacityRecord `json:"config"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return domain.Capacity{}, persistenceErr("decoding "+s.path, err)
	}
	rec := envelope.Config
	if rec == nil {
		rec = &capacityRecord{}
		if err := json.Unmarshal(data, rec); err != nil {
			return domain.Capacity{}, persistenceErr("decoding "+s.path, err)
		}
	}

	c := domain.Capacity{Configured: rec.ConfigSaved}
	if rec.Workers != nil {
		c.Workers = *rec.Workers
	}
	if rec.MinutesPerDay != nil {
		c.MinutesPerDay = *rec.MinutesPerDay
	}
	if rec.Efficiency != nil {
		c.EfficiencyPercent = *rec.Efficiency
	}
	return c, nil
}

func (s *JSONCapacityStore) Save(ctx context.Context, c domain.Capacity) error {
	rec := capacityRecord{
		Workers:       &c.Workers,
		MinutesPerDay: &c.MinutesPerDay,
		Efficiency:    &c.EfficiencyPercent,
		ConfigSaved:   c.Configured,
	}
	return writeJSONFile(ctx, s.path, rec)
}
