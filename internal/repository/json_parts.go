package repository

import (
	"context"
	"encoding/json"
	"path/filepath"

	"github.com/alexanderramin/prodsched/internal/domain"
)

type partRecord struct {
	Name            string  `json:"name"`
	Reference       string  `json:"reference"`
	TimeMinutes     float64 `json:"time_minutes"`
	ProductionOrder string  `json:"production_order"`
}

// JSONPartStore keeps the parts catalog in parts.json, in catalog order.
type JSONPartStore struct {
	path string
}

func NewJSONPartStore(dir string) *JSONPartStore {
	return &JSONPartStore{path: filepath.Join(dir, PartsFile)}
}

func (s *JSONPartStore) Load(ctx context.Context) ([]domain.Part, error) {
	data, found, err := readJSONFile(ctx, s.path)
	if err != nil || !found {
		return nil, err
	}
	var recs []partRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, persistenceErr("decoding "+s.path, err)
	}
	parts := make([]domain.Part, 0, len(recs))
	for _, r := range recs {
		parts = append(parts, domain.Part{
			Name:                r.Name,
			Reference:           r.Reference,
			TimePerUnitMinutes:  r.TimeMinutes,
			ProductionOrderCode: r.ProductionOrder,
		})
	}
	return parts, nil
}

func (s *JSONPartStore) Save(ctx context.Context, parts []domain.Part) error {
	recs := make([]partRecord, 0, len(parts))
	for _, p := range parts {
		recs = append(recs, partRecord{
			Name:            p.Name,
			Reference:       p.Reference,
			TimeMinutes:     p.TimePerUnitMinutes,
			ProductionOrder: p.ProductionOrderCode,
		})
	}
	return writeJSONFile(ctx, s.path, recs)
}
