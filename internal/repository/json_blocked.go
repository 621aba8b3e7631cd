package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/alexanderramin/prodsched/internal/domain"
)

// JSONBlockedDayStore keeps blocked dates in blocked_days.json as a sorted
// array of ISO date strings.
type JSONBlockedDayStore struct {
	path string
}

func NewJSONBlockedDayStore(dir string) *JSONBlockedDayStore {
	return &JSONBlockedDayStore{path: filepath.Join(dir, BlockedFile)}
}

func (s *JSONBlockedDayStore) Load(ctx context.Context) (domain.BlockedDays, error) {
	data, found, err := readJSONFile(ctx, s.path)
	if err != nil || !found {
		return domain.NewBlockedDays(), err
	}
	var days []string
	if err := json.Unmarshal(data, &days); err != nil {
		return domain.NewBlockedDays(), persistenceErr("decoding "+s.path, err)
	}
	blocked := domain.NewBlockedDays()
	for _, d := range days {
		t, err := parseDate(d)
		if err != nil || t.IsZero() {
			return domain.NewBlockedDays(), persistenceErr("decoding "+s.path, fmt.Errorf("bad date %q", d))
		}
		blocked.Add(t)
	}
	return blocked, nil
}

func (s *JSONBlockedDayStore) Save(ctx context.Context, days domain.BlockedDays) error {
	return writeJSONFile(ctx, s.path, days.Strings())
}
