package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/alexanderramin/prodsched/internal/db"
	"github.com/alexanderramin/prodsched/internal/domain"
)

// SQLiteCapacityStore keeps the capacity configuration in a single-row table.
type SQLiteCapacityStore struct {
	db db.DBTX
}

func NewSQLiteCapacityStore(conn db.DBTX) *SQLiteCapacityStore {
	return &SQLiteCapacityStore{db: conn}
}

func (r *SQLiteCapacityStore) Load(ctx context.Context) (domain.Capacity, error) {
	var c domain.Capacity
	var configured int
	err := r.db.QueryRowContext(ctx,
		`SELECT workers, minutes_per_day, efficiency, configured FROM capacity WHERE id = 1`,
	).Scan(&c.Workers, &c.MinutesPerDay, &c.EfficiencyPercent, &configured)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Capacity{}, nil
	}
	if err != nil {
		return domain.Capacity{}, persistenceErr("loading capacity", err)
	}
	c.Configured = intToBool(configured)
	return c, nil
}

func (r *SQLiteCapacityStore) Save(ctx context.Context, c domain.Capacity) error {
	query := `INSERT INTO capacity (id, workers, minutes_per_day, efficiency, configured, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			workers = excluded.workers,
			minutes_per_day = excluded.minutes_per_day,
			efficiency = excluded.efficiency,
			configured = excluded.configured,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		c.Workers, c.MinutesPerDay, c.EfficiencyPercent, boolToInt(c.Configured), nowUTC())
	if err != nil {
		return persistenceErr("saving capacity", err)
	}
	return nil
}
