package repository

import (
	"context"

	"github.com/alexanderramin/prodsched/internal/db"
	"github.com/alexanderramin/prodsched/internal/domain"
)

// SQLitePartStore keeps the parts catalog; seq preserves catalog order.
type SQLitePartStore struct {
	db  db.DBTX
	uow db.UnitOfWork
}

func NewSQLitePartStore(conn db.DBTX, uow db.UnitOfWork) *SQLitePartStore {
	return &SQLitePartStore{db: conn, uow: uow}
}

func (r *SQLitePartStore) Load(ctx context.Context) ([]domain.Part, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, reference, time_minutes, production_order FROM parts ORDER BY seq`)
	if err != nil {
		return nil, persistenceErr("listing parts", err)
	}
	defer rows.Close()

	var parts []domain.Part
	for rows.Next() {
		var p domain.Part
		if err := rows.Scan(&p.Name, &p.Reference, &p.TimePerUnitMinutes, &p.ProductionOrderCode); err != nil {
			return nil, persistenceErr("scanning part row", err)
		}
		parts = append(parts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, persistenceErr("iterating parts", err)
	}
	return parts, nil
}

// Save replaces the whole catalog in one transaction.
func (r *SQLitePartStore) Save(ctx context.Context, parts []domain.Part) error {
	err := r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM parts`); err != nil {
			return err
		}
		for i, p := range parts {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO parts (seq, name, reference, time_minutes, production_order) VALUES (?, ?, ?, ?, ?)`,
				i, p.Name, p.Reference, p.TimePerUnitMinutes, p.ProductionOrderCode)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return persistenceErr("saving parts", err)
	}
	return nil
}
