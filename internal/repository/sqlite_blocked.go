package repository

import (
	"context"

	"github.com/alexanderramin/prodsched/internal/db"
	"github.com/alexanderramin/prodsched/internal/domain"
)

type SQLiteBlockedDayStore struct {
	db  db.DBTX
	uow db.UnitOfWork
}

func NewSQLiteBlockedDayStore(conn db.DBTX, uow db.UnitOfWork) *SQLiteBlockedDayStore {
	return &SQLiteBlockedDayStore{db: conn, uow: uow}
}

func (r *SQLiteBlockedDayStore) Load(ctx context.Context) (domain.BlockedDays, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT day FROM blocked_days ORDER BY day`)
	if err != nil {
		return domain.NewBlockedDays(), persistenceErr("listing blocked days", err)
	}
	defer rows.Close()

	blocked := domain.NewBlockedDays()
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return domain.NewBlockedDays(), persistenceErr("scanning blocked day", err)
		}
		d, err := parseDate(s)
		if err != nil {
			return domain.NewBlockedDays(), persistenceErr("parsing blocked day", err)
		}
		blocked.Add(d)
	}
	if err := rows.Err(); err != nil {
		return domain.NewBlockedDays(), persistenceErr("iterating blocked days", err)
	}
	return blocked, nil
}

func (r *SQLiteBlockedDayStore) Save(ctx context.Context, days domain.BlockedDays) error {
	err := r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM blocked_days`); err != nil {
			return err
		}
		for _, d := range days.Strings() {
			if _, err := tx.ExecContext(ctx, `INSERT INTO blocked_days (day) VALUES (?)`, d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return persistenceErr("saving blocked days", err)
	}
	return nil
}
