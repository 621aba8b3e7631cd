package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/prodsched/internal/db"
	"github.com/alexanderramin/prodsched/internal/domain"
)

// SQLiteOrderStore keeps the priority queue in orders/order_items. The
// priority column is the zero-based rank.
type SQLiteOrderStore struct {
	db  db.DBTX
	uow db.UnitOfWork
}

func NewSQLiteOrderStore(conn db.DBTX, uow db.UnitOfWork) *SQLiteOrderStore {
	return &SQLiteOrderStore{db: conn, uow: uow}
}

func (r *SQLiteOrderStore) Load(ctx context.Context) ([]domain.Order, error) {
	orders, err := r.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, nil
	}

	// Items are read after the orders cursor is closed; an in-memory
	// database runs on a single connection.
	items, err := r.loadItems(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].UID]
	}
	return orders, nil
}

func (r *SQLiteOrderStore) loadOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT uid, display_id, name, total_minutes, start_date, end_date, days_needed
		FROM orders ORDER BY priority`)
	if err != nil {
		return nil, persistenceErr("listing orders", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		var start, end sql.NullString
		if err := rows.Scan(&o.UID, &o.ID, &o.Name, &o.TotalMinutes, &start, &end, &o.WorkingDaysNeeded); err != nil {
			return nil, persistenceErr("scanning order row", err)
		}
		if o.StartDate, err = parseNullableDate(start); err != nil {
			return nil, persistenceErr("parsing start_date", err)
		}
		if o.EndDate, err = parseNullableDate(end); err != nil {
			return nil, persistenceErr("parsing end_date", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, persistenceErr("iterating orders", err)
	}
	return orders, nil
}

func (r *SQLiteOrderStore) loadItems(ctx context.Context) (map[string][]domain.OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT order_uid, part_name, part_ref, quantity, time_per_unit, total_time, production_order
		FROM order_items ORDER BY order_uid, seq`)
	if err != nil {
		return nil, persistenceErr("listing order items", err)
	}
	defer rows.Close()

	items := make(map[string][]domain.OrderItem)
	for rows.Next() {
		var uid string
		var it domain.OrderItem
		if err := rows.Scan(&uid, &it.PartName, &it.PartReference, &it.Quantity,
			&it.TimePerUnitMinutes, &it.TotalMinutes, &it.ProductionOrderCode); err != nil {
			return nil, persistenceErr("scanning order item row", err)
		}
		items[uid] = append(items[uid], it)
	}
	if err := rows.Err(); err != nil {
		return nil, persistenceErr("iterating order items", err)
	}
	return items, nil
}

// Save replaces the whole queue in one transaction.
func (r *SQLiteOrderStore) Save(ctx context.Context, orders []domain.Order) error {
	err := r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM order_items`); err != nil {
			return fmt.Errorf("clearing order items: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM orders`); err != nil {
			return fmt.Errorf("clearing orders: %w", err)
		}
		for rank, o := range orders {
			if err := insertOrder(ctx, tx, rank, o); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return persistenceErr("saving orders", err)
	}
	return nil
}

func insertOrder(ctx context.Context, tx db.DBTX, rank int, o domain.Order) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO orders (uid, priority, display_id, name, total_minutes, start_date, end_date, days_needed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		o.UID, rank, o.ID, o.Name, o.TotalMinutes,
		nullableDate(o.StartDate), nullableDate(o.EndDate), o.WorkingDaysNeeded)
	if err != nil {
		return fmt.Errorf("inserting order %q: %w", o.Name, err)
	}
	for seq, it := range o.Items {
		_, err := tx.ExecContext(ctx, `INSERT INTO order_items (order_uid, seq, part_name, part_ref, quantity, time_per_unit, total_time, production_order)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			o.UID, seq, it.PartName, it.PartReference, it.Quantity, it.TimePerUnitMinutes, it.TotalMinutes, it.ProductionOrderCode)
		if err != nil {
			return fmt.Errorf("inserting item %d of order %q: %w", seq+1, o.Name, err)
		}
	}
	return nil
}

// NewSQLiteStores wires the SQLite backend on an open database.
func NewSQLiteStores(database *sql.DB) Stores {
	uow := db.NewSQLiteUnitOfWork(database)
	return Stores{
		Capacity: NewSQLiteCapacityStore(database),
		Parts:    NewSQLitePartStore(database, uow),
		Blocked:  NewSQLiteBlockedDayStore(database, uow),
		Orders:   NewSQLiteOrderStore(database, uow),
	}
}
