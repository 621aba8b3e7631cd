package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/google/uuid"
)

// OrdersSchemaVersion is the schema written by JSONOrderStore.Save.
//
//	v0: legacy history envelope {"config": {...}, "orders": [...]}
//	v1: bare array of order records
//	v2: {"version": 2, "orders": [...]} with items and uid on every record
const OrdersSchemaVersion = 2

type itemRecord struct {
	PartName        string  `json:"part_name"`
	PartRef         string  `json:"part_ref"`
	Quantity        int     `json:"quantity"`
	TimePerUnit     float64 `json:"time_per_unit"`
	TotalTime       float64 `json:"total_time"`
	ProductionOrder string  `json:"production_order"`
}

// orderRecord is one order on disk. Items is a pointer so a record written
// before orders had items (field absent) is told apart from an empty list.
type orderRecord struct {
	ID           int           `json:"id"`
	UID          string        `json:"uid,omitempty"`
	Name         string        `json:"name"`
	Items        *[]itemRecord `json:"items,omitempty"`
	TotalMinutes float64       `json:"total_minutes"`
	StartDate    string        `json:"start_date"`
	EndDate      string        `json:"end_date"`
	DaysNeeded   int           `json:"days_needed"`
}

type ordersFile struct {
	Version int           `json:"version"`
	Orders  []orderRecord `json:"orders"`
}

// JSONOrderStore keeps the priority queue in orders.json. Older layouts are
// upgraded record by record on load; Save always writes the current schema.
type JSONOrderStore struct {
	path  string
	newID func() string
}

func NewJSONOrderStore(dir string) *JSONOrderStore {
	return &JSONOrderStore{
		path:  filepath.Join(dir, OrdersFile),
		newID: func() string { return uuid.New().String() },
	}
}

func (s *JSONOrderStore) Load(ctx context.Context) ([]domain.Order, error) {
	data, found, err := readJSONFile(ctx, s.path)
	if err != nil || !found {
		return nil, err
	}

	recs, err := decodeOrders(data)
	if err != nil {
		return nil, persistenceErr("decoding "+s.path, err)
	}

	orders := make([]domain.Order, 0, len(recs))
	for i, r := range recs {
		o, err := s.upgrade(r)
		if err != nil {
			return nil, persistenceErr("decoding "+s.path, fmt.Errorf("order %d: %w", i+1, err))
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// decodeOrders accepts every historical layout of the orders file.
func decodeOrders(data []byte) ([]orderRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var recs []orderRecord
		if err := json.Unmarshal(trimmed, &recs); err != nil {
			return nil, err
		}
		return recs, nil
	}

	var f ordersFile
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return nil, err
	}
	if f.Version > OrdersSchemaVersion {
		return nil, fmt.Errorf("orders schema version %d is newer than supported version %d", f.Version, OrdersSchemaVersion)
	}
	return f.Orders, nil
}

// upgrade converts one stored record to a domain order, filling in what
// older schemas lacked.
func (s *JSONOrderStore) upgrade(r orderRecord) (domain.Order, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return domain.Order{}, fmt.Errorf("start_date: %w", err)
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return domain.Order{}, fmt.Errorf("end_date: %w", err)
	}

	o := domain.Order{
		ID:                r.ID,
		UID:               r.UID,
		Name:              r.Name,
		TotalMinutes:      r.TotalMinutes,
		StartDate:         start,
		EndDate:           end,
		WorkingDaysNeeded: r.DaysNeeded,
	}
	if o.UID == "" {
		o.UID = s.newID()
	}

	if r.Items == nil {
		o.Items = []domain.OrderItem{domain.LegacyItem(r.TotalMinutes)}
		return o, nil
	}
	o.Items = make([]domain.OrderItem, 0, len(*r.Items))
	for _, it := range *r.Items {
		o.Items = append(o.Items, domain.OrderItem{
			PartName:            it.PartName,
			PartReference:       it.PartRef,
			Quantity:            it.Quantity,
			TimePerUnitMinutes:  it.TimePerUnit,
			TotalMinutes:        it.TotalTime,
			ProductionOrderCode: it.ProductionOrder,
		})
	}
	return o, nil
}

func (s *JSONOrderStore) Save(ctx context.Context, orders []domain.Order) error {
	f := ordersFile{Version: OrdersSchemaVersion, Orders: make([]orderRecord, 0, len(orders))}
	for _, o := range orders {
		items := make([]itemRecord, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, itemRecord{
				PartName:        it.PartName,
				PartRef:         it.PartReference,
				Quantity:        it.Quantity,
				TimePerUnit:     it.TimePerUnitMinutes,
				TotalTime:       it.TotalMinutes,
				ProductionOrder: it.ProductionOrderCode,
			})
		}
		f.Orders = append(f.Orders, orderRecord{
			ID:           o.ID,
			UID:          o.UID,
			Name:         o.Name,
			Items:        &items,
			TotalMinutes: o.TotalMinutes,
			StartDate:    formatDate(o.StartDate),
			EndDate:      formatDate(o.EndDate),
			DaysNeeded:   o.WorkingDaysNeeded,
		})
	}
	return writeJSONFile(ctx, s.path, f)
}

// NewJSONStores wires the JSON backend rooted at dir.
func NewJSONStores(dir string) Stores {
	return Stores{
		Capacity: NewJSONCapacityStore(dir),
		Parts:    NewJSONPartStore(dir),
		Blocked:  NewJSONBlockedDayStore(dir),
		Orders:   NewJSONOrderStore(dir),
	}
}
