package service

import (
	"strconv"
	"time"

	"github.com/alexanderramin/prodsched/internal/domain"
)

// ExportDateLayout is the day/month/year layout used in exported rows.
const ExportDateLayout = "02/01/2006"

const notApplicable = "N/A"

// OrderRow is one exported line: an order item, or the whole order when it
// has no items.
type OrderRow struct {
	Priority        int
	Order           string
	Part            string
	Reference       string
	Quantity        string
	UnitMinutes     string
	TotalMinutes    float64
	ProductionOrder string
	Start           string
	End             string
	DaysNeeded      int
}

// OrderHeader names the OrderRow columns in export order.
var OrderHeader = []string{
	"priority", "order", "part", "reference", "quantity", "unit_minutes",
	"total_minutes", "production_order", "start_date", "end_date", "working_days",
}

func (r OrderRow) Record() []string {
	return []string{
		strconv.Itoa(r.Priority),
		r.Order,
		r.Part,
		r.Reference,
		r.Quantity,
		r.UnitMinutes,
		formatNumber(r.TotalMinutes),
		r.ProductionOrder,
		r.Start,
		r.End,
		strconv.Itoa(r.DaysNeeded),
	}
}

// OrderRows flattens the queue in priority order.
func OrderRows(plan *domain.Plan) []OrderRow {
	var rows []OrderRow
	for i, o := range plan.Orders {
		base := OrderRow{
			Priority:   i + 1,
			Order:      o.Name,
			Start:      exportDate(o.StartDate),
			End:        exportDate(o.EndDate),
			DaysNeeded: o.WorkingDaysNeeded,
		}
		if len(o.Items) == 0 {
			row := base
			row.Part = notApplicable
			row.Reference = notApplicable
			row.Quantity = notApplicable
			row.UnitMinutes = notApplicable
			row.TotalMinutes = o.TotalMinutes
			row.ProductionOrder = notApplicable
			rows = append(rows, row)
			continue
		}
		for _, it := range o.Items {
			row := base
			row.Part = it.PartName
			row.Reference = it.PartReference
			row.Quantity = strconv.Itoa(it.Quantity)
			row.UnitMinutes = formatNumber(it.TimePerUnitMinutes)
			row.TotalMinutes = it.TotalMinutes
			row.ProductionOrder = it.ProductionOrderCode
			rows = append(rows, row)
		}
	}
	return rows
}

// PartRow is one exported catalog entry.
type PartRow struct {
	Name            string
	Reference       string
	TimeMinutes     float64
	ProductionOrder string
}

var PartHeader = []string{"name", "reference", "time_minutes", "production_order"}

func (r PartRow) Record() []string {
	return []string{r.Name, r.Reference, formatNumber(r.TimeMinutes), r.ProductionOrder}
}

func PartRows(plan *domain.Plan) []PartRow {
	rows := make([]PartRow, 0, len(plan.Parts))
	for _, p := range plan.Parts {
		rows = append(rows, PartRow{
			Name:            p.Name,
			Reference:       p.Reference,
			TimeMinutes:     p.TimePerUnitMinutes,
			ProductionOrder: p.ProductionOrderCode,
		})
	}
	return rows
}

func exportDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(ExportDateLayout)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
