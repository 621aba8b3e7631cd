package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/prodsched/internal/domain"
)

var orderHeaders = []string{"#", "ID", "NAME", "ITEMS", "TIME", "START", "END", "DAYS"}

// FormatOrderList renders the priority queue, rank first.
func FormatOrderList(orders []domain.Order, boxed bool) string {
	if len(orders) == 0 {
		return Frame(boxed, "Orders", Dim("No orders queued. Add one with: prodsched order add NAME --item REF:QTY"))
	}

	rows := make([][]string, 0, len(orders))
	for i, o := range orders {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(o.ID),
			Bold(o.Name),
			strconv.Itoa(len(o.Items)),
			FormatMinutes(o.TotalMinutes),
			FormatDate(o.StartDate),
			FormatDate(o.EndDate),
			strconv.Itoa(o.WorkingDaysNeeded),
		})
	}
	return Frame(boxed, "Orders", RenderTable(orderHeaders, rows, 0, 1, 3, 4, 7))
}

func itemTable(items []domain.OrderItem) string {
	headers := []string{"PART", "REF", "QTY", "MIN/UNIT", "TOTAL", "PO"}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		po := it.ProductionOrderCode
		if po == "" {
			po = Dim("--")
		}
		rows = append(rows, []string{
			it.PartName,
			it.PartReference,
			strconv.Itoa(it.Quantity),
			Number(it.TimePerUnitMinutes),
			Number(it.TotalMinutes),
			po,
		})
	}
	return RenderTable(headers, rows, 2, 3, 4)
}

func orderCard(o domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Bold(o.Name), Dim(fmt.Sprintf("id %d  uid %s", o.ID, o.UID)))
	fmt.Fprintf(&b, "Start  %s\n", FormatDateWeekday(o.StartDate))
	fmt.Fprintf(&b, "End    %s\n", FormatDateWeekday(o.EndDate))
	fmt.Fprintf(&b, "Days   %d working\n", o.WorkingDaysNeeded)
	fmt.Fprintf(&b, "Time   %s min (%s)\n\n", Number(o.TotalMinutes), FormatMinutes(o.TotalMinutes))
	b.WriteString(itemTable(o.Items))
	return b.String()
}

// FormatOrderDetail renders one queued order with its items.
func FormatOrderDetail(rank int, o domain.Order, boxed bool) string {
	return Frame(boxed, fmt.Sprintf("Order #%d", rank), orderCard(o))
}

// FormatOrderPreview renders a dry-run order that was not saved.
func FormatOrderPreview(o domain.Order, boxed bool) string {
	return Frame(boxed, "Preview (not saved)", orderCard(o))
}

func FormatPartList(parts []domain.Part, boxed bool) string {
	if len(parts) == 0 {
		return Frame(boxed, "Parts", Dim("No parts in the catalog. Add one with: prodsched part add"))
	}
	headers := []string{"#", "NAME", "REF", "MIN/UNIT", "PO"}
	rows := make([][]string, 0, len(parts))
	for i, p := range parts {
		po := p.ProductionOrderCode
		if po == "" {
			po = Dim("--")
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), Bold(p.Name), p.Reference, Number(p.TimePerUnitMinutes), po})
	}
	return Frame(boxed, "Parts", RenderTable(headers, rows, 0, 3))
}

func FormatBlockedList(blocked domain.BlockedDays, boxed bool) string {
	days := blocked.Sorted()
	if len(days) == 0 {
		return Frame(boxed, "Blocked days", Dim("No blocked days."))
	}
	headers := []string{"DATE", "WEEKDAY"}
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		wd := d.Weekday().String()
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			wd = Dim(wd + " (weekend)")
		}
		rows = append(rows, []string{FormatDate(d), wd})
	}
	return Frame(boxed, "Blocked days", RenderTable(headers, rows))
}

// FormatCapacity renders the capacity settings and the derived daily minutes.
func FormatCapacity(c domain.Capacity, boxed bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", ReadyIndicator(c.Ready()))
	if !c.Configured {
		b.WriteString(Dim("Set it with: prodsched capacity set --workers N --minutes M --efficiency E"))
		return Frame(boxed, "Capacity", b.String())
	}
	fmt.Fprintf(&b, "Workers          %d\n", c.Workers)
	fmt.Fprintf(&b, "Minutes per day  %s\n", Number(c.MinutesPerDay))
	fmt.Fprintf(&b, "Efficiency       %s%%\n", Number(c.EfficiencyPercent))
	fmt.Fprintf(&b, "Nominal          %s min/day\n", Number(c.NominalMinutesPerDay()))
	fmt.Fprintf(&b, "Effective        %s min/day (%s)\n", Number(c.DailyCapacityMinutes()), FormatMinutes(c.DailyCapacityMinutes()))
	return Frame(boxed, "Capacity", b.String())
}

// CapacityLine is the one-line summary printed after capacity changes.
func CapacityLine(c domain.Capacity) string {
	return fmt.Sprintf("%d workers × %s min × %s%% = %s min/day",
		c.Workers, Number(c.MinutesPerDay), Number(c.EfficiencyPercent), Number(c.DailyCapacityMinutes()))
}
