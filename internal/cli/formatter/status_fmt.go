package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/prodsched/internal/service"
)

// FormatStatus renders the plan summary shown by `prodsched status`.
func FormatStatus(st service.Status, now time.Time, boxed bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", ReadyIndicator(st.Ready))
	if st.Ready == nil {
		fmt.Fprintf(&b, "%s\n", Dim(CapacityLine(st.Capacity)))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Orders        %d\n", st.Orders)
	fmt.Fprintf(&b, "Parts         %d\n", st.Parts)
	fmt.Fprintf(&b, "Blocked days  %d\n", st.BlockedDays)
	fmt.Fprintf(&b, "Queued time   %s (%s working days)\n", FormatMinutes(st.TotalMinutes), fmt.Sprint(st.TotalDays))

	if st.Orders > 0 {
		fmt.Fprintf(&b, "Queue start   %s\n", FormatDate(st.FirstStart))
		fmt.Fprintf(&b, "Queue end     %s %s\n", FormatDate(st.LastEnd), Dim(RelativeDateFrom(st.LastEnd, now)))
	}
	fmt.Fprintf(&b, "Next slot     %s\n", FormatDateWeekday(st.NextStart))

	if st.Ready != nil && st.Orders > 0 {
		b.WriteString("\n")
		b.WriteString(Warning("dates are not maintained until capacity is configured") + "\n")
	}
	return Frame(boxed, "Status", b.String())
}
