package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// DisplayDateLayout is the day/month/year layout shown to users.
const DisplayDateLayout = "02/01/2006"

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// Frame boxes content when boxed is set (stdout is a terminal) and
// otherwise prints it under a plain header.
func Frame(boxed bool, title, content string) string {
	content = strings.TrimRight(content, "\n")
	if boxed {
		return RenderBox(title, content) + "\n"
	}
	if title == "" {
		return content + "\n"
	}
	return Header(title) + "\n" + content + "\n"
}

// FormatDate renders a calendar date as dd/mm/yyyy, or "--" when unset.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return t.Format(DisplayDateLayout)
}

// FormatDateWeekday renders a date followed by its short weekday name.
func FormatDateWeekday(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return t.Format(DisplayDateLayout + " Mon")
}

// RelativeDateFrom returns a human-friendly distance between two dates.
func RelativeDateFrom(t time.Time, now time.Time) string {
	days := int(math.Round(t.Sub(now).Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// FormatMinutes renders a minute count as hours and minutes, rounded to the
// nearest minute.
func FormatMinutes(minutes float64) string {
	total := int(math.Round(minutes))
	if total <= 0 {
		return "0m"
	}
	h := total / 60
	m := total % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// Number renders a float without trailing zeros.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Plural returns "1 order" or "3 orders".
func Plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
