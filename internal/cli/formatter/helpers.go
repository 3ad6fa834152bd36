package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/tripplanner/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

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

// HumanDate renders a YYYY-MM-DD date as "Jun 1, 2024". Text that is not a
// date is returned unchanged.
func HumanDate(s string) string {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2, 2006")
}

// DateRange renders "start → end" with human dates.
func DateRange(start, end string) string {
	if start == "" && end == "" {
		return "--"
	}
	return fmt.Sprintf("%s → %s", HumanDate(start), HumanDate(end))
}

// FormatDays renders a trip length such as "4 days".
func FormatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// FormatMoney prefixes a plain amount with "$". Amounts that already carry a
// currency marker or words are returned as-is.
func FormatMoney(amount string) string {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return "--"
	}
	if _, err := strconv.ParseFloat(amount, 64); err == nil {
		return "$" + amount
	}
	return amount
}

// FormatNightly renders a per-night price. Prices that already mention the
// night are left alone.
func FormatNightly(price string) string {
	money := FormatMoney(price)
	if money == "--" || strings.Contains(strings.ToLower(money), "night") {
		return money
	}
	return money + "/night"
}
