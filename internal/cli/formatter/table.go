package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Column is one table column. Cells wider than Max are cut with an
// ellipsis; zero means no limit.
type Column struct {
	Title string
	Max   int
}

const tableGap = "  "

// RenderTable lays rows out under a header and a dim rule. Widths are
// measured on visible text, so styled cells still line up.
func RenderTable(cols []Column, rows [][]string) string {
	if len(cols) == 0 {
		return ""
	}

	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = lipgloss.Width(c.Title)
	}

	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, len(cols))
		for i, c := range cols {
			if i >= len(row) {
				continue
			}
			cell := row[i]
			if c.Max > 0 && lipgloss.Width(cell) > c.Max {
				cell = ansi.Truncate(cell, c.Max, "…")
			}
			cells[r][i] = cell
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	writeRow := func(parts []string) {
		for i, p := range parts {
			b.WriteString(p)
			if i < len(parts)-1 {
				b.WriteString(strings.Repeat(" ", max(widths[i]-lipgloss.Width(p), 0)) + tableGap)
			}
		}
		b.WriteString("\n")
	}

	titles := make([]string, len(cols))
	rules := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = StyleHeader.Render(c.Title)
		rules[i] = StyleDim.Render(strings.Repeat("─", widths[i]))
	}
	writeRow(titles)
	writeRow(rules)
	for _, row := range cells {
		writeRow(row)
	}
	return b.String()
}
