package formatter

import (
	"bytes"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/tripplanner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "Jun 1, 2024", HumanDate("2024-06-01"))
	assert.Equal(t, "next spring", HumanDate("next spring"))
	assert.Equal(t, "", HumanDate(""))
}

func TestDateRange(t *testing.T) {
	assert.Equal(t, "Jun 1, 2024 → Jun 5, 2024", DateRange("2024-06-01", "2024-06-05"))
	assert.Equal(t, "--", DateRange("", ""))
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2500", "$2500"},
		{"1200.50", "$1200.50"},
		{"€900", "€900"},
		{"about 3k", "about 3k"},
		{"  ", "--"},
		{"", "--"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney(tt.in), "input=%q", tt.in)
	}
}

func TestFormatNightly(t *testing.T) {
	assert.Equal(t, "$189/night", FormatNightly("189"))
	assert.Equal(t, "$99.5/night", FormatNightly("99.5"))
	assert.Equal(t, "$150/night", FormatNightly("$150"))
	assert.Equal(t, "€90 per night", FormatNightly("€90 per night"))
	assert.Equal(t, "--", FormatNightly(""))
}

func TestFormatDays(t *testing.T) {
	assert.Equal(t, "1 day", FormatDays(1))
	assert.Equal(t, "4 days", FormatDays(4))
	assert.Equal(t, "0 days", FormatDays(0))
}

func TestSourceBadge(t *testing.T) {
	assert.Contains(t, stripANSI(SourceBadge(domain.SourceDemo)), "offline demo")
	assert.Contains(t, stripANSI(SourceBadge(domain.SourceRemote)), "LIVE PLAN")
}

func TestRenderBox_Title(t *testing.T) {
	out := stripANSI(RenderBox("plan", "body"))
	assert.Contains(t, out, "PLAN")
	assert.Contains(t, out, "body")
	assert.True(t, strings.HasPrefix(out, "╭"))
}

func TestRenderTree_Connectors(t *testing.T) {
	out := stripANSI(RenderTree([]TreeItem{
		{Title: "Day 1"},
		{Title: "Museum", Level: 1, Detail: "morning"},
		{Title: "Dinner", Level: 1, Detail: "evening", IsLast: true},
	}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "Day 1", lines[0])
	assert.Contains(t, lines[1], "├─ Museum")
	assert.Contains(t, lines[1], "morning")
	assert.Contains(t, lines[2], "└─ Dinner")
	assert.Empty(t, RenderTree(nil))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	cols := []Column{{Title: "A"}, {Title: "B"}}
	out := stripANSI(RenderTable(cols, [][]string{{Bold("long cell"), "x"}, {"s", "y"}}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[2], "x"), strings.Index(lines[3], "y"))
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderTable_TruncatesToMax(t *testing.T) {
	cols := []Column{{Title: "NAME", Max: 8}, {Title: "PRICE"}}
	out := stripANSI(RenderTable(cols, [][]string{{"The Very Long Bistro", "$$"}, {"Zuni"}}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[2], "The Ver…")
	assert.NotContains(t, lines[2], "Bistro")
	assert.Equal(t, "Zuni", strings.TrimSpace(lines[3]))
}

func TestSpinner_StopClearsLine(t *testing.T) {
	var buf syncBuffer
	stop := StartSpinner(&buf, "Planning")
	time.Sleep(250 * time.Millisecond)
	stop()
	stop()

	out := buf.String()
	assert.Contains(t, stripANSI(out), "Planning")
	assert.True(t, strings.HasSuffix(out, "\r\033[K"))
}

func TestSpinner_StopWithoutStart(t *testing.T) {
	s := NewSpinner(&bytes.Buffer{}, "idle")
	s.Stop()
}

// syncBuffer is a bytes.Buffer safe for the spinner goroutine and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
