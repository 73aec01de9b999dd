package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	goodStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	badStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// Good and Bad colorize a value by its financial health.
func Good(s string) string { return goodStyle.Render(s) }
func Bad(s string) string  { return badStyle.Render(s) }

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(48).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// Table is a simple bordered table for CLI output. The first column is
// left-aligned, all others right-aligned.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Separator marks a horizontal rule row inside a table.
var Separator = []string{"---"}

// RenderTable renders the table with unicode borders.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		if lipgloss.Width(h) > widths[i] {
			widths[i] = lipgloss.Width(h)
		}
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			continue
		}
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	writeRow := func(cells []string, style lipgloss.Style) {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			if i == 0 {
				b.WriteString(style.Render(" " + cell + strings.Repeat(" ", pad) + " "))
			} else {
				b.WriteString(style.Render(" " + strings.Repeat(" ", pad) + cell + " "))
			}
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")
	if len(t.Headers) > 0 {
		writeRow(t.Headers, headerStyle)
		rule("├", "┼", "┤")
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			rule("├", "┼", "┤")
			continue
		}
		writeRow(row, lipgloss.NewStyle())
	}
	rule("╰", "┴", "╯")

	return b.String()
}

func isSeparator(row []string) bool {
	return len(row) == 1 && row[0] == "---"
}

// BreakdownChart renders per-category expense shares as proportional
// horizontal bars with amounts and percentages — the terminal stand-in
// for the pie chart. Returns "" when there is nothing to render.
func BreakdownChart(byCategory map[string]decimal.Decimal, width int) string {
	if len(byCategory) == 0 {
		return ""
	}
	if width < 20 {
		width = 20
	}

	type slice struct {
		category string
		amount   decimal.Decimal
	}
	slices := make([]slice, 0, len(byCategory))
	total := decimal.Zero
	labelW := 0
	for cat, amt := range byCategory {
		slices = append(slices, slice{cat, amt})
		total = total.Add(amt)
		if w := lipgloss.Width(cat); w > labelW {
			labelW = w
		}
	}
	sort.Slice(slices, func(i, j int) bool {
		if !slices[i].amount.Equal(slices[j].amount) {
			return slices[i].amount.GreaterThan(slices[j].amount)
		}
		return slices[i].category < slices[j].category
	})

	if total.IsZero() {
		return ""
	}

	colors := []lipgloss.Color{ColorAccent, ColorBlue, ColorGreen, ColorOrange, ColorRed}

	var b strings.Builder
	for i, s := range slices {
		share, _ := s.amount.Div(total).Float64()
		barLen := int(share * float64(width))
		if barLen < 1 {
			barLen = 1
		}

		// Pad by display width, not bytes, so multibyte labels align.
		label := s.category + strings.Repeat(" ", labelW-lipgloss.Width(s.category))

		barStyle := lipgloss.NewStyle().Foreground(colors[i%len(colors)])
		b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
			label,
			barStyle.Render(strings.Repeat("█", barLen)),
			Money(s.amount),
			mutedStyle.Render(Percent(share)),
		))
	}
	return b.String()
}

// ProgressBar renders cycle progress as a filled bar.
func ProgressBar(elapsed, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	pct := float64(elapsed) / float64(total)
	if pct > 1 {
		pct = 1
	}
	if pct < 0 {
		pct = 0
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] day %d of %d", mutedStyle.Render(bar), elapsed, total)
}

// Sparkline renders a unicode block sparkline from daily amounts.
func Sparkline(values []decimal.Decimal) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := decimal.Zero
	for _, v := range values {
		if v.GreaterThan(peak) {
			peak = v
		}
	}
	if peak.IsZero() {
		return strings.Repeat(string(blocks[0]), len(values))
	}

	var b strings.Builder
	for _, v := range values {
		share, _ := v.Div(peak).Float64()
		idx := int(share * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}
	return b.String()
}
