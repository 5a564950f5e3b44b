package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/aThornes/instagram-stats/internal/model"
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
	ColorYellow    = lipgloss.Color("#D0A215")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	valueStyle  = lipgloss.NewStyle().Foreground(ColorText)
	statStyle   = lipgloss.NewStyle().Foreground(ColorGreen)
	figureStyle = lipgloss.NewStyle().Foreground(ColorYellow)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorTextMuted)
	dimStyle    = lipgloss.NewStyle().Foreground(ColorTextDim)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorRed)
	okStyle     = lipgloss.NewStyle().Foreground(ColorGreen)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Separator is a row value that renders as a horizontal rule.
const Separator = "---"

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(titleStyle.Render(title))
}

func columnWidths(t Table) []int {
	n := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > n {
			n = len(row)
		}
	}
	widths := make([]int, n)
	measure := func(cells []string) {
		for i, c := range cells {
			if w := lipgloss.Width(c); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.Headers)
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == Separator {
			continue
		}
		measure(row)
	}
	return widths
}

func rule(widths []int, left, mid, right string) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w+2)
	}
	return dimStyle.Render(left+strings.Join(parts, mid)+right) + "\n"
}

// RenderTable renders a bordered table. The first column is left-aligned and the rest,
// which hold figures, are right-aligned.
func RenderTable(t Table) string {
	widths := columnWidths(t)
	if len(widths) == 0 {
		return ""
	}

	bar := dimStyle.Render("│")
	line := func(cells []string, style lipgloss.Style) string {
		var b strings.Builder
		b.WriteString(bar)
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			format := " %*s "
			if i == 0 {
				format = " %-*s "
			}
			b.WriteString(style.Render(fmt.Sprintf(format, w, cell)))
			b.WriteString(bar)
		}
		b.WriteString("\n")
		return b.String()
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}
	b.WriteString(rule(widths, "╭", "┬", "╮"))
	if len(t.Headers) > 0 {
		b.WriteString(line(t.Headers, headerStyle))
		b.WriteString(rule(widths, "├", "┼", "┤"))
	}
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == Separator {
			b.WriteString(rule(widths, "├", "┼", "┤"))
			continue
		}
		b.WriteString(line(row, valueStyle))
	}
	b.WriteString(rule(widths, "╰", "┴", "╯"))
	return b.String()
}

// RenderSparkline draws values as a row of unicode blocks scaled to the largest value.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	blocks := []rune("▁▂▃▄▅▆▇█")

	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		b.WriteRune(blocks[min(max(idx, 0), len(blocks)-1)])
	}
	return b.String()
}

// LoadInfo writes the one-line load summary: record count and date bounds.
func LoadInfo(w io.Writer, count int, start, end time.Time) {
	_, _ = fmt.Fprintf(w, "Found a total of %s message records between the dates %s and %s.\n",
		figureStyle.Render(FormatNumber(int64(count))),
		figureStyle.Render(FormatShortDate(start)),
		figureStyle.Render(FormatShortDate(end)),
	)
}

// TopLevel writes the headline figures summed over every month.
func TopLevel(w io.Writer, top model.TopLevelStats) {
	lines := []struct {
		label string
		value string
	}{
		{"Total text:", FormatNumber(int64(top.MessageCount))},
		{"Total call time:", FormatTimeSeconds(top.TotalDurationSecs)},
		{"Number of calls:", FormatNumber(int64(top.CallCount))},
		{"Number of reels:", FormatNumber(int64(top.ReelCount))},
		{"Number of reactions:", FormatNumber(int64(top.ReactionCount))},
	}
	for _, l := range lines {
		_, _ = fmt.Fprintf(w, " %s %s\n", statStyle.Render(fmt.Sprintf("%-21s", l.label)), figureStyle.Render(l.value))
	}
}

// TopLevelTable renders the headline figures as a two-column table.
func TopLevelTable(top model.TopLevelStats) string {
	return RenderTable(Table{
		Title:   "Summary",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Messages", FormatNumber(int64(top.MessageCount))},
			{"Call time", FormatTimeSeconds(top.TotalDurationSecs)},
			{"Calls", FormatNumber(int64(top.CallCount))},
			{"Reels", FormatNumber(int64(top.ReelCount))},
			{"Reactions", FormatNumber(int64(top.ReactionCount))},
		},
	})
}

// MonthlyTable renders one row per month with a totals row underneath.
func MonthlyTable(title string, months []model.MonthlyStat) string {
	var (
		rows  [][]string
		total model.MonthlyStat
	)
	for _, st := range months {
		total = total.Add(st)
		rows = append(rows, monthRow(st.Key().Label(), st))
	}
	rows = append(rows, []string{Separator}, monthRow("Total", total))

	return RenderTable(Table{
		Title:   title,
		Headers: []string{"Month", "Messages", "Reels", "Reactions", "Calls", "Call min", "Avg len"},
		Rows:    rows,
	})
}

func monthRow(label string, st model.MonthlyStat) []string {
	return []string{
		label,
		FormatNumber(int64(st.Messages)),
		FormatNumber(int64(st.Reels)),
		FormatNumber(int64(st.Reactions)),
		FormatNumber(int64(st.CallCount)),
		FormatMinutes(st.CallMinutes),
		strconv.FormatFloat(st.AvgContentLength(), 'f', 1, 64),
	}
}

// YearTable renders per-year record counts.
func YearTable(totals []model.YearTotal) string {
	rows := make([][]string, 0, len(totals))
	for _, yt := range totals {
		rows = append(rows, []string{strconv.Itoa(yt.Year), FormatNumber(int64(yt.Messages))})
	}
	return RenderTable(Table{
		Title:   "Messages by year",
		Headers: []string{"Year", "Records"},
		Rows:    rows,
	})
}

// Error renders a highlighted error line.
func Error(msg string) string {
	return errorStyle.Render("Error: ") + msg
}

// Done renders a check-marked progress line.
func Done(msg string) string {
	return okStyle.Render("✓") + " " + msg
}

// Muted renders secondary text.
func Muted(msg string) string {
	return mutedStyle.Render(msg)
}
