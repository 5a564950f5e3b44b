package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aThornes/instagram-stats/internal/tui/theme"
)

var eighths = []rune(" ▁▂▃▄▅▆▇█")

// Sparkline renders values as a single row of block characters.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := 1 + int(v/peak*7)
		b.WriteRune(eighths[min(max(idx, 1), 8)])
	}
	return lipgloss.NewStyle().Foreground(color).Render(b.String())
}

// BarChart renders values as vertical bars height rows tall with a y-axis on the left
// and labels underneath. A series too long for the width is resampled.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}
	if len(labels) != len(values) {
		labels = nil
	}

	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	ceiling := niceCeiling(peak)

	axisW := max(len(formatChartLabel(ceiling)), 3) + 1
	plotW := max(width-axisW-1, 5)

	// One column of gap between bars.
	barW := (plotW+1)/len(values) - 1
	if barW < 1 {
		values, labels = resample(values, labels, (plotW+1)/2)
		barW = 1
	}
	barW = min(barW, 6)
	n := len(values)
	axisLen := n*(barW+1) - 1

	t := theme.Active
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	barStyle := lipgloss.NewStyle().Foreground(color)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		top := ceiling * float64(row) / float64(height)
		bottom := ceiling * float64(row-1) / float64(height)

		label := ""
		if row == height || row == (height+1)/2 {
			label = formatChartLabel(top)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s│", axisW, label)))

		var line strings.Builder
		for i, v := range values {
			if i > 0 {
				line.WriteByte(' ')
			}
			cell := ' '
			switch {
			case v >= top && v > 0:
				cell = '█'
			case v > bottom:
				cell = eighths[min(max(int((v-bottom)/(top-bottom)*8), 1), 8)]
			}
			line.WriteString(strings.Repeat(string(cell), barW))
		}
		b.WriteString(barStyle.Render(line.String()))
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s└%s", axisW, "0", strings.Repeat("─", axisLen))))

	if labels != nil {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", axisW+1))
		b.WriteString(axisStyle.Render(xLabels(labels, barW, axisLen)))
	}
	return b.String()
}

// xLabels lays labels out under their bars, dropping any that would collide with the
// previous one.
func xLabels(labels []string, barW, axisLen int) string {
	buf := []byte(strings.Repeat(" ", axisLen))
	next := 0
	for i, lbl := range labels {
		pos := i * (barW + 1)
		if pos < next || pos+len(lbl) > axisLen {
			continue
		}
		copy(buf[pos:], lbl)
		next = pos + len(lbl) + 1
	}
	return strings.TrimRight(string(buf), " ")
}

func resample(values []float64, labels []string, n int) ([]float64, []string) {
	n = max(n, 2)
	if n >= len(values) {
		return values, labels
	}
	out := make([]float64, n)
	var outLabels []string
	if labels != nil {
		outLabels = make([]string, n)
	}
	for i := range out {
		src := i * (len(values) - 1) / (n - 1)
		out[i] = values[src]
		if labels != nil {
			outLabels[i] = labels[src]
		}
	}
	return out, outLabels
}

// niceCeiling rounds peak up to 1, 2 or 5 times a power of ten.
func niceCeiling(peak float64) float64 {
	if peak <= 0 {
		return 1
	}
	base := math.Pow(10, math.Floor(math.Log10(peak)))
	for _, m := range []float64{1, 2, 5, 10} {
		if peak <= m*base {
			return m * base
		}
	}
	return 10 * base
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e6:
		return trimZero(fmt.Sprintf("%.1f", v/1e6)) + "M"
	case v >= 1e3:
		return trimZero(fmt.Sprintf("%.1f", v/1e3)) + "k"
	case v >= 1 || v == 0:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}
