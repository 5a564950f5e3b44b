package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aThornes/instagram-stats/internal/tui/theme"
)

// ProgressBar renders a block progress bar of the given width followed by a percentage.
func ProgressBar(pct float64, width int) string {
	t := theme.Active
	pct = min(max(pct, 0), 1)
	filled := int(pct * float64(width))

	return lipgloss.NewStyle().Foreground(t.Accent).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(t.TextDim).Render(strings.Repeat("░", width-filled)) +
		" " + lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).Render(fmt.Sprintf("%.0f%%", pct*100))
}
