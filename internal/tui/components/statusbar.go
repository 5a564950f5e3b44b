package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aThornes/instagram-stats/internal/tui/theme"
)

// RenderStatusBar renders the bottom bar: key hints on the left, source info on the right.
func RenderStatusBar(width int, hints, info string) string {
	left := " " + hints
	right := info + " "
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)

	return lipgloss.NewStyle().
		Foreground(theme.Active.TextMuted).
		Width(width).
		Render(left + strings.Repeat(" ", gap) + right)
}
