package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aThornes/instagram-stats/internal/tui/theme"
)

// Tab is a dashboard tab and the key that selects it.
type Tab struct {
	Name string
	Key  string
}

// Tabs lists the dashboard tabs in display order.
var Tabs = []Tab{
	{Name: "Overview", Key: "o"},
	{Name: "Yearly", Key: "y"},
	{Name: "Months", Key: "t"},
}

// TabIndex returns the tab selected by key, or -1.
func TabIndex(key string) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}

func tabLabel(tab Tab, active bool) string {
	t := theme.Active
	if active {
		return lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Padding(0, 1).Render(tab.Name)
	}
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	key := lipgloss.NewStyle().Foreground(t.Accent).Render(tab.Key)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)
	return " " + muted.Render(tab.Name) + dim.Render("[") + key + dim.Render("]") + " "
}

// RenderTabBar renders the tab row with activeIdx highlighted.
func RenderTabBar(activeIdx int) string {
	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		parts[i] = tabLabel(tab, i == activeIdx)
	}
	return strings.Join(parts, lipgloss.NewStyle().Foreground(theme.Active.TextDim).Render("│"))
}
