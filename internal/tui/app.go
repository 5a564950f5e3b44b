// Package tui provides the interactive Bubble Tea dashboard for igstats.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aThornes/instagram-stats/internal/cli"
	"github.com/aThornes/instagram-stats/internal/model"
	"github.com/aThornes/instagram-stats/internal/pipeline"
	"github.com/aThornes/instagram-stats/internal/tui/components"
	"github.com/aThornes/instagram-stats/internal/tui/theme"
)

// LoadFunc produces the aggregate, reporting progress as archives are parsed.
type LoadFunc func(progress pipeline.ProgressFunc) (*pipeline.CachedLoadResult, error)

// DataLoadedMsg is sent when the data pipeline finishes.
type DataLoadedMsg struct {
	Result   *pipeline.CachedLoadResult
	Err      error
	LoadTime time.Duration
}

// ProgressMsg reports file parsing progress.
type ProgressMsg struct {
	Current int
	Total   int
}

// metric is one monthly counter the charts can plot.
type metric struct {
	name  string
	value func(model.MonthlyStat) float64
	color func(theme.Theme) lipgloss.Color
}

var metrics = []metric{
	{"Messages", func(s model.MonthlyStat) float64 { return float64(s.Messages) }, func(t theme.Theme) lipgloss.Color { return t.Messages }},
	{"Reels", func(s model.MonthlyStat) float64 { return float64(s.Reels) }, func(t theme.Theme) lipgloss.Color { return t.Reels }},
	{"Reactions", func(s model.MonthlyStat) float64 { return float64(s.Reactions) }, func(t theme.Theme) lipgloss.Color { return t.Reactions }},
	{"Calls", func(s model.MonthlyStat) float64 { return float64(s.CallCount) }, func(t theme.Theme) lipgloss.Color { return t.Calls }},
	{"Call minutes", func(s model.MonthlyStat) float64 { return s.CallMinutes }, func(t theme.Theme) lipgloss.Color { return t.Calls }},
}

const (
	tabOverview = iota
	tabYearly
	tabMonths
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 160
	minContentHeight = 5
	chartHeight      = 10
)

// App is the root Bubble Tea model.
type App struct {
	load   LoadFunc
	source string

	// Data
	loaded   bool
	err      error
	result   *pipeline.CachedLoadResult
	months   []model.MonthlyStat
	years    []int
	top      model.TopLevelStats
	loadTime time.Duration

	// UI state
	width     int
	height    int
	activeTab int
	yearIdx   int
	metricIdx int

	// Loading; progress and completion arrive on loadSub.
	spinner     spinner.Model
	progress    int
	progressMax int
	loadSub     chan tea.Msg
}

// NewApp creates the dashboard. source names the messages directory in the status bar.
func NewApp(load LoadFunc, source string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		load:    load,
		source:  source,
		spinner: sp,
		loadSub: make(chan tea.Msg, 1),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(loadDataCmd(a.load, a.loadSub), a.spinner.Tick)
}

func (a *App) setData(msg DataLoadedMsg) {
	a.loaded = true
	a.err = msg.Err
	a.loadTime = msg.LoadTime
	a.result = msg.Result
	if msg.Err != nil || msg.Result == nil {
		return
	}

	stats := msg.Result.Stats
	a.years = pipeline.YearsWithData(stats.MonthlyStats)
	a.top = pipeline.TopLevel(stats.MonthlyStats)

	sorted := pipeline.SortedMonths(stats.MonthlyStats)
	if len(sorted) > 0 {
		a.months = pipeline.MonthSeries(stats.MonthlyStats, sorted[0].Key(), sorted[len(sorted)-1].Key())
	}
	a.yearIdx = max(len(a.years)-1, 0)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg.String())

	case DataLoadedMsg:
		a.setData(msg)
		return a, nil

	case ProgressMsg:
		a.progress = msg.Current
		a.progressMax = msg.Total
		return a, waitForLoadMsg(a.loadSub)

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateKey(key string) (tea.Model, tea.Cmd) {
	if key == "ctrl+c" || key == "q" {
		return a, tea.Quit
	}
	if !a.loaded {
		return a, nil
	}

	if idx := components.TabIndex(key); idx >= 0 {
		a.activeTab = idx
		return a, nil
	}

	n := len(components.Tabs)
	switch key {
	case "left", "shift+tab":
		a.activeTab = (a.activeTab - 1 + n) % n
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % n
	case "m":
		a.metricIdx = (a.metricIdx + 1) % len(metrics)
	case "M":
		a.metricIdx = (a.metricIdx - 1 + len(metrics)) % len(metrics)
	case "h", "[":
		if a.yearIdx > 0 {
			a.yearIdx--
		}
	case "l", "]":
		if a.yearIdx < len(a.years)-1 {
			a.yearIdx++
		}
	}
	return a, nil
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  igstats needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.err != nil {
		return a.viewMessage("Could not load stats", a.err.Error())
	}
	if a.result == nil || a.result.Stats.Empty() {
		return a.viewMessage("No messages found",
			"Ensure "+a.source+" is populated with exported message archives.")
	}
	return a.viewMain()
}

func (a App) viewLoading() string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).Render("◈ igstats"))
	b.WriteString(muted.Render(" · Instagram chat stats"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())

	if a.progressMax > 0 {
		b.WriteString(muted.Render(" Parsing archives\n\n"))
		b.WriteString(components.ProgressBar(float64(a.progress)/float64(a.progressMax), min(40, a.width-30)))
		b.WriteString("\n")
		b.WriteString(muted.Render(fmt.Sprintf("%s / %s",
			cli.FormatNumber(int64(a.progress)), cli.FormatNumber(int64(a.progressMax)))))
	} else {
		b.WriteString(muted.Render(" Loading stats..."))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(2, 4).
		Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMessage(title, body string) string {
	t := theme.Active
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Error).
		Padding(1, 3).
		Render(lipgloss.NewStyle().Foreground(t.Error).Bold(true).Render(title) + "\n\n" +
			lipgloss.NewStyle().Foreground(t.TextMuted).Render(body) + "\n\n" +
			lipgloss.NewStyle().Foreground(t.TextDim).Render("Press q to quit"))
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	cw := a.contentWidth()

	header := components.RenderTabBar(a.activeTab)
	info := fmt.Sprintf("%s · parsed in %.1fs", a.source, a.loadTime.Seconds())
	if a.result.FromCache {
		info = a.source + " · cached"
	}
	status := components.RenderStatusBar(a.width, "[←→]tab  [m]etric  [h/l]year  [q]uit", info)

	contentH := max(a.height-lipgloss.Height(header)-lipgloss.Height(status), minContentHeight)

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverview(cw)
	case tabYearly:
		content = a.renderYearly(cw)
	case tabMonths:
		content = a.renderMonths(contentH)
	}
	content = padHeight(truncateHeight(content, contentH), contentH)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, status)
}

func (a App) renderOverview(cw int) string {
	stats := a.result.Stats
	m := metrics[a.metricIdx]

	cards := components.MetricCardRow([]components.Metric{
		{Label: "Messages", Value: cli.FormatNumber(int64(a.top.MessageCount))},
		{Label: "Call time", Value: cli.FormatTimeSeconds(a.top.TotalDurationSecs)},
		{Label: "Calls", Value: cli.FormatNumber(int64(a.top.CallCount))},
		{Label: "Reels", Value: cli.FormatNumber(int64(a.top.ReelCount))},
		{Label: "Reactions", Value: cli.FormatNumber(int64(a.top.ReactionCount))},
	}, cw)

	span := lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Render(fmt.Sprintf(
		" %s records between %s and %s",
		cli.FormatNumber(int64(stats.TotalMessageCount)),
		cli.FormatShortDate(stats.StartDate),
		cli.FormatShortDate(stats.EndDate),
	))

	values, labels := series(a.months, m, func(st model.MonthlyStat) string {
		if st.Month == 0 {
			return strconv.Itoa(st.Year)
		}
		return ""
	})
	chart := components.BarChart(values, labels, m.color(theme.Active), components.CardInnerWidth(cw), chartHeight)

	return lipgloss.JoinVertical(lipgloss.Left,
		cards,
		span,
		components.ContentCard(m.name+" per month", chart, cw),
	)
}

func (a App) renderYearly(cw int) string {
	if len(a.years) == 0 {
		return ""
	}
	t := theme.Active
	year := a.years[a.yearIdx]
	m := metrics[a.metricIdx]
	months := pipeline.YearSeries(a.result.Stats.MonthlyStats, year)

	var sum model.MonthlyStat
	for _, st := range months {
		sum = sum.Add(st)
	}

	dim := lipgloss.NewStyle().Foreground(t.TextDim)
	prev, next := dim.Render("◂ "), dim.Render(" ▸")
	if a.yearIdx > 0 {
		prev = lipgloss.NewStyle().Foreground(t.Accent).Render("◂ ")
	}
	if a.yearIdx < len(a.years)-1 {
		next = lipgloss.NewStyle().Foreground(t.Accent).Render(" ▸")
	}
	selector := " " + prev + lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(strconv.Itoa(year)) + next

	cards := components.MetricCardRow([]components.Metric{
		{Label: "Messages", Value: cli.FormatNumber(int64(sum.Messages)),
			Note: fmt.Sprintf("avg %.0f chars", sum.AvgContentLength())},
		{Label: "Call time", Value: cli.FormatTimeSeconds(int64(sum.CallMinutes*60 + 0.5)),
			Note: cli.FormatNumber(int64(sum.CallCount)) + " calls"},
		{Label: "Reels", Value: cli.FormatNumber(int64(sum.Reels))},
		{Label: "Reactions", Value: cli.FormatNumber(int64(sum.Reactions))},
	}, cw)

	values, labels := series(months, m, func(st model.MonthlyStat) string {
		return time.Month(st.Month + 1).String()[:3]
	})
	chart := components.BarChart(values, labels, m.color(t), components.CardInnerWidth(cw), chartHeight)

	return lipgloss.JoinVertical(lipgloss.Left,
		selector,
		cards,
		components.ContentCard(fmt.Sprintf("%s in %d", m.name, year), chart, cw),
	)
}

// renderMonths lists the most recent months that fit in height.
func (a App) renderMonths(height int) string {
	// Title, borders, header, separator and totals take eight lines.
	rows := max(height-8, 1)
	months := pipeline.SortedMonths(a.result.Stats.MonthlyStats)
	if len(months) > rows {
		months = months[len(months)-rows:]
	}
	return cli.MonthlyTable("Recent months", months)
}

func series(months []model.MonthlyStat, m metric, label func(model.MonthlyStat) string) ([]float64, []string) {
	values := make([]float64, len(months))
	labels := make([]string, len(months))
	for i, st := range months {
		values[i] = m.value(st)
		labels[i] = label(st)
	}
	return values, labels
}

// loadDataCmd runs the loader in a background goroutine. Progress and the final
// DataLoadedMsg are streamed through sub.
func loadDataCmd(load LoadFunc, sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		go func() {
			start := time.Now()

			// Non-blocking: a dropped update is superseded by the next one.
			progressFn := func(current, total int) {
				select {
				case sub <- ProgressMsg{Current: current, Total: total}:
				default:
				}
			}

			result, err := load(progressFn)
			sub <- DataLoadedMsg{Result: result, Err: err, LoadTime: time.Since(start)}
		}()

		return <-sub
	}
}

// waitForLoadMsg blocks until the next message arrives from the loader goroutine.
func waitForLoadMsg(sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-sub
	}
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
