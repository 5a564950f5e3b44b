package chart

import (
	"fmt"
	"image"
	"strconv"
	"time"

	"github.com/aThornes/instagram-stats/internal/model"
	"github.com/aThornes/instagram-stats/internal/pipeline"
)

var summaryArea = image.Rect(100, 300, 1160, 690)

// AllTimeSummary renders the headline figures and one stacked bar per month from start
// through end. Zero bounds fall back to the first and last month holding data.
func AllTimeSummary(ms model.MonthlyStats, start, end time.Time) ([]byte, error) {
	months := pipeline.SortedMonths(ms)
	if len(months) == 0 {
		return nil, fmt.Errorf("no monthly stats to chart")
	}

	first, last := months[0].Key(), months[len(months)-1].Key()
	if !start.IsZero() {
		first = model.KeyFor(start)
	}
	if !end.IsZero() {
		last = model.KeyFor(end)
	}
	series := pipeline.MonthSeries(ms, first, last)
	top := pipeline.TopLevel(ms)

	c := newCanvas(canvasWidth, canvasHeight)
	c.text("Instagram Chat Summary", canvasWidth/2, 60, 3, colorText, alignCenter)
	c.text(formatDate(start)+" - "+formatDate(end), canvasWidth/2, 100, 2, colorMuted, alignCenter)

	cards := []struct{ label, value string }{
		{"MESSAGES", strconv.Itoa(top.MessageCount)},
		{"CALL TIME", formatHours(top.TotalDurationSecs)},
		{"CALLS", strconv.Itoa(top.CallCount)},
		{"REELS", strconv.Itoa(top.ReelCount)},
		{"REACTIONS", strconv.Itoa(top.ReactionCount)},
	}
	const margin, gap = 40, 20
	width := (canvasWidth - 2*margin - gap*(len(cards)-1)) / len(cards)
	for i, cd := range cards {
		x := margin + i*(width+gap)
		c.card(image.Rect(x, 140, x+width, 240), cd.label, cd.value)
	}

	c.stackedBars(summaryArea, series, barOptions{
		label:      func(st model.MonthlyStat) string { return st.Key().Label() },
		labelEvery: (len(series) + 11) / 12,
	})
	c.legend(summaryArea.Min.X, 760)

	return c.encode()
}
