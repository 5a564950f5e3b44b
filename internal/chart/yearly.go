package chart

import (
	"fmt"
	"image"
	"time"

	"github.com/aThornes/instagram-stats/internal/model"
	"github.com/aThornes/instagram-stats/internal/pipeline"
)

var yearlyArea = image.Rect(100, 170, 1160, 680)

// YearlyBarChart renders the twelve months of year as stacked bars with their totals.
func YearlyBarChart(ms model.MonthlyStats, year int) ([]byte, error) {
	series := pipeline.YearSeries(ms, year)

	var sum model.MonthlyStat
	for _, st := range series {
		sum = sum.Add(st)
	}

	c := newCanvas(canvasWidth, canvasHeight)
	c.text(fmt.Sprintf("%d in Messages", year), canvasWidth/2, 60, 3, colorText, alignCenter)
	c.text(fmt.Sprintf("%d records, %.0f call minutes", sum.Total(), sum.CallMinutes),
		canvasWidth/2, 100, 2, colorMuted, alignCenter)

	c.stackedBars(yearlyArea, series, barOptions{
		label:  func(st model.MonthlyStat) string { return time.Month(st.Month + 1).String()[:3] },
		totals: true,
	})
	c.legend(yearlyArea.Min.X, 750)

	return c.encode()
}
