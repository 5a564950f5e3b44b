package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aThornes/instagram-stats/internal/cli"
	"github.com/aThornes/instagram-stats/internal/model"
	"github.com/aThornes/instagram-stats/internal/pipeline"
)

var flagYear int

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Per-month activity table",
	RunE:  runMonthly,
}

func init() {
	monthlyCmd.Flags().IntVar(&flagYear, "year", 0, "Show every month of one year, including empty ones")
	rootCmd.AddCommand(monthlyCmd)
}

func runMonthly(_ *cobra.Command, _ []string) error {
	result, err := loadStats(progressLogger)
	if err != nil {
		return err
	}

	ms := result.Stats.MonthlyStats
	if result.Stats.Empty() {
		fmt.Println("\n  No messages found.")
		return nil
	}

	fmt.Println()
	if flagYear != 0 {
		fmt.Println(cli.RenderTitle("MONTHLY ACTIVITY  " + strconv.Itoa(flagYear)))
		fmt.Println()
		fmt.Print(cli.MonthlyTable("", pipeline.YearSeries(ms, flagYear)))
		return nil
	}

	months := pipeline.SortedMonths(ms)
	fmt.Println(cli.RenderTitle("MONTHLY ACTIVITY"))
	fmt.Println()
	fmt.Println(activityLine(ms, months))
	fmt.Println()
	fmt.Print(cli.MonthlyTable("", months))
	fmt.Println()
	fmt.Print(cli.YearTable(pipeline.YearTotals(ms)))
	fmt.Println()
	fmt.Print(cli.TopLevelTable(pipeline.TopLevel(ms)))
	return nil
}

// activityLine sketches records per month from the first to the last month with data,
// with the busiest month called out.
func activityLine(ms model.MonthlyStats, months []model.MonthlyStat) string {
	if len(months) == 0 {
		return ""
	}
	series := pipeline.MonthSeries(ms, months[0].Key(), months[len(months)-1].Key())

	values := make([]float64, len(series))
	peak := series[0]
	for i, st := range series {
		values[i] = float64(st.Total())
		if st.Total() > peak.Total() {
			peak = st
		}
	}
	return fmt.Sprintf("  %s  %s",
		cli.RenderSparkline(values),
		cli.Muted(fmt.Sprintf("peak %s records in %s", cli.FormatCompact(peak.Total()), peak.Key().Label())))
}
