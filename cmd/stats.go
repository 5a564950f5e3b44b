package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/aThornes/instagram-stats/internal/chart"
	"github.com/aThornes/instagram-stats/internal/cli"
	"github.com/aThornes/instagram-stats/internal/model"
	"github.com/aThornes/instagram-stats/internal/pipeline"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Generate summary charts and print headline totals (default)",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	result, err := loadStats(progressLogger)
	if err != nil {
		return err
	}

	stats := result.Stats
	if stats.Empty() {
		fmt.Println(cli.Error("Unable to find any messages. Ensure messageFiles directory is populated."))
		return nil
	}

	cli.LoadInfo(os.Stdout, stats.TotalMessageCount, stats.StartDate, stats.EndDate)
	fmt.Println()

	if err := writeCharts(cfg.General.StatsDir, stats); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("--- Summary ---"))
	cli.TopLevel(os.Stdout, pipeline.TopLevel(stats.MonthlyStats))
	fmt.Println()
	fmt.Println(cli.Done("Stats generation complete!"))
	return nil
}

// writeCharts renders the all-time summary and one chart per year with data into dir.
func writeCharts(dir string, stats model.AggregatedStats) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	write := func(name string, png []byte) error {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, png, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		log.Debug().Str("path", path).Int("bytes", len(png)).Msg("wrote chart")
		fmt.Println(cli.Done("Generated " + path))
		return nil
	}

	png, err := chart.AllTimeSummary(stats.MonthlyStats, stats.StartDate, stats.EndDate)
	if err != nil {
		return fmt.Errorf("rendering summary chart: %w", err)
	}
	if err := write("all_time_summary.png", png); err != nil {
		return err
	}

	for _, year := range pipeline.YearsWithData(stats.MonthlyStats) {
		png, err := chart.YearlyBarChart(stats.MonthlyStats, year)
		if err != nil {
			return fmt.Errorf("rendering %d chart: %w", year, err)
		}
		if err := write(fmt.Sprintf("%d_yearly.png", year), png); err != nil {
			return err
		}
	}
	return nil
}
