package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aThornes/instagram-stats/internal/model"
	"github.com/aThornes/instagram-stats/internal/pipeline"
)

func testMonthly() model.MonthlyStats {
	return model.MonthlyStats{
		{Year: 2022, Month: 10}: {Year: 2022, Month: 10, Messages: 40, Reels: 3, CallCount: 1, CallMinutes: 12},
		{Year: 2023, Month: 2}:  {Year: 2023, Month: 2, Messages: 12, Reactions: 4},
	}
}

func TestWriteCharts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "stats")

	stats := model.AggregatedStats{
		MonthlyStats:      testMonthly(),
		StartDate:         time.Date(2022, 11, 2, 9, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2023, 3, 20, 18, 0, 0, 0, time.UTC),
		TotalMessageCount: 60,
	}

	if err := writeCharts(dir, stats); err != nil {
		t.Fatalf("writeCharts: %v", err)
	}

	for _, name := range []string{"all_time_summary.png", "2022_yearly.png", "2023_yearly.png"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("missing %s: %v", name, err)
			continue
		}
		if len(data) < 8 || string(data[1:4]) != "PNG" {
			t.Errorf("%s is not a PNG", name)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("wrote %d files, want 3", len(entries))
	}
}

func TestActivityLineFillsGaps(t *testing.T) {
	ms := testMonthly()
	line := activityLine(ms, pipeline.SortedMonths(ms))

	if !strings.Contains(line, "█▁▁▁▃") {
		t.Errorf("sparkline missing gap-filled months: %q", line)
	}
	if !strings.Contains(line, "peak 44 records in Nov 2022") {
		t.Errorf("peak not reported: %q", line)
	}
	if got := activityLine(nil, nil); got != "" {
		t.Errorf("activityLine(empty) = %q", got)
	}
}
