package chart

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/aThornes/instagram-stats/internal/model"
)

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != canvasWidth || b.Dy() != canvasHeight {
		t.Fatalf("bounds = %v, want %dx%d", b, canvasWidth, canvasHeight)
	}
	return img
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func TestYearlyBarChart(t *testing.T) {
	ms := model.MonthlyStats{
		{Year: 2023, Month: 2}: {Year: 2023, Month: 2, Messages: 10},
		{Year: 2022, Month: 2}: {Year: 2022, Month: 2, Messages: 500},
	}

	data, err := YearlyBarChart(ms, 2023)
	if err != nil {
		t.Fatal(err)
	}
	img := decode(t, data)

	// March is the busiest month of 2023, so its bar fills the plot height.
	bar := barSlot(yearlyArea, 12, 2)
	mid := (bar.Min.X + bar.Max.X) / 2
	if got := img.At(mid, yearlyArea.Max.Y-10); !sameColor(got, colorMessages) {
		t.Errorf("March bar pixel = %v, want %v", got, colorMessages)
	}
	if got := img.At(mid, yearlyArea.Min.Y+10); !sameColor(got, colorMessages) {
		t.Errorf("March bar top pixel = %v, want %v", got, colorMessages)
	}

	// January has no data.
	jan := barSlot(yearlyArea, 12, 0)
	if got := img.At((jan.Min.X+jan.Max.X)/2, yearlyArea.Max.Y-10); sameColor(got, colorMessages) {
		t.Error("January bar drawn without data")
	}
}

func TestYearlyBarChart_Stacking(t *testing.T) {
	ms := model.MonthlyStats{
		{Year: 2023, Month: 0}: {Year: 2023, Month: 0, Messages: 50, Reels: 50},
	}
	data, err := YearlyBarChart(ms, 2023)
	if err != nil {
		t.Fatal(err)
	}
	img := decode(t, data)

	bar := barSlot(yearlyArea, 12, 0)
	mid := (bar.Min.X + bar.Max.X) / 2
	quarter := yearlyArea.Dy() / 4
	if got := img.At(mid, yearlyArea.Max.Y-quarter); !sameColor(got, colorMessages) {
		t.Errorf("lower half = %v, want messages colour", got)
	}
	if got := img.At(mid, yearlyArea.Min.Y+quarter); !sameColor(got, colorReels) {
		t.Errorf("upper half = %v, want reels colour", got)
	}
}

func TestAllTimeSummary(t *testing.T) {
	ms := model.MonthlyStats{
		{Year: 2022, Month: 10}: {Year: 2022, Month: 10, Messages: 4, CallCount: 1, CallMinutes: 90},
		{Year: 2023, Month: 1}:  {Year: 2023, Month: 1, Messages: 8, Reactions: 2},
	}
	start := time.Date(2022, 11, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 2, 14, 0, 0, 0, 0, time.UTC)

	data, err := AllTimeSummary(ms, start, end)
	if err != nil {
		t.Fatal(err)
	}
	img := decode(t, data)

	// Four months from Nov 2022 through Feb 2023; Feb is the peak.
	feb := barSlot(summaryArea, 4, 3)
	if got := img.At((feb.Min.X+feb.Max.X)/2, summaryArea.Max.Y-5); !sameColor(got, colorMessages) {
		t.Errorf("February bar pixel = %v, want messages colour", got)
	}
}

func TestAllTimeSummary_Empty(t *testing.T) {
	if _, err := AllTimeSummary(model.MonthlyStats{}, time.Time{}, time.Time{}); err == nil {
		t.Error("expected error for empty stats")
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := formatCount(1234); got != "1.2k" {
		t.Errorf("formatCount(1234) = %q", got)
	}
	if got := formatCount(999); got != "999" {
		t.Errorf("formatCount(999) = %q", got)
	}
	if got := formatHours(5400); got != "1h 30m" {
		t.Errorf("formatHours(5400) = %q", got)
	}
	if got := formatHours(600); got != "10m" {
		t.Errorf("formatHours(600) = %q", got)
	}
}
