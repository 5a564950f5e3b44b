package cli

import (
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{950, "950"},
		{1234, "1.2K"},
		{2_500_000, "2.5M"},
	}
	for _, tt := range tests {
		if got := FormatCompact(tt.in); got != tt.want {
			t.Errorf("FormatCompact(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatTimeSeconds(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 seconds"},
		{1, "1 second"},
		{45, "45 seconds"},
		{60, "1 minute"},
		{150, "2 minutes"},
		{3600, "1 hour"},
		{7200, "2 hours"},
		{86400, "24 hours (1 day 0 hours)"},
		{93600, "26 hours (1 day 2 hours)"},
		{180000, "50 hours (2 days 2 hours)"},
		{90000, "25 hours (1 day 1 hour)"},
	}
	for _, tt := range tests {
		if got := FormatTimeSeconds(tt.in); got != tt.want {
			t.Errorf("FormatTimeSeconds(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatShortDate(t *testing.T) {
	if got := FormatShortDate(time.Date(2023, 3, 5, 22, 15, 0, 0, time.UTC)); got != "05/03/2023" {
		t.Errorf("FormatShortDate = %q, want 05/03/2023", got)
	}
	if got := FormatShortDate(time.Time{}); got != "-" {
		t.Errorf("FormatShortDate(zero) = %q, want -", got)
	}
}
