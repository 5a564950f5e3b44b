// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		result.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatCompact formats a count with K/M suffixes for narrow chart labels.
// e.g., 950 -> "950", 1234 -> "1.2K", 2500000 -> "2.5M"
func FormatCompact(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.Itoa(n)
	}
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// FormatTimeSeconds renders a call duration in its largest whole unit.
// e.g., 45 -> "45 seconds", 150 -> "2 minutes", 7200 -> "2 hours",
// 93600 -> "26 hours (1 day 2 hours)"
func FormatTimeSeconds(secs int64) string {
	switch {
	case secs < 60:
		return plural(secs, "second")
	case secs < 3600:
		return plural(secs/60, "minute")
	}

	hours := secs / 3600
	s := plural(hours, "hour")
	if hours >= 24 {
		s += fmt.Sprintf(" (%s %s)", plural(hours/24, "day"), plural(hours%24, "hour"))
	}
	return s
}

// FormatShortDate renders t as DD/MM/YYYY, or "-" for the zero time.
func FormatShortDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}

// FormatMinutes formats fractional call minutes with one decimal.
func FormatMinutes(m float64) string {
	return fmt.Sprintf("%.1f", m)
}
