package model

import (
	"fmt"
	"time"
)

// MonthKey identifies one calendar month. Month is zero-based (January = 0).
type MonthKey struct {
	Year  int
	Month int
}

// KeyFor returns the month bucket of t in t's own location.
func KeyFor(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: int(t.Month()) - 1}
}

// String renders the key as "<year>-<zero-based month>", e.g. "2023-2" for March 2023.
func (k MonthKey) String() string {
	return fmt.Sprintf("%d-%d", k.Year, k.Month)
}

// MarshalText lets MonthKey act as a JSON object key.
func (k MonthKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses the "<year>-<month>" form written by MarshalText.
func (k *MonthKey) UnmarshalText(b []byte) error {
	var year, month int
	if _, err := fmt.Sscanf(string(b), "%d-%d", &year, &month); err != nil {
		return fmt.Errorf("parsing month key %q: %w", b, err)
	}
	if month < 0 || month > 11 {
		return fmt.Errorf("month key %q: month out of range", b)
	}
	k.Year, k.Month = year, month
	return nil
}

// Before reports whether k is an earlier month than o.
func (k MonthKey) Before(o MonthKey) bool {
	if k.Year != o.Year {
		return k.Year < o.Year
	}
	return k.Month < o.Month
}

// Next returns the following month.
func (k MonthKey) Next() MonthKey {
	if k.Month == 11 {
		return MonthKey{Year: k.Year + 1}
	}
	return MonthKey{Year: k.Year, Month: k.Month + 1}
}

// Label renders the key for display, e.g. "Mar 2023".
func (k MonthKey) Label() string {
	return fmt.Sprintf("%s %d", time.Month(k.Month + 1).String()[:3], k.Year)
}

// MonthlyStat holds the counters for one month.
type MonthlyStat struct {
	Year               int     `json:"year"`
	Month              int     `json:"month"`
	Messages           int     `json:"messages"`
	Reels              int     `json:"reels"`
	Reactions          int     `json:"reactions"`
	CallMinutes        float64 `json:"callMinutes"`
	CallCount          int     `json:"callCount"`
	CallStarts         int     `json:"callStarts"`
	TotalContentLength int     `json:"totalContentLength"`
}

// NewMonthlyStat returns a zeroed stat for k.
func NewMonthlyStat(k MonthKey) MonthlyStat {
	return MonthlyStat{Year: k.Year, Month: k.Month}
}

// Key returns the month this stat belongs to.
func (s MonthlyStat) Key() MonthKey {
	return MonthKey{Year: s.Year, Month: s.Month}
}

// Add returns the field-by-field sum of s and o, keeping s's month.
func (s MonthlyStat) Add(o MonthlyStat) MonthlyStat {
	s.Messages += o.Messages
	s.Reels += o.Reels
	s.Reactions += o.Reactions
	s.CallMinutes += o.CallMinutes
	s.CallCount += o.CallCount
	s.CallStarts += o.CallStarts
	s.TotalContentLength += o.TotalContentLength
	return s
}

// Total is the number of counted records of every kind except call starts.
func (s MonthlyStat) Total() int {
	return s.Messages + s.Reels + s.Reactions + s.CallCount
}

// AvgContentLength is the mean length of plain messages in the month.
func (s MonthlyStat) AvgContentLength() float64 {
	if s.Messages == 0 {
		return 0
	}
	return float64(s.TotalContentLength) / float64(s.Messages)
}

// MonthlyStats maps each touched month to its counters.
type MonthlyStats map[MonthKey]MonthlyStat

// FileStats is the aggregate produced from a single archive file.
type FileStats struct {
	Monthly       MonthlyStats
	Earliest      time.Time
	Latest        time.Time
	TotalMessages int
}

// AggregatedStats is the merged aggregate across all archive files. It is the
// unit persisted by the cache store.
type AggregatedStats struct {
	MonthlyStats      MonthlyStats `json:"monthlyStats"`
	StartDate         time.Time    `json:"startDate,omitzero"`
	EndDate           time.Time    `json:"endDate,omitzero"`
	TotalMessageCount int          `json:"totalMessageCount"`
}

// Empty reports whether no month holds any data.
func (a *AggregatedStats) Empty() bool {
	return a == nil || len(a.MonthlyStats) == 0
}

// TopLevelStats sums the monthly counters across all months.
type TopLevelStats struct {
	MessageCount      int
	TotalDurationSecs int64
	CallCount         int
	ReelCount         int
	ReactionCount     int
}

// YearTotal is the number of counted records in one calendar year.
type YearTotal struct {
	Year     int
	Messages int
}
