// Package pipeline folds classified messages into monthly aggregates, merges them across
// archive files, and serves cached results.
package pipeline

import (
	"sort"

	"github.com/aThornes/instagram-stats/internal/model"
)

const (
	// MinCallDurationSecs is the shortest call that counts. Anything shorter, or a call
	// end without a duration, is treated as missed.
	MinCallDurationSecs = 60

	// callHistorySize bounds how far back a missed call looks for its start.
	callHistorySize = 10
)

// callHistory remembers the buckets of recent call starts, oldest first.
type callHistory struct {
	keys []model.MonthKey
}

func (h *callHistory) push(k model.MonthKey) {
	h.keys = append(h.keys, k)
	if len(h.keys) > callHistorySize {
		h.keys = h.keys[1:]
	}
}

// pop removes and returns the most recently pushed start.
func (h *callHistory) pop() (model.MonthKey, bool) {
	if len(h.keys) == 0 {
		return model.MonthKey{}, false
	}
	k := h.keys[len(h.keys)-1]
	h.keys = h.keys[:len(h.keys)-1]
	return k, true
}

// isMissedCall reports whether msg is a call end too short to count.
func isMissedCall(msg model.ClassifiedMessage) bool {
	return msg.IsCallEnd && (!msg.HasDuration || msg.DurationSecs < MinCallDurationSecs)
}

// AggregateMessages folds one file's messages, in extraction order, into monthly stats.
//
// A missed call end rolls back the most recent call start seen within the last
// callHistorySize starts and contributes nothing else. Undated messages are skipped.
// Every other message is counted in exactly one bucket:
// reaction > reel > call start > call end > plain message.
func AggregateMessages(msgs []model.ClassifiedMessage) model.FileStats {
	fs := model.FileStats{Monthly: make(model.MonthlyStats)}
	var history callHistory

	for _, msg := range msgs {
		if isMissedCall(msg) {
			if k, ok := history.pop(); ok {
				if st, exists := fs.Monthly[k]; exists {
					st.CallStarts--
					fs.Monthly[k] = st
				}
			}
			continue
		}

		if !msg.Dated() {
			continue
		}

		ts := msg.Timestamp
		key := model.KeyFor(ts)

		if fs.Earliest.IsZero() || ts.Before(fs.Earliest) {
			fs.Earliest = ts
		}
		if fs.Latest.IsZero() || ts.After(fs.Latest) {
			fs.Latest = ts
		}

		st, ok := fs.Monthly[key]
		if !ok {
			st = model.NewMonthlyStat(key)
		}

		fs.TotalMessages++

		switch msg.Category() {
		case model.CategoryReaction:
			st.Reactions++
		case model.CategoryReel:
			st.Reels++
		case model.CategoryCallStart:
			st.CallStarts++
			history.push(key)
		case model.CategoryCallEnd:
			st.CallCount++
			st.CallMinutes += float64(msg.DurationSecs) / 60
		default:
			st.Messages++
			st.TotalContentLength += msg.ContentLength
		}

		fs.Monthly[key] = st
	}

	return fs
}

// Merge returns a new map holding the union of a and b, with same-month counters summed.
// Neither input is modified.
func Merge(a, b model.MonthlyStats) model.MonthlyStats {
	out := make(model.MonthlyStats, len(a)+len(b))
	for k, st := range a {
		out[k] = st
	}
	for k, st := range b {
		if cur, ok := out[k]; ok {
			out[k] = cur.Add(st)
		} else {
			out[k] = st
		}
	}
	return out
}

// MergeFile folds one file's aggregate into agg and returns the result. Files without any
// dated message leave the date bounds untouched.
func MergeFile(agg model.AggregatedStats, fs model.FileStats) model.AggregatedStats {
	agg.MonthlyStats = Merge(agg.MonthlyStats, fs.Monthly)
	agg.TotalMessageCount += fs.TotalMessages

	if !fs.Earliest.IsZero() && (agg.StartDate.IsZero() || fs.Earliest.Before(agg.StartDate)) {
		agg.StartDate = fs.Earliest
	}
	if !fs.Latest.IsZero() && (agg.EndDate.IsZero() || fs.Latest.After(agg.EndDate)) {
		agg.EndDate = fs.Latest
	}
	return agg
}

// TopLevel sums every month's counters.
func TopLevel(ms model.MonthlyStats) model.TopLevelStats {
	var (
		top         model.TopLevelStats
		callMinutes float64
	)
	for _, st := range ms {
		top.MessageCount += st.Messages
		top.CallCount += st.CallCount
		top.ReelCount += st.Reels
		top.ReactionCount += st.Reactions
		callMinutes += st.CallMinutes
	}
	top.TotalDurationSecs = int64(callMinutes*60 + 0.5)
	return top
}

// YearsWithData returns the distinct years present in ms, ascending.
func YearsWithData(ms model.MonthlyStats) []int {
	seen := make(map[int]struct{})
	for k := range ms {
		seen[k.Year] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// YearTotals counts messages, reels, reactions and calls per year, ascending by year.
func YearTotals(ms model.MonthlyStats) []model.YearTotal {
	byYear := make(map[int]int)
	for k, st := range ms {
		byYear[k.Year] += st.Total()
	}
	totals := make([]model.YearTotal, 0, len(byYear))
	for _, y := range YearsWithData(ms) {
		totals = append(totals, model.YearTotal{Year: y, Messages: byYear[y]})
	}
	return totals
}

// SortedMonths returns the stats of ms ordered by month, ascending.
func SortedMonths(ms model.MonthlyStats) []model.MonthlyStat {
	months := make([]model.MonthlyStat, 0, len(ms))
	for _, st := range ms {
		months = append(months, st)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Key().Before(months[j].Key())
	})
	return months
}

// MonthSeries returns one entry per month from the month of start through the month of
// end, filling months without data with zeroed stats.
func MonthSeries(ms model.MonthlyStats, start, end model.MonthKey) []model.MonthlyStat {
	if end.Before(start) {
		return nil
	}
	var series []model.MonthlyStat
	for k := start; !end.Before(k); k = k.Next() {
		st, ok := ms[k]
		if !ok {
			st = model.NewMonthlyStat(k)
		}
		series = append(series, st)
	}
	return series
}

// YearSeries returns the twelve months of year, January first.
func YearSeries(ms model.MonthlyStats, year int) []model.MonthlyStat {
	return MonthSeries(ms, model.MonthKey{Year: year}, model.MonthKey{Year: year, Month: 11})
}
