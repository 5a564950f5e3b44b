package source

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aThornes/instagram-stats/internal/model"
)

// DefaultOffsetHours compensates for the timezone normalization applied by the exporter.
const DefaultOffsetHours = 8

var (
	senderPattern    = regexp.MustCompile(`<h2[^>]*>([^<]+)</h2>`)
	contentPattern   = regexp.MustCompile(`<div class="_3-95 _a6-p">([\s\S]*?)</div><div class="_3-94 _a6-o">`)
	timestampPattern = regexp.MustCompile(`<div class="_3-94 _a6-o">([^<]+)</div>`)
	tagPattern       = regexp.MustCompile(`<[^>]+>`)
	durationPattern  = regexp.MustCompile(`(?i)Duration:\s*(\d+)\s*(minute|minutes|hour|hours|second|seconds)`)
)

// Phrases that mark a message category. Matching is case-sensitive.
const (
	phraseReacted    = "Reacted"
	phraseToYourMsg  = "to your message"
	phraseReel       = "instagram.com/reel"
	phraseAttachment = "sent an attachment"
	phraseCallStart  = "started a video chat"
	phraseCallEnd    = "Video chat ended"
)

// timestampLayouts covers the date formats seen in exported archives.
var timestampLayouts = buildTimestampLayouts()

func buildTimestampLayouts() []string {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
	}
	for _, month := range []string{"Jan", "January"} {
		for _, sep := range []string{" ", ", "} {
			for _, clock := range []string{"3:04", "3:04:05"} {
				for _, ampm := range []string{"pm", "PM"} {
					layouts = append(layouts, month+" 2, 2006"+sep+clock+" "+ampm)
				}
			}
			layouts = append(layouts, month+" 2, 2006"+sep+"15:04", month+" 2, 2006"+sep+"15:04:05")
		}
	}
	return layouts
}

// Classifier turns message blocks into ClassifiedMessages.
type Classifier struct {
	// Offset is added to the wall clock of every parsed timestamp.
	Offset time.Duration
	// Location is used for timestamps without an explicit zone. Nil means UTC.
	Location *time.Location
}

// NewClassifier returns a classifier shifting timestamps by offsetHours and reading
// zone-less timestamps in local time.
func NewClassifier(offsetHours int) Classifier {
	return Classifier{
		Offset:   time.Duration(offsetHours) * time.Hour,
		Location: time.Local,
	}
}

// Classify parses one message block. It never fails: anything it cannot find is left
// at its zero value.
func (c Classifier) Classify(block string) model.ClassifiedMessage {
	var msg model.ClassifiedMessage

	if m := senderPattern.FindStringSubmatch(block); m != nil {
		msg.Sender = DecodeEntities(m[1])
	}

	var content string
	if m := contentPattern.FindStringSubmatch(block); m != nil {
		content = tagPattern.ReplaceAllString(m[1], " ")
		content = strings.TrimSpace(DecodeEntities(content))
	}
	msg.ContentLength = utf8.RuneCountInString(content)

	if m := timestampPattern.FindStringSubmatch(block); m != nil {
		if ts, ok := c.parseTimestamp(m[1]); ok {
			msg.Timestamp = shiftWallClock(ts, c.Offset)
		}
	}

	msg.IsReaction = strings.Contains(content, phraseReacted) && strings.Contains(content, phraseToYourMsg)
	msg.IsReel = strings.Contains(content, phraseReel)
	msg.IsMedia = strings.Contains(content, phraseAttachment) && !msg.IsReel
	msg.IsCallStart = strings.Contains(content, phraseCallStart)
	msg.IsCallEnd = strings.Contains(content, phraseCallEnd)

	msg.DurationSecs, msg.HasDuration = ParseDuration(block)

	return msg
}

func (c Classifier) parseTimestamp(raw string) (time.Time, bool) {
	s := normalizeSpaces(DecodeEntities(raw))
	if s == "" {
		return time.Time{}, false
	}

	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, s, loc); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// shiftWallClock moves the wall-clock reading of ts forward by d in ts's location, so a
// DST change between the two readings does not add or drop an hour.
func shiftWallClock(ts time.Time, d time.Duration) time.Time {
	hours := int(d / time.Hour)
	rest := d % time.Hour
	y, mo, day := ts.Date()
	return time.Date(y, mo, day, ts.Hour()+hours, ts.Minute(), ts.Second(), ts.Nanosecond(), ts.Location()).Add(rest)
}

// normalizeSpaces collapses whitespace runs to one ASCII space. strings.Fields also
// splits on the narrow no-break space some exports put before AM/PM.
func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ParseDuration scans text for "Duration: <N> <unit>" and returns the length in whole
// seconds. ok is false when no duration is present.
func ParseDuration(text string) (secs int64, ok bool) {
	m := durationPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}

	unit := strings.ToLower(m[2])
	switch {
	case strings.HasPrefix(unit, "hour"):
		return n * 3600, true
	case strings.HasPrefix(unit, "minute"):
		return n * 60, true
	default:
		return n, true
	}
}
