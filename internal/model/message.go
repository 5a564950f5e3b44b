// Package model defines domain types for igstats message records and monthly aggregates.
package model

import "time"

// Category is the single aggregation bucket a classified message is counted in.
type Category int

// Categories in priority order. A message carrying several flags lands in the
// first matching category.
const (
	CategoryMessage Category = iota
	CategoryReaction
	CategoryReel
	CategoryCallStart
	CategoryCallEnd
)

func (c Category) String() string {
	switch c {
	case CategoryReaction:
		return "reaction"
	case CategoryReel:
		return "reel"
	case CategoryCallStart:
		return "call_start"
	case CategoryCallEnd:
		return "call_end"
	default:
		return "message"
	}
}

// ClassifiedMessage is the structured form of one exported message block.
type ClassifiedMessage struct {
	Sender string
	// ContentLength counts Unicode code points of the decoded, trimmed content, so an
	// emoji outside the BMP counts once.
	ContentLength int
	Timestamp     time.Time // zero when the export timestamp could not be parsed

	IsReaction  bool
	IsReel      bool
	IsMedia     bool // always false when IsReel is set
	IsCallStart bool
	IsCallEnd   bool

	DurationSecs int64
	HasDuration  bool
}

// Category resolves the message flags to one bucket:
// reaction > reel > call start > call end > plain message (media included).
func (m ClassifiedMessage) Category() Category {
	switch {
	case m.IsReaction:
		return CategoryReaction
	case m.IsReel:
		return CategoryReel
	case m.IsCallStart:
		return CategoryCallStart
	case m.IsCallEnd:
		return CategoryCallEnd
	default:
		return CategoryMessage
	}
}

// Dated reports whether the message has a usable timestamp.
func (m ClassifiedMessage) Dated() bool {
	return !m.Timestamp.IsZero()
}
