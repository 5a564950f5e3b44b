package source

import (
	"testing"
	"time"
	_ "time/tzdata"
)

var testClassifier = Classifier{Offset: 8 * time.Hour, Location: time.UTC}

func TestClassify_Reaction(t *testing.T) {
	msg := testClassifier.Classify(block("Alice", "Reacted &#128525; to your message", "Mar 5, 2023 2:15 pm"))

	if msg.Sender != "Alice" {
		t.Errorf("Sender = %q, want Alice", msg.Sender)
	}
	if !msg.IsReaction {
		t.Error("IsReaction = false, want true")
	}
	if msg.IsReel || msg.IsMedia {
		t.Errorf("IsReel = %v, IsMedia = %v, want both false", msg.IsReel, msg.IsMedia)
	}
}

func TestClassify_PlainMessage(t *testing.T) {
	msg := testClassifier.Classify(block("Bob &amp; Co", "see you &lt;3", "Mar 5, 2023 2:15 pm"))

	if msg.Sender != "Bob & Co" {
		t.Errorf("Sender = %q, want %q", msg.Sender, "Bob & Co")
	}
	if msg.ContentLength != len("see you <3") {
		t.Errorf("ContentLength = %d, want %d", msg.ContentLength, len("see you <3"))
	}
	if msg.IsReaction || msg.IsReel || msg.IsMedia || msg.IsCallStart || msg.IsCallEnd {
		t.Errorf("unexpected flags on plain message: %+v", msg)
	}
	want := time.Date(2023, 3, 5, 22, 15, 0, 0, time.UTC)
	if !msg.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", msg.Timestamp, want)
	}
}

func TestClassify_ContentLengthCountsRunes(t *testing.T) {
	msg := testClassifier.Classify(block("Alice", "héllo wörld", "Mar 5, 2023 2:15 pm"))
	if msg.ContentLength != 11 {
		t.Errorf("ContentLength = %d, want 11", msg.ContentLength)
	}

	tests := []struct {
		content string
		want    int
	}{
		{"😍😍", 2},
		{"&nbsp;hi&nbsp;", 2},
		{"a &amp; b", 5},
	}
	for _, tt := range tests {
		msg := testClassifier.Classify(block("Alice", tt.content, "Mar 5, 2023 2:15 pm"))
		if msg.ContentLength != tt.want {
			t.Errorf("ContentLength(%q) = %d, want %d", tt.content, msg.ContentLength, tt.want)
		}
	}
}

func TestClassify_ReelWinsOverMedia(t *testing.T) {
	msg := testClassifier.Classify(block("Alice",
		`Alice sent an attachment. <a href="https://www.instagram.com/reel/abc/">https://www.instagram.com/reel/abc/</a>`,
		"Mar 5, 2023 2:15 pm"))

	if !msg.IsReel {
		t.Error("IsReel = false, want true")
	}
	if msg.IsMedia {
		t.Error("IsMedia = true, want false when the attachment is a reel")
	}
}

func TestClassify_Media(t *testing.T) {
	msg := testClassifier.Classify(block("Alice", "Alice sent an attachment.", "Mar 5, 2023 2:15 pm"))
	if !msg.IsMedia || msg.IsReel {
		t.Errorf("IsMedia = %v, IsReel = %v, want true, false", msg.IsMedia, msg.IsReel)
	}
}

func TestClassify_Calls(t *testing.T) {
	start := testClassifier.Classify(block("Alice", "Alice started a video chat", "Mar 5, 2023 2:15 pm"))
	if !start.IsCallStart || start.IsCallEnd {
		t.Errorf("start flags = %+v", start)
	}
	if start.HasDuration {
		t.Error("HasDuration = true on a call start")
	}

	end := testClassifier.Classify(block("Alice", "Video chat ended<br>Duration: 2 hours", "Mar 5, 2023 4:15 pm"))
	if !end.IsCallEnd {
		t.Error("IsCallEnd = false, want true")
	}
	if !end.HasDuration || end.DurationSecs != 7200 {
		t.Errorf("duration = %d (%v), want 7200", end.DurationSecs, end.HasDuration)
	}
}

func TestClassify_OffsetCrossesMonth(t *testing.T) {
	msg := testClassifier.Classify(block("Alice", "late", "Mar 31, 2023 8:00 pm"))
	want := time.Date(2023, 4, 1, 4, 0, 0, 0, time.UTC)
	if !msg.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", msg.Timestamp, want)
	}
}

func TestClassify_OffsetShiftsWallClockAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	c := Classifier{Offset: 8 * time.Hour, Location: ny}

	// Clocks jump from 2:00 to 3:00 on Mar 10, 2024; the wall clock still reads 1 + 8.
	msg := c.Classify(block("Alice", "spring", "Mar 10, 2024 1:00 am"))
	want := time.Date(2024, 3, 10, 9, 0, 0, 0, ny)
	if !msg.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", msg.Timestamp, want)
	}

	msg = c.Classify(block("Alice", "fall", "Nov 2, 2024 8:30 pm"))
	want = time.Date(2024, 11, 3, 4, 30, 0, 0, ny)
	if !msg.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", msg.Timestamp, want)
	}
}

func TestClassify_BadTimestamp(t *testing.T) {
	msg := testClassifier.Classify(block("Alice", "hello", "sometime last week"))
	if msg.Dated() {
		t.Errorf("Timestamp = %v, want zero", msg.Timestamp)
	}
	if msg.ContentLength != 5 {
		t.Errorf("ContentLength = %d, want 5", msg.ContentLength)
	}
}

func TestClassify_NoMarkup(t *testing.T) {
	msg := testClassifier.Classify("garbage")
	if msg.Sender != "" || msg.ContentLength != 0 || msg.Dated() || msg.HasDuration {
		t.Errorf("expected zero message, got %+v", msg)
	}
}

func TestParseTimestamp_Layouts(t *testing.T) {
	c := Classifier{Location: time.UTC}
	want := time.Date(2023, 3, 5, 14, 15, 0, 0, time.UTC)

	inputs := []string{
		"Mar 5, 2023 2:15 pm",
		"Mar 5, 2023 2:15 PM",
		"Mar 5, 2023, 2:15 pm",
		"Mar 5, 2023 2:15:00 pm",
		"March 5, 2023 2:15 pm",
		"Mar 5, 2023  2:15 pm",
		"2023-03-05T14:15:00Z",
		"2023-03-05 14:15:00",
	}
	for _, in := range inputs {
		got, ok := c.parseTimestamp(in)
		if !ok {
			t.Errorf("parseTimestamp(%q) failed", in)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("parseTimestamp(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		text   string
		want   int64
		wantOK bool
	}{
		{"Duration: 2 hours", 7200, true},
		{"Duration: 1 hour", 3600, true},
		{"Duration: 90 seconds", 90, true},
		{"Duration: 5 minutes", 300, true},
		{"duration: 3 MINUTES", 180, true},
		{"Duration:45 seconds", 45, true},
		{"Video chat ended", 0, false},
		{"Duration: soon", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseDuration(tt.text)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseDuration(%q) = %d, %v; want %d, %v", tt.text, got, ok, tt.want, tt.wantOK)
		}
	}
}
