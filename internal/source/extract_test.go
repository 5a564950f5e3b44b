package source

import (
	"strings"
	"testing"
)

func TestExtractBlocks(t *testing.T) {
	a := block("Alice", "first", "Mar 5, 2023 2:15 pm")
	b := block("Bob", "second", "Mar 4, 2023 9:00 am")
	html := page(a, b)

	blocks := ExtractBlocks(html)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0] != a {
		t.Errorf("blocks[0] = %q, want %q", blocks[0], a)
	}
	if blocks[1] != b {
		t.Errorf("blocks[1] = %q, want %q", blocks[1], b)
	}
}

func TestExtractBlocks_SkipsMalformed(t *testing.T) {
	broken := `<div class="pam _3-95"><h2>Eve</h2><div class="_3-95 _a6-p">no timestamp</div></div>`
	good := block("Alice", "ok", "Mar 5, 2023 2:15 pm")

	blocks := ExtractBlocks(page(good, broken))
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if !strings.Contains(blocks[0], "Alice") {
		t.Errorf("unexpected block %q", blocks[0])
	}
}

func TestExtractBlocks_EmptyTimestamp(t *testing.T) {
	blocks := ExtractBlocks(page(block("Alice", "hi", "")))
	if len(blocks) != 0 {
		t.Errorf("got %d blocks, want 0", len(blocks))
	}
}

func TestExtractBlocks_NoMarkup(t *testing.T) {
	if blocks := ExtractBlocks("not html at all"); blocks != nil {
		t.Errorf("got %v, want nil", blocks)
	}
}

func TestScanBlocks_Order(t *testing.T) {
	var senders []string
	html := page(
		block("One", "a", "Mar 3, 2023 1:00 pm"),
		block("Two", "b", "Mar 2, 2023 1:00 pm"),
		block("Three", "c", "Mar 1, 2023 1:00 pm"),
	)
	ScanBlocks(html, func(b string) {
		senders = append(senders, senderPattern.FindStringSubmatch(b)[1])
	})
	want := []string{"One", "Two", "Three"}
	if strings.Join(senders, ",") != strings.Join(want, ",") {
		t.Errorf("senders = %v, want %v", senders, want)
	}
}
