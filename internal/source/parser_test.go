package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := writeArchive(t, dir, "message_1.html", page(
		block("Alice", "Video chat ended<br>Duration: 5 minutes", "Mar 6, 2023 3:00 pm"),
		block("Bob", "hello", "Mar 5, 2023 2:15 pm"),
		block("Alice", "Alice started a video chat", "Mar 5, 2023 1:00 pm"),
	))

	result := ParseFile(DiscoveredFile{Path: path, Name: "message_1.html"}, testClassifier)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.Blocks != 3 || len(result.Messages) != 3 {
		t.Fatalf("Blocks = %d, Messages = %d, want 3, 3", result.Blocks, len(result.Messages))
	}
	if !result.Messages[0].IsCallEnd || result.Messages[0].DurationSecs != 300 {
		t.Errorf("Messages[0] = %+v, want 5 minute call end", result.Messages[0])
	}
	if result.Messages[1].Sender != "Bob" {
		t.Errorf("Messages[1].Sender = %q, want Bob", result.Messages[1].Sender)
	}
	if !result.Messages[2].IsCallStart {
		t.Errorf("Messages[2] = %+v, want call start", result.Messages[2])
	}
}

func TestParseFile_EmptyFile(t *testing.T) {
	path := writeArchive(t, t.TempDir(), "message_1.html", "")
	result := ParseFile(DiscoveredFile{Path: path, Name: "message_1.html"}, testClassifier)
	if result.Err != nil {
		t.Fatalf("unexpected error on empty file: %v", result.Err)
	}
	if result.Blocks != 0 || len(result.Messages) != 0 {
		t.Error("expected no messages for empty file")
	}
}

func TestParseFile_Unreadable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "message_2.html")
	if err := os.Symlink(filepath.Join(dir, "missing.html"), path); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	result := ParseFile(DiscoveredFile{Path: path, Name: "message_2.html"}, testClassifier)
	if result.Err == nil {
		t.Fatal("expected error for dangling symlink")
	}
}
