package source

import "github.com/aThornes/instagram-stats/internal/model"

// DiscoveredFile represents an exported message archive found during directory scanning.
type DiscoveredFile struct {
	Path         string
	RelPath      string // path relative to the scanned root
	Name         string // base file name, e.g. "message_1.html"
	Conversation string // parent directory relative to the root ("" for top-level files)
}

// ParseResult holds the output of parsing a single archive file.
type ParseResult struct {
	File     DiscoveredFile
	Messages []model.ClassifiedMessage
	Blocks   int
	Err      error
}
