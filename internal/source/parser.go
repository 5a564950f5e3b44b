// Package source discovers and parses exported Instagram message archives.
package source

import (
	"fmt"
	"os"
)

// ParseFile reads one archive and classifies every message block in it, in document
// order. The raw HTML is released once the scan finishes; only the compact records are
// kept.
func ParseFile(df DiscoveredFile, c Classifier) ParseResult {
	data, err := os.ReadFile(df.Path)
	if err != nil {
		return ParseResult{File: df, Err: fmt.Errorf("could not read file %s: %w", df.Name, err)}
	}

	result := ParseResult{File: df}
	ScanBlocks(string(data), func(block string) {
		result.Blocks++
		result.Messages = append(result.Messages, c.Classify(block))
	})

	return result
}
