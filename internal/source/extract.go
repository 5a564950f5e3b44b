package source

import "regexp"

// blockPattern matches one message container: the "pam" div through the close of its
// nested timestamp div.
var blockPattern = regexp.MustCompile(`<div class="pam [^"]*">[\s\S]*?<div class="_3-94 _a6-o">[^<]+</div></div>`)

// ScanBlocks makes a single forward pass over html and calls fn for every message block,
// in document order. Matches never overlap; a message whose markup does not fit the
// pattern is skipped silently.
func ScanBlocks(html string, fn func(block string)) {
	pos := 0
	for pos < len(html) {
		loc := blockPattern.FindStringIndex(html[pos:])
		if loc == nil {
			return
		}
		fn(html[pos+loc[0] : pos+loc[1]])
		pos += loc[1]
	}
}

// ExtractBlocks returns every message block of html in document order. Exports list the
// most recent message first; the order is not changed here.
func ExtractBlocks(html string) []string {
	var blocks []string
	ScanBlocks(html, func(block string) {
		blocks = append(blocks, block)
	})
	return blocks
}
