package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// block renders one message container the way exported archives lay it out.
func block(sender, content, ts string) string {
	return fmt.Sprintf(
		`<div class="pam _3-95 _2ph- _a6-g uiBoxWhite noborder">`+
			`<h2 class="_3-95 _2pim _a6-h _a6-i">%s</h2>`+
			`<div class="_3-95 _a6-p"><div><div></div><div>%s</div><div></div><div></div></div></div>`+
			`<div class="_3-94 _a6-o">%s</div></div>`,
		sender, content, ts)
}

// page wraps blocks in the surrounding document markup.
func page(blocks ...string) string {
	return `<html><head><title>Alice</title></head><body><div class="_a705"><div role="main">` +
		strings.Join(blocks, "") +
		`</div></div></body></html>`
}

// writeArchive creates rel under dir with the given contents.
func writeArchive(t *testing.T, dir, rel, contents string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
