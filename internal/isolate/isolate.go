// Package isolate rewrites message archives so they contain only video call entries.
package isolate

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/aThornes/instagram-stats/internal/source"
)

// ErrNoCallEntries is returned when an archive holds no call start or end entries.
var ErrNoCallEntries = errors.New("no video chat entries found")

// ErrOverlappingDirs is returned by Dir when the output directory is, contains, or sits
// inside the message directory.
var ErrOverlappingDirs = errors.New("output directory overlaps message directory")

const (
	phraseCallStart = "started a video chat"
	phraseCallEnd   = "Video chat ended"
)

// containerSelectors are tried in order to find the element that holds the messages.
var containerSelectors = []func(*goquery.Document) *goquery.Selection{
	func(d *goquery.Document) *goquery.Selection { return d.Find(`div[role="main"]`).First() },
	func(d *goquery.Document) *goquery.Selection { return d.Find("div._a6-g").First() },
	func(d *goquery.Document) *goquery.Selection { return d.Find("div.pam").First().Parent() },
	func(d *goquery.Document) *goquery.Selection { return d.Find("body").First() },
}

func isCallEntry(_ int, s *goquery.Selection) bool {
	text := s.Text()
	return strings.Contains(text, phraseCallStart) || strings.Contains(text, phraseCallEnd)
}

// Isolate parses an archive and returns it re-serialized with the message container
// holding only the call entries, in their original order.
func Isolate(html []byte) ([]byte, int, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, 0, fmt.Errorf("parse html: %w", err)
	}

	calls := doc.Find("div.pam").FilterFunction(isCallEntry).Clone()
	if calls.Length() == 0 {
		return nil, 0, ErrNoCallEntries
	}

	var container *goquery.Selection
	for _, find := range containerSelectors {
		if container = find(doc); container.Length() > 0 {
			break
		}
	}

	container.Empty()
	container.AppendSelection(calls)

	out, err := doc.Html()
	if err != nil {
		return nil, 0, fmt.Errorf("render html: %w", err)
	}
	return []byte(out), calls.Length(), nil
}

// File isolates the call entries of src into dst and returns how many were kept.
func File(src, dst string) (int, error) {
	data, err := os.ReadFile(src) //nolint:gosec // paths come from the archive scan
	if err != nil {
		return 0, fmt.Errorf("could not read file %s: %w", src, err)
	}

	out, n, err := Isolate(data)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return 0, fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
	}
	if err := os.WriteFile(dst, out, 0o600); err != nil {
		return 0, fmt.Errorf("writing %s: %w", dst, err)
	}
	return n, nil
}

// Summary counts the outcome of a directory run.
type Summary struct {
	Files   int
	Written int
	Skipped int
	Calls   int
}

// Dir replaces dstDir with an isolated copy of every archive under srcDir, keeping each
// file's relative path. Files that cannot be read or hold no calls are logged and skipped.
func Dir(srcDir, dstDir string) (Summary, error) {
	var sum Summary

	if err := checkDisjoint(srcDir, dstDir); err != nil {
		return sum, err
	}

	files, err := source.ScanDir(srcDir)
	if err != nil {
		return sum, fmt.Errorf("scanning %s: %w", srcDir, err)
	}

	if err := os.RemoveAll(dstDir); err != nil {
		return sum, fmt.Errorf("clearing %s: %w", dstDir, err)
	}
	if err := os.MkdirAll(dstDir, 0o750); err != nil {
		return sum, fmt.Errorf("creating %s: %w", dstDir, err)
	}

	sum.Files = len(files)
	for _, f := range files {
		dst := filepath.Join(dstDir, f.RelPath)
		n, err := File(f.Path, dst)
		if err != nil {
			sum.Skipped++
			log.Warn().Err(err).Str("file", f.RelPath).Msg("skipping archive")
			continue
		}
		sum.Written++
		sum.Calls += n
		log.Info().Str("file", f.RelPath).Int("entries", n).Str("out", dst).Msg("isolated video chat entries")
	}
	return sum, nil
}

// checkDisjoint refuses a dstDir that would take srcDir with it when wiped, or that
// would be walked as input.
func checkDisjoint(srcDir, dstDir string) error {
	src, err := filepath.Abs(srcDir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", srcDir, err)
	}
	dst, err := filepath.Abs(dstDir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dstDir, err)
	}
	if within(src, dst) || within(dst, src) {
		return fmt.Errorf("%w: %s and %s", ErrOverlappingDirs, dstDir, srcDir)
	}
	return nil
}

// within reports whether path is dir or lies beneath it. Both must be absolute.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
