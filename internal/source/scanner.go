package source

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	archiveExt      = ".html"
	archiveFragment = "message"
)

// IsArchiveName reports whether a file name looks like an exported message archive:
// an .html file whose name contains "message".
func IsArchiveName(name string) bool {
	return strings.HasSuffix(name, archiveExt) && strings.Contains(name, archiveFragment)
}

// ScanDir walks the message directory and discovers every archive file.
// A missing directory yields no files and no error. Results are in lexical path order.
func ScanDir(root string) ([]DiscoveredFile, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	var files []DiscoveredFile

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // intentionally skip unreadable entries
		}
		if d.IsDir() {
			return nil
		}

		name := d.Name()
		if !IsArchiveName(name) {
			return nil
		}

		rel, _ := filepath.Rel(root, path)
		conv := filepath.Dir(rel)
		if conv == "." {
			conv = ""
		}

		files = append(files, DiscoveredFile{
			Path:         path,
			RelPath:      rel,
			Name:         name,
			Conversation: filepath.ToSlash(conv),
		})
		return nil
	})

	return files, err
}

// CountConversations returns the number of distinct conversation directories.
func CountConversations(files []DiscoveredFile) int {
	seen := make(map[string]struct{})
	for _, f := range files {
		seen[f.Conversation] = struct{}{}
	}
	return len(seen)
}
