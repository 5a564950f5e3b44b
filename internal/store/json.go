package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aThornes/instagram-stats/internal/model"
)

// JSONFile stores the snapshot as a single JSON document. Dates are written in RFC 3339
// form and come back as time.Time on load.
type JSONFile struct {
	path string
}

// NewJSONFile returns a store backed by the file at path. The file is created on Save.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Path returns the cache file path.
func (j *JSONFile) Path() string {
	return j.path
}

// Load reads the snapshot. A missing file is a cache miss, not an error.
func (j *JSONFile) Load() (*model.AggregatedStats, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading cache: %w", err)
	}

	var stats model.AggregatedStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptCache, j.path, err)
	}
	if stats.MonthlyStats == nil {
		stats.MonthlyStats = make(model.MonthlyStats)
	}
	return &stats, nil
}

// Save writes the snapshot, creating the cache directory when needed.
func (j *JSONFile) Save(stats *model.AggregatedStats) error {
	if err := os.MkdirAll(filepath.Dir(j.path), 0o750); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encoding cache: %w", err)
	}

	tmp := j.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	return os.Rename(tmp, j.path)
}

// Clear deletes the cache file.
func (j *JSONFile) Clear() error {
	if err := os.Remove(j.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clearing cache: %w", err)
	}
	return nil
}

// Close is a no-op.
func (j *JSONFile) Close() error {
	return nil
}
