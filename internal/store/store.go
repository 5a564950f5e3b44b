// Package store persists the merged aggregate between runs.
package store

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/aThornes/instagram-stats/internal/model"
)

// ErrCorruptCache is returned when a cache artifact exists but cannot be decoded.
var ErrCorruptCache = errors.New("corrupt stats cache")

// Store loads and saves the aggregated stats snapshot.
type Store interface {
	// Load returns the cached snapshot, or nil when nothing has been cached.
	Load() (*model.AggregatedStats, error)
	// Save replaces the cached snapshot.
	Save(stats *model.AggregatedStats) error
	// Clear removes the cached snapshot so the next Load misses.
	Clear() error
	// Path names the cache artifact for log output.
	Path() string
	Close() error
}

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Open returns the store for backend rooted at dir.
func Open(backend, dir string) (Store, error) {
	switch backend {
	case "", BackendJSON:
		return NewJSONFile(filepath.Join(dir, "aggregatedStats.json")), nil
	case BackendSQLite:
		return OpenCache(filepath.Join(dir, "aggregatedStats.db"))
	default:
		return nil, fmt.Errorf("unknown cache backend %q", backend)
	}
}
