package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aThornes/instagram-stats/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache is a SQLite-backed Store. The snapshot row marks a complete save; without it
// Load reports a miss.
type Cache struct {
	db   *sql.DB
	path string
}

// OpenCache opens or creates the cache database at dbPath.
func OpenCache(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db, path: dbPath}, nil
}

// Path returns the database file path.
func (c *Cache) Path() string {
	return c.path
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Load reads the snapshot and every monthly row.
func (c *Cache) Load() (*model.AggregatedStats, error) {
	var (
		startStr, endStr sql.NullString
		stats            model.AggregatedStats
	)
	err := c.db.QueryRow("SELECT start_date, end_date, total_message_count FROM snapshot WHERE id = 1").
		Scan(&startStr, &endStr, &stats.TotalMessageCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	if stats.StartDate, err = parseDate(startStr); err != nil {
		return nil, err
	}
	if stats.EndDate, err = parseDate(endStr); err != nil {
		return nil, err
	}

	rows, err := c.db.Query(`SELECT
		year, month, messages, reels, reactions, call_minutes,
		call_count, call_starts, total_content_length
		FROM monthly_stats`)
	if err != nil {
		return nil, fmt.Errorf("reading monthly stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	stats.MonthlyStats = make(model.MonthlyStats)
	for rows.Next() {
		var st model.MonthlyStat
		err := rows.Scan(&st.Year, &st.Month, &st.Messages, &st.Reels, &st.Reactions,
			&st.CallMinutes, &st.CallCount, &st.CallStarts, &st.TotalContentLength)
		if err != nil {
			return nil, err
		}
		stats.MonthlyStats[st.Key()] = st
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &stats, nil
}

// Save replaces the stored snapshot in one transaction.
func (c *Cache) Save(stats *model.AggregatedStats) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM monthly_stats"); err != nil {
		return err
	}

	for k, st := range stats.MonthlyStats {
		_, err = tx.Exec(`INSERT INTO monthly_stats
			(year, month, messages, reels, reactions, call_minutes,
			 call_count, call_starts, total_content_length)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			k.Year, k.Month, st.Messages, st.Reels, st.Reactions, st.CallMinutes,
			st.CallCount, st.CallStarts, st.TotalContentLength,
		)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(`INSERT OR REPLACE INTO snapshot
		(id, start_date, end_date, total_message_count, saved_at)
		VALUES (1, ?, ?, ?, ?)`,
		formatDate(stats.StartDate), formatDate(stats.EndDate), stats.TotalMessageCount,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Clear drops the snapshot and every monthly row.
func (c *Cache) Clear() error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM snapshot"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM monthly_stats"); err != nil {
		return err
	}
	return tx.Commit()
}

func formatDate(t time.Time) sql.NullString {
	if t.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339Nano), Valid: true}
}

func parseDate(s sql.NullString) (time.Time, error) {
	if !s.Valid || s.String == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s.String)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: snapshot date %q: %v", ErrCorruptCache, s.String, err)
	}
	return t, nil
}
