// Package storage provides SQLite-based persistence for level progress
// and level clear records.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultProfile is used for local play.
const DefaultProfile = "local"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ClearEntry represents one completed level.
type ClearEntry struct {
	ID        int64
	Profile   string
	Mode      string
	Level     int
	Shards    int
	SimMS     float64
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS progress (
			profile TEXT NOT NULL,
			mode TEXT NOT NULL,
			level INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (profile, mode)
		);

		CREATE TABLE IF NOT EXISTS clears (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile TEXT NOT NULL,
			mode TEXT NOT NULL,
			level INTEGER NOT NULL,
			shards INTEGER NOT NULL DEFAULT 0,
			sim_ms REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_clears_mode ON clears(mode);
		CREATE INDEX IF NOT EXISTS idx_clears_best ON clears(mode, level DESC, sim_ms ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveProgress records the level a profile has reached in a mode,
// replacing any earlier value.
func (s *Store) SaveProgress(profile, mode string, level int) error {
	_, err := s.db.Exec(
		`INSERT INTO progress (profile, mode, level) VALUES (?, ?, ?)
		 ON CONFLICT(profile, mode) DO UPDATE SET level = excluded.level, updated_at = CURRENT_TIMESTAMP`,
		profile, mode, level,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}
	return nil
}

// LoadProgress returns the stored level for a profile and mode.
// ok is false when nothing has been stored yet.
func (s *Store) LoadProgress(profile, mode string) (level int, ok bool, err error) {
	err = s.db.QueryRow(
		"SELECT level FROM progress WHERE profile = ? AND mode = ?",
		profile, mode,
	).Scan(&level)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot load progress: %w", err)
	}
	return level, true, nil
}

// ClearProgress deletes the stored level for a profile and mode.
func (s *Store) ClearProgress(profile, mode string) error {
	_, err := s.db.Exec("DELETE FROM progress WHERE profile = ? AND mode = ?", profile, mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear progress: %w", err)
	}
	return nil
}

// SaveClear records a completed level.
// Returns the ID of the inserted record.
func (s *Store) SaveClear(profile, mode string, level, shards int, simMS float64) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO clears (profile, mode, level, shards, sim_ms) VALUES (?, ?, ?, ?, ?)",
		profile, mode, level, shards, simMS,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save clear: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopClears retrieves the best N clears for a mode: deepest level first,
// then fastest simulated time.
func (s *Store) TopClears(mode string, limit int) ([]ClearEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, profile, mode, level, shards, sim_ms, created_at
		 FROM clears
		 WHERE mode = ?
		 ORDER BY level DESC, sim_ms ASC, id ASC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query clears: %w", err)
	}
	defer rows.Close()

	var entries []ClearEntry
	for rows.Next() {
		var e ClearEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Profile, &e.Mode, &e.Level, &e.Shards, &e.SimMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearRecords deletes all clears for a mode.
func (s *Store) ClearRecords(mode string) error {
	_, err := s.db.Exec("DELETE FROM clears WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear records: %w", err)
	}
	return nil
}

// ModeStats contains aggregated statistics for a mode.
type ModeStats struct {
	Mode         string
	Clears       int
	HighestLevel int
	TotalShards  int64
	LastPlayed   time.Time
}

// GetModeStats retrieves aggregated statistics for a mode.
func (s *Store) GetModeStats(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(level), 0), COALESCE(SUM(shards), 0), MAX(created_at)
		 FROM clears WHERE mode = ?`,
		mode,
	).Scan(&stats.Clears, &stats.HighestLevel, &stats.TotalShards, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
