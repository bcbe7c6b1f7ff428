package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	sqlStore
}

// NewSQLiteStore opens the database at path, creating it and its parent
// directory if needed, and applies migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." && path != ":memory:" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{sqlStore{db: db}}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		year INTEGER NOT NULL,
		created_at DATETIME NOT NULL,
		total_nanos REAL NOT NULL
	);
	CREATE TABLE IF NOT EXISTS run_timings (
		run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		day INTEGER NOT NULL,
		part_1 TEXT,
		part_2 TEXT,
		total_nanos REAL NOT NULL,
		PRIMARY KEY (run_id, day)
	);
	CREATE INDEX IF NOT EXISTS idx_run_timings_day ON run_timings(day);
	`
	_, err := s.db.Exec(query)
	return err
}
