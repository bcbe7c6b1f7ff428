package history

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresStore implements Store using PostgreSQL
type PostgresStore struct {
	sqlStore
}

// NewPostgresStore connects to dsn and applies migrations.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{sqlStore{db: db, postgres: true}}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id BIGSERIAL PRIMARY KEY,
			year INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			total_nanos DOUBLE PRECISION NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS run_timings (
			run_id BIGINT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			day INTEGER NOT NULL,
			part_1 TEXT,
			part_2 TEXT,
			total_nanos DOUBLE PRECISION NOT NULL,
			PRIMARY KEY (run_id, day)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_timings_day ON run_timings(day)`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}
