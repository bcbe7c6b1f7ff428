package history

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"aoc/internal/benchmark"
	"aoc/internal/day"
)

// sqlStore holds the queries shared by the SQLite and Postgres stores.
// Queries are written with "?" placeholders and rebound per dialect.
type sqlStore struct {
	db       *sql.DB
	postgres bool
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}

func (s *sqlStore) rebind(query string) string {
	if !s.postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SaveRun stores a run and its timings in one transaction.
func (s *sqlStore) SaveRun(ctx context.Context, run Run) (int64, error) {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	total := benchmark.Timings{Data: run.Timings}.TotalMillis() * 1e6

	var id int64
	if s.postgres {
		err = tx.QueryRowContext(ctx,
			`INSERT INTO runs (year, created_at, total_nanos) VALUES ($1, $2, $3) RETURNING id`,
			run.Year, run.CreatedAt.UTC(), total).Scan(&id)
	} else {
		var res sql.Result
		res, err = tx.ExecContext(ctx,
			`INSERT INTO runs (year, created_at, total_nanos) VALUES (?, ?, ?)`,
			run.Year, run.CreatedAt.UTC(), total)
		if err == nil {
			id, err = res.LastInsertId()
		}
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	insert := s.rebind(`INSERT INTO run_timings (run_id, day, part_1, part_2, total_nanos) VALUES (?, ?, ?, ?, ?)`)
	for _, t := range run.Timings {
		if _, err := tx.ExecContext(ctx, insert, id, t.Day.Int(), nullString(t.Part1), nullString(t.Part2), t.TotalNanos); err != nil {
			return 0, fmt.Errorf("failed to insert timing for day %s: %w", t.Day, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return id, nil
}

// Runs returns the most recent runs, newest first.
func (s *sqlStore) Runs(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		s.rebind(`SELECT id, year, created_at FROM runs ORDER BY id DESC LIMIT ?`), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Year, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for i := range runs {
		timings, err := s.runTimings(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Timings = timings
	}
	return runs, nil
}

func (s *sqlStore) runTimings(ctx context.Context, runID int64) ([]benchmark.Timing, error) {
	rows, err := s.db.QueryContext(ctx,
		s.rebind(`SELECT day, part_1, part_2, total_nanos FROM run_timings WHERE run_id = ? ORDER BY day`), runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query timings of run %d: %w", runID, err)
	}
	defer rows.Close()

	var timings []benchmark.Timing
	for rows.Next() {
		t, err := scanTiming(rows)
		if err != nil {
			return nil, err
		}
		timings = append(timings, t)
	}
	return timings, rows.Err()
}

// DayHistory returns a day's recorded timings, newest first.
func (s *sqlStore) DayHistory(ctx context.Context, d day.Day, limit int) ([]DayEntry, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT r.id, r.created_at, t.day, t.part_1, t.part_2, t.total_nanos
		FROM run_timings t JOIN runs r ON r.id = t.run_id
		WHERE t.day = ?
		ORDER BY r.id DESC
		LIMIT ?`), d.Int(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history of day %s: %w", d, err)
	}
	defer rows.Close()

	var entries []DayEntry
	for rows.Next() {
		var (
			e            DayEntry
			dayNum       int
			part1, part2 sql.NullString
		)
		if err := rows.Scan(&e.RunID, &e.CreatedAt, &dayNum, &part1, &part2, &e.Timing.TotalNanos); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		if e.Timing.Day, err = day.New(dayNum); err != nil {
			return nil, err
		}
		e.Timing.Part1 = stringPtr(part1)
		e.Timing.Part2 = stringPtr(part2)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanTiming(rows *sql.Rows) (benchmark.Timing, error) {
	var (
		t            benchmark.Timing
		dayNum       int
		part1, part2 sql.NullString
	)
	if err := rows.Scan(&dayNum, &part1, &part2, &t.TotalNanos); err != nil {
		return t, fmt.Errorf("failed to scan timing: %w", err)
	}
	d, err := day.New(dayNum)
	if err != nil {
		return t, err
	}
	t.Day = d
	t.Part1 = stringPtr(part1)
	t.Part2 = stringPtr(part2)
	return t, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
