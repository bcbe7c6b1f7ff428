package history

import (
	"context"
	"time"

	"aoc/internal/benchmark"
	"aoc/internal/day"
)

// Store records benchmark runs.
type Store interface {
	Close() error
	SaveRun(ctx context.Context, run Run) (int64, error)
	Runs(ctx context.Context, limit int) ([]Run, error)
	DayHistory(ctx context.Context, d day.Day, limit int) ([]DayEntry, error)
}

// Run is one timed invocation and the timings it produced.
type Run struct {
	ID        int64              `json:"id"`
	Year      int                `json:"year"`
	CreatedAt time.Time          `json:"created_at"`
	Timings   []benchmark.Timing `json:"timings"`
}

// TotalMillis sums the run's timings.
func (r Run) TotalMillis() float64 {
	return benchmark.Timings{Data: r.Timings}.TotalMillis()
}

// DayEntry is a day's timing as recorded by one run.
type DayEntry struct {
	RunID     int64
	CreatedAt time.Time
	Timing    benchmark.Timing
}
