package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc/internal/benchmark"
	"aoc/internal/day"
)

func strPtr(s string) *string {
	return &s
}

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "data", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_SaveAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := Run{
		Year:      2023,
		CreatedAt: time.Now().Add(-time.Hour),
		Timings: []benchmark.Timing{
			{Day: 1, Part1: strPtr("1.0ms"), Part2: strPtr("2.0ms"), TotalNanos: 3e6},
			{Day: 2, Part1: strPtr("5.0µs"), TotalNanos: 5e3},
		},
	}
	id1, err := store.SaveRun(ctx, first)
	require.NoError(t, err)
	assert.Greater(t, id1, int64(0))

	second := Run{
		Year:    2023,
		Timings: []benchmark.Timing{{Day: 1, Part1: strPtr("0.5ms"), Part2: strPtr("1.5ms"), TotalNanos: 2e6}},
	}
	id2, err := store.SaveRun(ctx, second)
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	runs, err := store.Runs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first
	assert.Equal(t, id2, runs[0].ID)
	assert.Equal(t, 2023, runs[0].Year)
	assert.False(t, runs[0].CreatedAt.IsZero())
	require.Len(t, runs[1].Timings, 2)
	assert.Equal(t, day.MustNew(2), runs[1].Timings[1].Day)
	assert.Nil(t, runs[1].Timings[1].Part2)
	assert.Equal(t, "5.0µs", *runs[1].Timings[1].Part1)
	assert.InDelta(t, 3.005, runs[1].TotalMillis(), 1e-9)

	limited, err := store.Runs(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSQLiteStore_DayHistory(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, nanos := range []float64{300, 200, 100} {
		_, err := store.SaveRun(ctx, Run{Year: 2022, Timings: []benchmark.Timing{
			{Day: 5, Part1: strPtr("x"), TotalNanos: nanos},
			{Day: 6, TotalNanos: 1},
		}})
		require.NoError(t, err)
	}

	entries, err := store.DayHistory(ctx, day.MustNew(5), 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 100.0, entries[0].Timing.TotalNanos)
	assert.Equal(t, 300.0, entries[2].Timing.TotalNanos)
	assert.Equal(t, day.MustNew(5), entries[0].Timing.Day)

	none, err := store.DayHistory(ctx, day.MustNew(7), 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	_, err = store.SaveRun(context.Background(), Run{Year: 2020})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.Runs(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
	assert.Empty(t, runs[0].Timings)
}

func TestRebind(t *testing.T) {
	pg := &sqlStore{postgres: true}
	assert.Equal(t, "SELECT a FROM t WHERE x = $1 AND y = $2", pg.rebind("SELECT a FROM t WHERE x = ? AND y = ?"))

	lite := &sqlStore{}
	assert.Equal(t, "x = ?", lite.rebind("x = ?"))
}
