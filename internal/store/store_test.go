package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()
	mem := NewMemoryStore()

	sq, err := OpenSQLite(":memory:")
	require.NoError(t, err)

	file, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "runs.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = sq.Close()
		_ = file.Close()
	})
	return map[string]Store{"memory": mem, "sqlite-memory": sq, "sqlite-file": file}
}

func sampleRun() *Run {
	return &Run{
		Label:        "default",
		BetaBigram:   0.3,
		BetaTrigram:  1.5,
		Seed:         42,
		Rounds:       2,
		Wins:         1,
		TotalGuesses: 8,
		Exhausted:    0,
		Elapsed:      1500 * time.Millisecond,
		Results: []Round{
			{Target: "brace", Guesses: 2, Won: true, Sequence: []string{"trace", "brace"}},
			{Target: "zebra", Guesses: 6, Won: false, Sequence: []string{"trace", "about", "youth", "bench", "quiet", "music"}},
		},
	}
}

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			r := sampleRun()
			require.NoError(t, st.SaveRun(ctx, r))
			require.NotEmpty(t, r.ID)
			require.False(t, r.CreatedAt.IsZero())

			got, err := st.GetRun(ctx, r.ID)
			require.NoError(t, err)
			assert.Equal(t, r.ID, got.ID)
			assert.Equal(t, "default", got.Label)
			assert.Equal(t, uint64(42), got.Seed)
			assert.InDelta(t, 1.5, got.BetaTrigram, 1e-12)
			assert.Equal(t, 1500*time.Millisecond, got.Elapsed)
			assert.True(t, r.CreatedAt.Equal(got.CreatedAt))
			assert.Equal(t, r.Results, got.Results)
			assert.InDelta(t, 0.5, got.Accuracy(), 1e-12)
			assert.InDelta(t, 4.0, got.AvgGuesses(), 1e-12)
		})
	}
}

func TestGetMissing(t *testing.T) {
	ctx := context.Background()
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := st.GetRun(ctx, "nope")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestSaveReplacesRounds(t *testing.T) {
	ctx := context.Background()
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			r := sampleRun()
			require.NoError(t, st.SaveRun(ctx, r))

			r.Results = r.Results[:1]
			r.Rounds = 1
			require.NoError(t, st.SaveRun(ctx, r))

			got, err := st.GetRun(ctx, r.ID)
			require.NoError(t, err)
			assert.Len(t, got.Results, 1)
			assert.Equal(t, 1, got.Rounds)
		})
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			for i, label := range []string{"first", "second", "third"} {
				r := sampleRun()
				r.Label = label
				r.CreatedAt = base.Add(time.Duration(i) * time.Minute)
				require.NoError(t, st.SaveRun(ctx, r))
			}

			runs, err := st.ListRuns(ctx, 2)
			require.NoError(t, err)
			require.Len(t, runs, 2)
			assert.Equal(t, "third", runs[0].Label)
			assert.Equal(t, "second", runs[1].Label)
			assert.Nil(t, runs[0].Results)
		})
	}
}

func TestAccuracyEmptyRun(t *testing.T) {
	var r Run
	assert.Zero(t, r.Accuracy())
	assert.Zero(t, r.AvgGuesses())
}

func TestSQLiteCorruptCreatedAt(t *testing.T) {
	ctx := context.Background()
	st, err := OpenSQLite(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer st.Close()

	r := sampleRun()
	require.NoError(t, st.SaveRun(ctx, r))
	_, err = st.(*sqliteStore).db.ExecContext(ctx, `UPDATE runs SET created_at='yesterday' WHERE id=?`, r.ID)
	require.NoError(t, err)

	_, err = st.GetRun(ctx, r.ID)
	assert.ErrorContains(t, err, "created_at")
	_, err = st.ListRuns(ctx, 10)
	assert.ErrorContains(t, err, "created_at")
}

func TestSQLiteForeignKeysOnEveryConnection(t *testing.T) {
	ctx := context.Background()
	st, err := OpenSQLite(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer st.Close()
	db := st.(*sqliteStore).db

	// holding both forces two distinct pooled connections
	c1, err := db.Conn(ctx)
	require.NoError(t, err)
	defer c1.Close()
	c2, err := db.Conn(ctx)
	require.NoError(t, err)
	defer c2.Close()

	for _, c := range []*sql.Conn{c1, c2} {
		var on int
		require.NoError(t, c.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&on))
		assert.Equal(t, 1, on)
	}
}

func TestSQLiteDeleteCascadesRounds(t *testing.T) {
	ctx := context.Background()
	st, err := OpenSQLite(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer st.Close()
	db := st.(*sqliteStore).db

	r := sampleRun()
	require.NoError(t, st.SaveRun(ctx, r))
	_, err = db.ExecContext(ctx, `DELETE FROM runs WHERE id=?`, r.ID)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(1) FROM rounds WHERE run_id=?`, r.ID).Scan(&n))
	assert.Zero(t, n)
}
