package archive

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := Open(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.db")

	a, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, a.Close())

	// Re-opening applies schema again without error.
	a, err = Open(path)
	require.NoError(t, err)
	assert.NoError(t, a.Close())
}

func TestRunLifecycle(t *testing.T) {
	ctx := context.Background()
	a := openTestArchive(t)
	gen := NewFixedGenerator("run-1")

	run, err := a.BeginRun(ctx, gen, "ultimate", "dfs")
	require.NoError(t, err)
	assert.Equal(t, "run-1", run.ID)
	assert.False(t, run.StartedAt.IsZero())

	// In flight: listed with zero counters, no finish time.
	runs, err := a.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "ultimate", runs[0].Puzzle)
	assert.Equal(t, "dfs", runs[0].Order)
	assert.True(t, runs[0].FinishedAt.IsZero())
	assert.False(t, runs[0].Exhausted)

	require.NoError(t, a.WriteSolution(ctx, Solution{
		RunID:    run.ID,
		Ordinal:  1,
		Board:    "AACC BDDB",
		Explored: 17,
		Queued:   15,
	}))
	require.NoError(t, a.WriteSolution(ctx, Solution{
		RunID:    run.ID,
		Ordinal:  2,
		Board:    "AACC DDBB",
		Explored: 18,
		Queued:   15,
	}))

	require.NoError(t, a.FinishRun(ctx, run.ID, 80, 2, true))

	got, err := a.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(80), got.Explored)
	assert.Equal(t, int64(2), got.Solutions)
	assert.True(t, got.Exhausted)
	assert.False(t, got.FinishedAt.IsZero())
	assert.False(t, got.FinishedAt.Before(got.StartedAt))

	sols, err := a.RunSolutions(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, sols, 2)
	assert.Equal(t, int64(1), sols[0].Ordinal)
	assert.Equal(t, "AACC BDDB", sols[0].Board)
	assert.Equal(t, int64(17), sols[0].Explored)
	assert.Equal(t, int64(15), sols[0].Queued)
}

func TestWriteSolution_Idempotent(t *testing.T) {
	ctx := context.Background()
	a := openTestArchive(t)

	run, err := a.BeginRun(ctx, NewFixedGenerator("run-1"), "mini", "dfs")
	require.NoError(t, err)

	sol := Solution{RunID: run.ID, Ordinal: 1, Board: "AACC BDDB", Explored: 17, Queued: 15}
	require.NoError(t, a.WriteSolution(ctx, sol))
	require.NoError(t, a.WriteSolution(ctx, sol))

	sols, err := a.RunSolutions(ctx, run.ID)
	require.NoError(t, err)
	assert.Len(t, sols, 1)
}

func TestListRuns_NewestFirst(t *testing.T) {
	ctx := context.Background()
	a := openTestArchive(t)
	gen := NewFixedGenerator("run-a", "run-b")

	_, err := a.BeginRun(ctx, gen, "mini", "dfs")
	require.NoError(t, err)
	_, err = a.BeginRun(ctx, gen, "mini", "bfs")
	require.NoError(t, err)

	runs, err := a.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-b", runs[0].ID)
	assert.Equal(t, "run-a", runs[1].ID)
}

func TestGetRun_NotFound(t *testing.T) {
	a := openTestArchive(t)

	_, err := a.GetRun(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestFinishRun_NotFound(t *testing.T) {
	a := openTestArchive(t)

	err := a.FinishRun(context.Background(), "missing", 1, 0, false)
	assert.Error(t, err)
}

func TestFixedGenerator_ExhaustionPanics(t *testing.T) {
	gen := NewFixedGenerator("only")
	assert.Equal(t, "only", gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}

func TestUUIDv7Generator_UniqueAndSortable(t *testing.T) {
	gen := UUIDv7Generator{}
	a, b := gen.Generate(), gen.Generate()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}
