package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrRunNotFound is returned when a run id has no archive row.
var ErrRunNotFound = errors.New("archive: run not found")

// ListRuns returns all runs, newest first (UUIDv7 ids sort by time).
func (a *Archive) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT id, puzzle, search_order, started_at, finished_at, explored, solutions, exhausted
		FROM runs
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// GetRun returns one run by id.
func (a *Archive) GetRun(ctx context.Context, id string) (Run, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT id, puzzle, search_order, started_at, finished_at, explored, solutions, exhausted
		FROM runs
		WHERE id = ?
	`, id)
	if err != nil {
		return Run{}, fmt.Errorf("get run: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return Run{}, fmt.Errorf("get run: %w", err)
		}
		return Run{}, fmt.Errorf("get run %s: %w", id, ErrRunNotFound)
	}
	run, err := scanRun(rows)
	if err != nil {
		return Run{}, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// RunSolutions returns a run's archived solutions in emission order.
func (a *Archive) RunSolutions(ctx context.Context, runID string) ([]Solution, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT run_id, ordinal, board, explored, queued
		FROM solutions
		WHERE run_id = ?
		ORDER BY ordinal
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("run solutions: %w", err)
	}
	defer rows.Close()

	var sols []Solution
	for rows.Next() {
		var s Solution
		if err := rows.Scan(&s.RunID, &s.Ordinal, &s.Board, &s.Explored, &s.Queued); err != nil {
			return nil, fmt.Errorf("run solutions: %w", err)
		}
		sols = append(sols, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("run solutions: %w", err)
	}
	return sols, nil
}

func scanRun(rows *sql.Rows) (Run, error) {
	var (
		run       Run
		started   string
		finished  sql.NullString
		exhausted int
	)
	if err := rows.Scan(&run.ID, &run.Puzzle, &run.Order, &started, &finished, &run.Explored, &run.Solutions, &exhausted); err != nil {
		return Run{}, err
	}

	t, err := time.Parse(time.RFC3339Nano, started)
	if err != nil {
		return Run{}, fmt.Errorf("parse started_at: %w", err)
	}
	run.StartedAt = t

	if finished.Valid {
		t, err := time.Parse(time.RFC3339Nano, finished.String)
		if err != nil {
			return Run{}, fmt.Errorf("parse finished_at: %w", err)
		}
		run.FinishedAt = t
	}
	run.Exhausted = exhausted != 0
	return run, nil
}
