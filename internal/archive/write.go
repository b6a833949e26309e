package archive

import (
	"context"
	"fmt"
	"time"
)

// Run is one archived search run.
type Run struct {
	ID         string
	Puzzle     string
	Order      string
	StartedAt  time.Time
	FinishedAt time.Time // zero while in flight
	Explored   int64
	Solutions  int64
	Exhausted  bool
}

// Solution is one archived emission.
type Solution struct {
	RunID    string
	Ordinal  int64
	Board    string // rendered rows, newline-joined
	Explored int64
	Queued   int64
}

// BeginRun inserts a new in-flight run row and returns it.
func (a *Archive) BeginRun(ctx context.Context, gen RunTokenGenerator, puzzle, order string) (Run, error) {
	run := Run{
		ID:        gen.Generate(),
		Puzzle:    puzzle,
		Order:     order,
		StartedAt: time.Now().UTC(),
	}

	_, err := a.db.ExecContext(ctx, `
		INSERT INTO runs (id, puzzle, search_order, started_at)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.Puzzle, run.Order, run.StartedAt.Format(time.RFC3339Nano))
	if err != nil {
		return Run{}, fmt.Errorf("begin run: %w", err)
	}
	return run, nil
}

// WriteSolution inserts one emitted solution.
// ON CONFLICT DO NOTHING keeps re-recorded ordinals idempotent.
func (a *Archive) WriteSolution(ctx context.Context, sol Solution) error {
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO solutions (run_id, ordinal, board, explored, queued)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`, sol.RunID, sol.Ordinal, sol.Board, sol.Explored, sol.Queued)
	if err != nil {
		return fmt.Errorf("write solution %d: %w", sol.Ordinal, err)
	}
	return nil
}

// FinishRun stamps the run's completion: final counters, whether the
// frontier was drained (exhausted) or iteration stopped early, and the
// finish time.
func (a *Archive) FinishRun(ctx context.Context, id string, explored, solutions int64, exhausted bool) error {
	res, err := a.db.ExecContext(ctx, `
		UPDATE runs
		SET finished_at = ?, explored = ?, solutions = ?, exhausted = ?
		WHERE id = ?
	`, time.Now().UTC().Format(time.RFC3339Nano), explored, solutions, boolToInt(exhausted), id)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("finish run: run %s not found", id)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
