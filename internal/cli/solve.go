package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/tessera/internal/archive"
	"github.com/roach88/tessera/internal/search"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	Order         string
	MaxSolutions  int
	ProgressEvery int64
	Database      string

	// TokenGenerator allows overriding the run token generator (for
	// testing). If nil, defaults to UUIDv7Generator.
	TokenGenerator archive.RunTokenGenerator
}

// SolveReport is the JSON payload for a completed solve.
type SolveReport struct {
	Puzzle    string           `json:"puzzle"`
	Order     string           `json:"order"`
	Solutions []SolutionRecord `json:"solutions"`
	Explored  int64            `json:"explored"`
	Exhausted bool             `json:"exhausted"`
	RunID     string           `json:"run_id,omitempty"`
}

// SolutionRecord is one emitted solution in a SolveReport.
type SolutionRecord struct {
	Board    []string `json:"board"`
	Explored int64    `json:"explored"`
	Queued   int      `json:"queued"`
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Enumerate tilings of a puzzle",
		Long: `Enumerate every valid tiling of a puzzle.

The puzzle argument is a YAML definition path or a builtin name;
it defaults to the builtin "ultimate" 4x4 puzzle. Depth-first order
keeps the frontier small and finds solutions quickly; breadth-first
order queues the entire shallower tree first and is only practical
for small boards.

Example:
  tessera solve --order dfs --max-solutions 1
  tessera solve ./puzzles/custom.yaml --order bfs
  tessera solve --db ./runs.db example-2x2`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			return runSolve(opts, arg, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Order, "order", "dfs", "exploration order (dfs|bfs)")
	cmd.Flags().IntVar(&opts.MaxSolutions, "max-solutions", 0, "stop after this many solutions (0 = enumerate all)")
	cmd.Flags().Int64Var(&opts.ProgressEvery, "progress-every", search.DefaultProgressInterval, "log progress every N explored states")
	cmd.Flags().StringVar(&opts.Database, "db", "", "archive the run to this SQLite database")

	return cmd
}

func runSolve(opts *SolveOptions, arg string, cmd *cobra.Command) error {
	configureLogging(opts.Verbose)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()

	def, err := loadDefinition(arg)
	if err != nil {
		return reportError(opts.RootOptions, out, ExitCommandError,
			"puzzle_load_failed", "failed to load puzzle", err)
	}

	order, err := search.ParseOrder(opts.Order)
	if err != nil {
		return reportError(opts.RootOptions, out, ExitCommandError,
			"invalid_order", "invalid --order", err)
	}

	pairing, err := def.Pairing()
	if err != nil {
		return reportError(opts.RootOptions, out, ExitCommandError,
			"invalid_alphabet", "invalid puzzle alphabet", err)
	}
	pool, err := def.Pool()
	if err != nil {
		return reportError(opts.RootOptions, out, ExitCommandError,
			"invalid_tiles", "invalid puzzle inventory", err)
	}
	if len(pool) != def.Cells() {
		slog.Warn("tile count does not match board cells; no complete tiling is possible",
			"tiles", len(pool), "cells", def.Cells())
	}

	// Progress goes to stderr via slog so stdout stays a clean result
	// stream.
	printer := message.NewPrinter(language.English)
	var progressExplored int64
	progress := func(p search.Progress) {
		progressExplored = p.Explored
		slog.Info("search progress",
			"explored", printer.Sprintf("%d", p.Explored),
			"queued", printer.Sprintf("%d", p.Queued),
			"best_remaining", len(p.Pool))
		if opts.Verbose {
			slog.Debug("best partial board", "board", "\n"+p.Best.String())
		}
	}

	searcher := search.New(pairing, def.Rows, def.Cols, pool,
		search.WithOrder(order),
		search.WithProgress(progress, opts.ProgressEvery),
	)

	// Optional archive.
	var (
		arch *archive.Archive
		run  archive.Run
	)
	if opts.Database != "" {
		arch, err = archive.Open(opts.Database)
		if err != nil {
			return reportError(opts.RootOptions, out, ExitCommandError,
				"archive_error", "failed to open archive", err)
		}
		defer func() {
			if closeErr := arch.Close(); closeErr != nil {
				slog.Error("error closing archive", "error", closeErr)
			}
		}()

		gen := opts.TokenGenerator
		if gen == nil {
			gen = archive.UUIDv7Generator{}
		}
		run, err = arch.BeginRun(ctx, gen, def.Name, order.String())
		if err != nil {
			return reportError(opts.RootOptions, out, ExitCommandError,
				"archive_error", "failed to begin archive run", err)
		}
		slog.Info("archiving run", "run_id", run.ID, "db", opts.Database)
	}

	slog.Info("starting search",
		"puzzle", def.Name, "order", order.String(),
		"rows", def.Rows, "cols", def.Cols, "tiles", len(pool))

	report := SolveReport{
		Puzzle:    def.Name,
		Order:     order.String(),
		Solutions: []SolutionRecord{},
		Exhausted: true,
		RunID:     run.ID,
	}

	for sol := range searcher.Solutions() {
		report.Explored = sol.Explored
		report.Solutions = append(report.Solutions, SolutionRecord{
			Board:    sol.Board.RowStrings(),
			Explored: sol.Explored,
			Queued:   sol.Queued,
		})

		if opts.Format == "text" {
			printer.Fprintf(out, "solution %d  (explored %d, queued %d)\n%s\n\n",
				len(report.Solutions), sol.Explored, sol.Queued, sol.Board)
		}

		if arch != nil {
			if err := arch.WriteSolution(ctx, archive.Solution{
				RunID:    run.ID,
				Ordinal:  int64(len(report.Solutions)),
				Board:    sol.Board.String(),
				Explored: sol.Explored,
				Queued:   int64(sol.Queued),
			}); err != nil {
				return reportError(opts.RootOptions, out, ExitCommandError,
					"archive_error", "failed to archive solution", err)
			}
		}

		if opts.MaxSolutions > 0 && len(report.Solutions) >= opts.MaxSolutions {
			report.Exhausted = false
			break
		}
	}

	// A solution-free search still explored states; the engine's
	// completion sample carries the final counter through the progress
	// callback.
	if progressExplored > report.Explored {
		report.Explored = progressExplored
	}

	if arch != nil {
		if err := arch.FinishRun(ctx, run.ID, report.Explored,
			int64(len(report.Solutions)), report.Exhausted); err != nil {
			return reportError(opts.RootOptions, out, ExitCommandError,
				"archive_error", "failed to finish archive run", err)
		}
	}

	slog.Info("search finished",
		"solutions", len(report.Solutions),
		"explored", report.Explored,
		"exhausted", report.Exhausted)

	noSolutions := len(report.Solutions) == 0 && report.Exhausted
	noSolutionsMsg := fmt.Sprintf(
		"no solutions: the %s state space was fully enumerated", def.Name)

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: out, Verbose: opts.Verbose}
		// One envelope either way; the report travels as error details
		// on a proven-empty enumeration.
		if noSolutions {
			_ = formatter.Error("no_solutions", noSolutionsMsg, report)
		} else if err := formatter.Success(report); err != nil {
			return WrapExitError(ExitCommandError, "failed to write report", err)
		}
	} else {
		printer.Fprintf(out, "found %d solutions (explored %d states, exhausted=%v)\n",
			len(report.Solutions), report.Explored, report.Exhausted)
	}

	if noSolutions {
		return NewExitError(ExitFailure, noSolutionsMsg)
	}
	return nil
}
