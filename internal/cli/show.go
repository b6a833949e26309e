package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/tessera/internal/archive"
)

// ShowOptions holds flags for the show command.
type ShowOptions struct {
	*RootOptions
	Database string
}

// ShowReport is the JSON payload for an archived run replay.
type ShowReport struct {
	Run       RunRecord        `json:"run"`
	Solutions []SolutionRecord `json:"solutions"`
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShowOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Replay an archived run's solutions",
		Long: `Replay an archived run: its metadata and every stored solution in
emission order, without re-searching.

Example:
  tessera show --db ./runs.db 01920b7e-...`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to the archive database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runShow(opts *ShowOptions, runID string, cmd *cobra.Command) error {
	configureLogging(opts.Verbose)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()

	arch, err := archive.Open(opts.Database)
	if err != nil {
		return reportError(opts.RootOptions, out, ExitCommandError,
			"archive_error", "failed to open archive", err)
	}
	defer arch.Close()

	run, err := arch.GetRun(ctx, runID)
	if err != nil {
		if errors.Is(err, archive.ErrRunNotFound) {
			return reportError(opts.RootOptions, out, ExitFailure,
				"run_not_found", "run not found", err)
		}
		return reportError(opts.RootOptions, out, ExitCommandError,
			"archive_error", "failed to read run", err)
	}

	sols, err := arch.RunSolutions(ctx, runID)
	if err != nil {
		return reportError(opts.RootOptions, out, ExitCommandError,
			"archive_error", "failed to read solutions", err)
	}

	report := ShowReport{
		Run: RunRecord{
			ID:        run.ID,
			Puzzle:    run.Puzzle,
			Order:     run.Order,
			StartedAt: run.StartedAt.Format(time.RFC3339),
			Finished:  !run.FinishedAt.IsZero(),
			Explored:  run.Explored,
			Solutions: run.Solutions,
			Exhausted: run.Exhausted,
		},
		Solutions: make([]SolutionRecord, len(sols)),
	}
	for i, s := range sols {
		report.Solutions[i] = SolutionRecord{
			Board:    strings.Split(s.Board, "\n"),
			Explored: s.Explored,
			Queued:   int(s.Queued),
		}
	}

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: out, Verbose: opts.Verbose}
		return formatter.Success(report)
	}

	fmt.Fprintf(out, "run %s: %s/%s, %d solutions, %d explored\n",
		report.Run.ID, report.Run.Puzzle, report.Run.Order,
		report.Run.Solutions, report.Run.Explored)
	for i, s := range report.Solutions {
		fmt.Fprintf(out, "solution %d  (explored %d, queued %d)\n%s\n\n",
			i+1, s.Explored, s.Queued, strings.Join(s.Board, "\n"))
	}
	return nil
}
