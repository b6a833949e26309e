package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/tessera/internal/archive"
)

// RunsOptions holds flags for the runs command.
type RunsOptions struct {
	*RootOptions
	Database string
}

// RunRecord is one archived run in a runs listing.
type RunRecord struct {
	ID        string `json:"id"`
	Puzzle    string `json:"puzzle"`
	Order     string `json:"order"`
	StartedAt string `json:"started_at"`
	Finished  bool   `json:"finished"`
	Explored  int64  `json:"explored"`
	Solutions int64  `json:"solutions"`
	Exhausted bool   `json:"exhausted"`
}

// NewRunsCommand creates the runs command.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List archived search runs",
		Long: `List archived search runs, newest first.

Example:
  tessera runs --db ./runs.db
  tessera runs --db ./runs.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuns(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to the archive database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runRuns(opts *RunsOptions, cmd *cobra.Command) error {
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

	runs, err := arch.ListRuns(ctx)
	if err != nil {
		return reportError(opts.RootOptions, out, ExitCommandError,
			"archive_error", "failed to list runs", err)
	}

	records := make([]RunRecord, len(runs))
	for i, r := range runs {
		records[i] = RunRecord{
			ID:        r.ID,
			Puzzle:    r.Puzzle,
			Order:     r.Order,
			StartedAt: r.StartedAt.Format(time.RFC3339),
			Finished:  !r.FinishedAt.IsZero(),
			Explored:  r.Explored,
			Solutions: r.Solutions,
			Exhausted: r.Exhausted,
		}
	}

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: out, Verbose: opts.Verbose}
		return formatter.Success(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "no runs archived")
		return nil
	}
	for _, r := range records {
		status := "running"
		if r.Finished {
			status = fmt.Sprintf("%d solutions, %d explored, exhausted=%v",
				r.Solutions, r.Explored, r.Exhausted)
		}
		fmt.Fprintf(out, "%s  %s/%s  started %s  %s\n",
			r.ID, r.Puzzle, r.Order, r.StartedAt, status)
	}
	return nil
}
