package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/tessera/internal/puzzle"
	"github.com/roach88/tessera/internal/tile"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
}

// ValidationReport is the JSON payload for a validated definition.
type ValidationReport struct {
	Puzzle     string   `json:"puzzle"`
	Rows       int      `json:"rows"`
	Cols       int      `json:"cols"`
	Tiles      int      `json:"tiles"`
	Cells      int      `json:"cells"`
	CountMatch bool     `json:"count_match"`
	Pool       []string `json:"pool"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate <puzzle>",
		Short: "Validate a puzzle definition",
		Long: `Validate a puzzle definition: schema shape, alphabet pairing, and
tile symbols. Reports the canonical, sorted pool the search would use
and whether the tile count matches the board.

Example:
  tessera validate ./puzzles/custom.yaml
  tessera validate ultimate --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *ValidateOptions, arg string, cmd *cobra.Command) error {
	configureLogging(opts.Verbose)
	out := cmd.OutOrStdout()

	def, err := loadDefinition(arg)
	if err != nil {
		// Schema violations are data failures; missing files are
		// command errors.
		var se *puzzle.SchemaError
		if errors.As(err, &se) {
			return reportError(opts.RootOptions, out, ExitFailure,
				"schema_violation", "definition failed schema validation", err)
		}
		return reportError(opts.RootOptions, out, ExitCommandError,
			"puzzle_load_failed", "failed to load puzzle", err)
	}

	pool, err := def.Pool()
	if err != nil {
		if tile.IsInvalidTile(err) {
			return reportError(opts.RootOptions, out, ExitFailure,
				"invalid_tiles", "definition has invalid tiles", err)
		}
		return reportError(opts.RootOptions, out, ExitFailure,
			"invalid_alphabet", "definition has an invalid alphabet", err)
	}

	report := ValidationReport{
		Puzzle:     def.Name,
		Rows:       def.Rows,
		Cols:       def.Cols,
		Tiles:      len(def.Tiles),
		Cells:      def.Cells(),
		CountMatch: len(pool) == def.Cells(),
		Pool:       poolStrings(pool),
	}

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: out, Verbose: opts.Verbose}
		return formatter.Success(report)
	}

	fmt.Fprintf(out, "puzzle %s: %dx%d board, %d tiles\n", report.Puzzle, report.Rows, report.Cols, report.Tiles)
	fmt.Fprintf(out, "canonical pool: %v\n", report.Pool)
	if report.CountMatch {
		fmt.Fprintln(out, "tile count matches board cells")
	} else {
		fmt.Fprintf(out, "warning: %d tiles for %d cells; no complete tiling is possible\n",
			report.Tiles, report.Cells)
	}
	return nil
}
