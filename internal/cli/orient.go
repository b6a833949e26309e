package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/tessera/internal/tile"
)

// OrientOptions holds flags for the orient command.
type OrientOptions struct {
	*RootOptions
	Pairs []string
}

// OrientReport is the JSON payload for an orientation listing.
type OrientReport struct {
	Tile         string   `json:"tile"`
	Orientations []string `json:"orientations"`
	Canonical    string   `json:"canonical"`
}

// NewOrientCommand creates the orient command.
func NewOrientCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OrientOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "orient <tile>",
		Short: "Show a tile's eight orientations",
		Long: `Show a tile's eight orientations (four rotations, then the flip and
its rotations) and its canonical identity, the lexicographically
smallest orientation.

Example:
  tessera orient EAGB
  tessera orient PPRR --pairs PQ --pairs RS`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrient(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Pairs, "pairs", nil,
		"complement pairs overriding the default alphabet (repeatable)")

	return cmd
}

func runOrient(opts *OrientOptions, desc string, cmd *cobra.Command) error {
	configureLogging(opts.Verbose)
	out := cmd.OutOrStdout()

	pairing := tile.DefaultPairing
	if len(opts.Pairs) > 0 {
		p, err := tile.NewPairing(opts.Pairs...)
		if err != nil {
			return reportError(opts.RootOptions, out, ExitCommandError,
				"invalid_pairs", "invalid --pairs", err)
		}
		pairing = p
	}

	tl, err := tile.ParseTile(desc, pairing)
	if err != nil {
		return reportError(opts.RootOptions, out, ExitFailure,
			"invalid_tile", "invalid tile", err)
	}

	report := OrientReport{
		Tile:      tl.String(),
		Canonical: tl.Canonical().String(),
	}
	for _, o := range tl.Orientations() {
		report.Orientations = append(report.Orientations, o.String())
	}

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: out, Verbose: opts.Verbose}
		return formatter.Success(report)
	}

	fmt.Fprintf(out, "tile %s\n", report.Tile)
	for i, o := range report.Orientations {
		fmt.Fprintf(out, "  %d: %s\n", i, o)
	}
	fmt.Fprintf(out, "canonical: %s\n", report.Canonical)
	return nil
}
