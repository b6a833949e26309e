package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/roach88/tessera/internal/puzzle"
)

// loadDefinition resolves a puzzle argument: a path to a YAML
// definition file, or the name of a builtin. An empty argument selects
// the builtin "ultimate" puzzle.
func loadDefinition(arg string) (*puzzle.Definition, error) {
	if arg == "" {
		arg = "ultimate"
	}

	// Anything that looks like a path is loaded from disk; bare names
	// resolve against the builtins.
	if strings.ContainsAny(arg, "/\\") || strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml") {
		return puzzle.Load(arg)
	}
	if _, err := os.Stat(arg); err == nil {
		return puzzle.Load(arg)
	}
	return puzzle.Builtin(arg)
}

// configureLogging sets the process-wide slog default from the
// verbose flag. Diagnostics go to stderr; stdout carries results only.
func configureLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// poolStrings renders a tile pool for reports.
func poolStrings[T fmt.Stringer](pool []T) []string {
	out := make([]string, len(pool))
	for i, tl := range pool {
		out[i] = tl.String()
	}
	return out
}
