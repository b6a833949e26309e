package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/tessera/internal/puzzle"
)

// Scenario defines one conformance scenario: a puzzle, an exploration
// order, and expectations over the emitted solution sequence.
type Scenario struct {
	// Name uniquely identifies this scenario. Golden files are stored
	// under this name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Puzzle is an inline puzzle definition. Exactly one of Puzzle and
	// PuzzleFile must be set.
	Puzzle *puzzle.Definition `yaml:"puzzle,omitempty"`

	// PuzzleFile is a definition path relative to the scenario file.
	PuzzleFile string `yaml:"puzzle_file,omitempty"`

	// Order is the exploration order, "dfs" or "bfs". Defaults to dfs.
	Order string `yaml:"order,omitempty"`

	// Limit stops recording after this many emissions. 0 runs the
	// search to exhaustion.
	Limit int `yaml:"limit,omitempty"`

	// Expect holds the scenario's assertions.
	Expect Expectations `yaml:"expect"`

	// dir is the scenario file's directory, for resolving PuzzleFile.
	dir string
}

// Expectations asserts over a recorded emission sequence.
// Zero-valued fields are not checked, except Solutions, which is
// always checked (asserting zero solutions is meaningful).
type Expectations struct {
	// Solutions is the exact number of recorded emissions.
	Solutions int `yaml:"solutions"`

	// DistinctBoards is the exact number of distinct solution boards,
	// when > 0.
	DistinctBoards int `yaml:"distinct_boards,omitempty"`

	// FinalExplored is the explored counter on the last emission,
	// when > 0.
	FinalExplored int64 `yaml:"final_explored,omitempty"`

	// Exhausted requires the search to have drained its frontier.
	Exhausted bool `yaml:"exhausted,omitempty"`
}

// LoadScenario reads and validates one scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", path, err)
	}
	sc.dir = filepath.Dir(path)

	if err := sc.validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

// LoadScenarios loads every *.yaml scenario under dir, sorted by file
// name for deterministic test ordering.
func LoadScenarios(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load scenarios: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".yaml") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		sc, err := LoadScenario(p)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if (s.Puzzle == nil) == (s.PuzzleFile == "") {
		return fmt.Errorf("exactly one of puzzle and puzzle_file is required")
	}
	if s.Limit < 0 {
		return fmt.Errorf("limit must be >= 0")
	}
	return nil
}

// definition resolves the scenario's puzzle definition.
func (s *Scenario) definition() (*puzzle.Definition, error) {
	if s.Puzzle != nil {
		return s.Puzzle, nil
	}
	return puzzle.Load(filepath.Join(s.dir, s.PuzzleFile))
}
