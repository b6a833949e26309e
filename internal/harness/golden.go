package harness

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot is the golden-file form of a scenario execution: the exact
// emission trace, counters included.
type Snapshot struct {
	Scenario  string     `json:"scenario"`
	Order     string     `json:"order"`
	Emissions []Emission `json:"emissions"`
}

// RunWithGolden executes a scenario and compares its emission trace
// against testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns an error if the scenario could not be executed or failed its
// own expectations; trace mismatches fail the test through goldie.
func RunWithGolden(t *testing.T, sc *Scenario) error {
	t.Helper()

	result, err := Run(sc)
	if err != nil {
		return err
	}
	if !result.Pass {
		return fmt.Errorf("scenario %s failed expectations: %v", sc.Name, result.Errors)
	}

	order := sc.Order
	if order == "" {
		order = "dfs"
	}
	snap := Snapshot{
		Scenario:  sc.Name,
		Order:     order,
		Emissions: result.Emissions,
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, sc.Name, data)
	return nil
}
