package harness

import "fmt"

// checkExpectations applies a scenario's expectations to the recorded
// result, accumulating failures into result.Errors.
func checkExpectations(result *Result, sc *Scenario) {
	exp := sc.Expect

	if len(result.Emissions) != exp.Solutions {
		result.AddError(fmt.Sprintf("expected %d solutions, got %d",
			exp.Solutions, len(result.Emissions)))
	}

	if exp.DistinctBoards > 0 {
		distinct := make(map[string]struct{})
		for _, em := range result.Emissions {
			key := ""
			for _, row := range em.Board {
				key += row + "\n"
			}
			distinct[key] = struct{}{}
		}
		if len(distinct) != exp.DistinctBoards {
			result.AddError(fmt.Sprintf("expected %d distinct boards, got %d",
				exp.DistinctBoards, len(distinct)))
		}
	}

	if exp.FinalExplored > 0 {
		if len(result.Emissions) == 0 {
			result.AddError(fmt.Sprintf("expected final explored %d, got no emissions",
				exp.FinalExplored))
		} else if got := result.Emissions[len(result.Emissions)-1].Explored; got != exp.FinalExplored {
			result.AddError(fmt.Sprintf("expected final explored %d, got %d",
				exp.FinalExplored, got))
		}
	}

	if exp.Exhausted && !result.Exhausted {
		result.AddError("expected the search to exhaust its frontier")
	}
}
