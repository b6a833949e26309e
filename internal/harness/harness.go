package harness

import (
	"fmt"

	"github.com/roach88/tessera/internal/search"
)

// Run executes a scenario against the search engine and checks its
// expectations. The returned Result carries the recorded emission
// sequence whether or not the expectations held; an error means the
// scenario itself could not be executed (bad definition, bad order).
func Run(sc *Scenario) (*Result, error) {
	def, err := sc.definition()
	if err != nil {
		return nil, err
	}

	orderSpec := sc.Order
	if orderSpec == "" {
		orderSpec = "dfs"
	}
	order, err := search.ParseOrder(orderSpec)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	pairing, err := def.Pairing()
	if err != nil {
		return nil, err
	}
	pool, err := def.Pool()
	if err != nil {
		return nil, err
	}

	searcher := search.New(pairing, def.Rows, def.Cols, pool, search.WithOrder(order))

	result := NewResult()
	result.Exhausted = true
	var prevExplored int64
	for sol := range searcher.Solutions() {
		// Counter monotonicity is a harness-level invariant, checked
		// on every scenario regardless of its expectations.
		if sol.Explored <= prevExplored {
			result.AddError(fmt.Sprintf(
				"emission %d: explored count %d not greater than previous %d",
				len(result.Emissions)+1, sol.Explored, prevExplored))
		}
		if int64(sol.Queued) >= sol.Explored {
			result.AddError(fmt.Sprintf(
				"emission %d: frontier %d exceeds states generated %d",
				len(result.Emissions)+1, sol.Queued, sol.Explored))
		}
		prevExplored = sol.Explored

		result.Emissions = append(result.Emissions, Emission{
			Board:    sol.Board.RowStrings(),
			Explored: sol.Explored,
			Queued:   sol.Queued,
		})
		if sc.Limit > 0 && len(result.Emissions) >= sc.Limit {
			result.Exhausted = false
			break
		}
	}

	checkExpectations(result, sc)
	return result, nil
}
