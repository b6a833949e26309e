package search

import "fmt"

// Order selects the frontier's exploration order.
//
// Depth-first pops the state pushed most recently: the search runs a
// branch to its end before backtracking, so the frontier stays small.
// Breadth-first pops the oldest state: the frontier holds every
// partial board of the current depth, which grows with the full width
// of the search tree and becomes impractical at 4x4 scale.
//
// Both orders visit the same states and emit the same solution set;
// only emission order and peak frontier size differ.
type Order int

const (
	// DepthFirst treats the frontier as a stack.
	DepthFirst Order = iota
	// BreadthFirst treats the frontier as a queue.
	BreadthFirst
)

// String returns the CLI spelling of the order.
func (o Order) String() string {
	switch o {
	case DepthFirst:
		return "dfs"
	case BreadthFirst:
		return "bfs"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder parses a CLI spelling of an exploration order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "dfs", "depth-first":
		return DepthFirst, nil
	case "bfs", "breadth-first":
		return BreadthFirst, nil
	default:
		return 0, fmt.Errorf("unknown exploration order %q: must be dfs or bfs", s)
	}
}
