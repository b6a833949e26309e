package search

import (
	"github.com/roach88/tessera/internal/board"
	"github.com/roach88/tessera/internal/tile"
)

// State is one node of the search space: a partial board plus the
// ordered pool of tiles not yet placed on it.
//
// States are independent values. A child state gets a fresh board copy
// and a fresh pool slice, so no state is ever shared between branches
// and expanding one state cannot disturb another.
type State struct {
	Board board.Board
	Pool  []tile.Tile
}

// Solved reports whether the state is a solution: an empty pool means
// every tile is placed and, by the fit checks along the way, placed
// validly.
func (s State) Solved() bool {
	return len(s.Pool) == 0
}

// withoutPool returns a copy of pool with index i removed. The input
// slice is never modified; sibling children iterate over it after this
// call.
func withoutPool(pool []tile.Tile, i int) []tile.Tile {
	rest := make([]tile.Tile, 0, len(pool)-1)
	rest = append(rest, pool[:i]...)
	return append(rest, pool[i+1:]...)
}
