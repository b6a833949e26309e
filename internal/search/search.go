package search

import (
	"iter"

	"github.com/roach88/tessera/internal/board"
	"github.com/roach88/tessera/internal/tile"
)

// DefaultProgressInterval is how many explored states pass between
// progress callbacks when WithProgress does not say otherwise.
const DefaultProgressInterval = 10000

// Solution is one emitted completion: the fully filled board plus the
// counters at the moment of emission.
type Solution struct {
	// Board is completely filled; the emitting state's pool is empty.
	Board board.Board

	// Explored is the cumulative number of child states generated so
	// far, this solution included.
	Explored int64

	// Queued is the frontier size at emission. Solutions are emitted
	// directly and never enter the frontier themselves.
	Queued int
}

// Progress is a periodic snapshot for long-running searches: the
// counters plus the best partial state seen so far (the queued state
// with the fewest tiles left; ties go to the latest).
type Progress struct {
	Explored int64
	Queued   int
	Best     board.Board
	Pool     []tile.Tile
}

// ProgressFunc receives progress snapshots. It is called synchronously
// from the search loop and must not retain the Pool slice beyond the
// call.
type ProgressFunc func(Progress)

// Searcher enumerates every valid completion of a board shape from a
// tile pool. Construct with New; the zero value is not usable.
//
// A Searcher holds only configuration. Each Solutions sequence runs an
// independent search with its own frontier and counters, so a Searcher
// may be iterated any number of times, always from the root. There is
// no mid-search resumption.
type Searcher struct {
	pairing       tile.Pairing
	rows, cols    int
	pool          []tile.Tile
	order         Order
	progress      ProgressFunc
	progressEvery int64
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithOrder selects depth-first or breadth-first exploration.
// Default: DepthFirst.
func WithOrder(o Order) Option {
	return func(s *Searcher) {
		s.order = o
	}
}

// WithProgress installs a progress callback invoked every `every`
// explored states, and once more when the frontier drains so an
// exhausted search always reports its final counters even when the
// last partial interval never filled. An every of 0 keeps
// DefaultProgressInterval.
func WithProgress(fn ProgressFunc, every int64) Option {
	return func(s *Searcher) {
		s.progress = fn
		if every > 0 {
			s.progressEvery = every
		}
	}
}

// New creates a Searcher for a rows×cols board and the given pool.
//
// The pool is expected to hold canonical tile identities in a fixed
// order (the puzzle loader normalizes and sorts); the searcher copies
// it to guard against caller mutation. The pool is a multiset: a
// physical puzzle may contain two identical tiles, and both must be
// placed. No count check happens here: a pool smaller or larger than
// the board simply enumerates to zero solutions.
func New(p tile.Pairing, rows, cols int, pool []tile.Tile, opts ...Option) *Searcher {
	poolCopy := make([]tile.Tile, len(pool))
	copy(poolCopy, pool)

	s := &Searcher{
		pairing:       p,
		rows:          rows,
		cols:          cols,
		pool:          poolCopy,
		order:         DepthFirst,
		progressEvery: DefaultProgressInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Order returns the configured exploration order.
func (s *Searcher) Order() Order {
	return s.order
}

// Solutions returns the lazy sequence of every solution reachable from
// the empty board. The sequence is exhaustive: it ends only when the
// frontier is empty, after the entire reachable state space has been
// expanded. Stopping iteration early is safe; pending states are
// simply abandoned.
//
// Per popped state the engine finds the unique next empty cell, then
// tries each pool entry (used tiles leave the child's pool) in each of
// its 8 orientations. Every fitting placement is one child: a child
// with an empty pool is emitted immediately and never queued, any
// other child is pushed onto the frontier.
func (s *Searcher) Solutions() iter.Seq[Solution] {
	return func(yield func(Solution) bool) {
		var explored Counter
		f := newFrontier(s.order)

		root := State{Board: board.New(s.rows, s.cols), Pool: s.pool}
		best := root
		if len(root.Pool) > 0 {
			f.Push(root)
		}

		for {
			st, ok := f.Pop()
			if !ok {
				// Completion sample: exhausted searches surface the
				// terminal counters whether or not the interval was
				// ever reached.
				if s.progress != nil && explored.Current() > 0 {
					s.progress(Progress{
						Explored: explored.Current(),
						Queued:   0,
						Best:     best.Board,
						Pool:     best.Pool,
					})
				}
				return
			}
			pos, ok := st.Board.NextEmpty()
			if !ok {
				// Completed states are emitted, never queued; a full
				// popped board is a defect, not a recoverable state.
				panic("search: frontier held a completed board")
			}

			for i := range st.Pool {
				for _, o := range st.Pool[i].Orientations() {
					if !st.Board.Fits(s.pairing, o, pos) {
						continue
					}
					n := explored.Next()
					child := State{
						Board: st.Board.Place(pos, o),
						Pool:  withoutPool(st.Pool, i),
					}

					if child.Solved() {
						if !yield(Solution{Board: child.Board, Explored: n, Queued: f.Len()}) {
							return
						}
						continue
					}
					if child.Board.Full() {
						// More tiles than cells: the child can never
						// place its remaining pool. Dead end, dropped.
						continue
					}

					f.Push(child)
					// <= keeps the latest of equally deep states.
					if len(child.Pool) <= len(best.Pool) {
						best = child
					}

					if s.progress != nil && n%s.progressEvery == 0 {
						s.progress(Progress{
							Explored: n,
							Queued:   f.Len(),
							Best:     best.Board,
							Pool:     best.Pool,
						})
					}
				}
			}
		}
	}
}

// Enumerate runs the search to exhaustion and returns every solution.
// Convenience for tests and small boards; 4x4-scale searches should
// range over Solutions instead.
func (s *Searcher) Enumerate() []Solution {
	var out []Solution
	for sol := range s.Solutions() {
		out = append(out, sol)
	}
	return out
}
