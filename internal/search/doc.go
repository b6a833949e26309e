// Package search is the frontier-driven enumeration engine.
//
// A search state is a (board, pool) pair: the partially filled board
// and the tiles not yet placed. The engine pops states from a frontier,
// expands each by trying every remaining tile in every orientation at
// the board's next empty cell, and emits completed boards as a lazy
// sequence. One switch turns the frontier from a stack (depth-first)
// into a queue (breadth-first); the algorithm is otherwise identical.
//
// The engine performs no I/O. Progress reaches the caller through an
// optional callback sampled every fixed number of explored states.
package search
