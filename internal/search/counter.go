package search

import "sync/atomic"

// Counter is a monotonic counter for explored-state accounting.
//
// Each generated child state gets the next value, so the counts in
// emitted solutions and progress snapshots are strictly increasing and
// reproducible run to run. Counters are threaded through one search
// explicitly rather than held in package state, which keeps the
// engine reentrant: concurrent Solutions sequences from the same
// Searcher never share counts.
type Counter struct {
	n atomic.Int64
}

// Next increments the counter and returns the new value.
// Values start at 1.
func (c *Counter) Next() int64 {
	return c.n.Add(1)
}

// Current returns the latest value without incrementing.
func (c *Counter) Current() int64 {
	return c.n.Load()
}
