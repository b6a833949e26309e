package search

// frontier holds the pending search states.
//
// One slice backs both exploration orders: Push always appends, and
// Pop takes from the tail (DepthFirst) or the head (BreadthFirst).
// Keeping the two modes inside one type keeps them provably equivalent
// in result set; the surrounding algorithm never changes.
//
// Head pops advance an index instead of re-slicing so that Push stays
// amortized O(1); vacated slots are zeroed to release the boards and
// pools they reference. Not safe for concurrent use: the engine is
// single-threaded.
type frontier struct {
	order  Order
	states []State
	head   int // index of the oldest pending state
}

func newFrontier(order Order) *frontier {
	return &frontier{
		order:  order,
		states: make([]State, 0, 64),
	}
}

// Push adds a state to the back of the frontier.
func (f *frontier) Push(s State) {
	f.states = append(f.states, s)
}

// Pop removes and returns the next state per the configured order.
// Returns false if the frontier is empty.
func (f *frontier) Pop() (State, bool) {
	if f.Len() == 0 {
		return State{}, false
	}

	if f.order == DepthFirst {
		last := len(f.states) - 1
		s := f.states[last]
		f.states[last] = State{} // release board/pool references
		f.states = f.states[:last]
		return s, true
	}

	s := f.states[f.head]
	f.states[f.head] = State{}
	f.head++
	if f.head == len(f.states) {
		// Drained - reset to reuse the allocation.
		f.states = f.states[:0]
		f.head = 0
	}
	return s, true
}

// Len returns the number of pending states.
func (f *frontier) Len() int {
	return len(f.states) - f.head
}
