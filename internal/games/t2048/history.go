package t2048

// state is one committed (grid, score) pair. maxTile and the move counter
// ride along so that undo and speculative trials restore them too.
type state struct {
	grid    Grid
	score   int
	maxTile int
	moves   int
}

// History is the undo stack. It grows without bound for the life of a
// game and is only shrunk by Pop or cleared by Reset.
type History struct {
	states []state
}

// Push records a state on top of the stack.
func (h *History) Push(s state) {
	h.states = append(h.states, s)
}

// Pop removes and returns the most recent state.
// ok is false when the stack is empty.
func (h *History) Pop() (s state, ok bool) {
	if len(h.states) == 0 {
		return state{}, false
	}
	last := len(h.states) - 1
	s = h.states[last]
	h.states = h.states[:last]
	return s, true
}

// Peek returns the most recent state without removing it.
func (h *History) Peek() (state, bool) {
	if len(h.states) == 0 {
		return state{}, false
	}
	return h.states[len(h.states)-1], true
}

// Len returns the number of stored states.
func (h *History) Len() int {
	return len(h.states)
}

// Clear drops every stored state.
func (h *History) Clear() {
	h.states = h.states[:0]
}
