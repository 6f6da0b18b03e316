package search

// History is the ordered list of snapshots a search produced, with a cursor
// for replay. Snapshots are only appended while the search runs; afterwards
// navigation just moves the cursor.
type History struct {
	snapshots []SearchState
	current   int
}

func newHistory() *History {
	return &History{}
}

// record appends a deep copy of s.
func (h *History) record(s *SearchState) {
	h.snapshots = append(h.snapshots, s.Clone())
}

// Len is the number of snapshots
func (h *History) Len() int { return len(h.snapshots) }

// Step is the cursor position
func (h *History) Step() int { return h.current }

// TotalSteps is the index of the last snapshot
func (h *History) TotalSteps() int {
	if len(h.snapshots) == 0 {
		return 0
	}
	return len(h.snapshots) - 1
}

// At returns snapshot i. Callers must not modify it.
func (h *History) At(i int) *SearchState {
	if i < 0 || i >= len(h.snapshots) {
		return nil
	}
	return &h.snapshots[i]
}

// Current returns the snapshot under the cursor
func (h *History) Current() *SearchState {
	return h.At(h.current)
}

// Last returns the final snapshot
func (h *History) Last() *SearchState {
	return h.At(len(h.snapshots) - 1)
}

// Forward advances the cursor. It reports false at the last snapshot.
func (h *History) Forward() bool {
	if h.current >= h.TotalSteps() {
		return false
	}
	h.current++
	return true
}

// Back moves the cursor back. It reports false at the first snapshot.
func (h *History) Back() bool {
	if h.current == 0 {
		return false
	}
	h.current--
	return true
}

// JumpTo moves the cursor to step, reporting false and leaving the cursor
// alone when step is out of range.
func (h *History) JumpTo(step int) bool {
	if step < 0 || step > h.TotalSteps() {
		return false
	}
	h.current = step
	return true
}

// Reset moves the cursor to the first snapshot
func (h *History) Reset() { h.current = 0 }

// Finished reports whether the cursor is on the last snapshot
func (h *History) Finished() bool {
	return h.current >= h.TotalSteps()
}

// Clone returns an independent copy, cursor included.
func (h *History) Clone() *History {
	c := &History{
		snapshots: make([]SearchState, len(h.snapshots)),
		current:   h.current,
	}
	for i := range h.snapshots {
		c.snapshots[i] = h.snapshots[i].Clone()
	}
	return c
}
