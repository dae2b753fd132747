package history

import "time"

// Action is an atomic unit of undo/redo: every Change made between two
// snapshot boundaries. Undo reverts every Change in an Action in one step;
// Redo reapplies them all. ID and Time are diagnostic correlation fields
// only — no invariant of the piece graph depends on them, and callers are
// free to ignore both.
type Action struct {
	ID      string
	Time    time.Time
	Changes []Change
}

// NewAction returns an empty Action stamped with id and t.
func NewAction(id string, t time.Time) *Action {
	return &Action{ID: id, Time: t}
}

// Push appends an empty Change to a and returns a pointer to it so the
// caller can fill in its spans, or grow it in place via the edit-coalescing
// fast path before the next edit begins.
func (a *Action) Push() *Change {
	a.Changes = append(a.Changes, Change{})
	return &a.Changes[len(a.Changes)-1]
}

// Top returns a pointer to the most recently pushed Change. It panics if a
// has no changes.
func (a *Action) Top() *Change {
	return &a.Changes[len(a.Changes)-1]
}
