package editor

import "github.com/tamberg/piecetext/piece"

// Snapshot closes the current Action, if any, so that every edit made
// before this call undoes as one step and every edit made after it begins
// a new one. It also retires the edit-coalescing cache, since a piece
// cached for in-place growth only remains eligible while its Change is
// still open.
func (e *Editor) Snapshot() {
	e.currentAction = nil
	e.cachePiece = piece.Nil
}

// Undo reverts every Change of the Action on top of the undo stack, moving
// it to the redo stack, and reports whether there was an Action to undo.
// An Action that is still open is first closed as by Snapshot, so it is the
// one reverted and the next edit starts a new Action.
func (e *Editor) Undo() bool {
	e.Snapshot()
	a, ok := e.undo.Pop()
	if !ok {
		return false
	}
	for _, ch := range a.Changes {
		e.graph.SpanSwap(ch.New, ch.Old)
	}
	e.redo.Push(a)
	e.metrics.sync(e)
	return true
}

// Redo reapplies every Change of the most recently undone Action, moving it
// back to the undo stack, and reports whether there was an Action to redo.
func (e *Editor) Redo() bool {
	a, ok := e.redo.Pop()
	if !ok {
		return false
	}
	for _, ch := range a.Changes {
		e.graph.SpanSwap(ch.Old, ch.New)
	}
	e.undo.Push(a)
	e.metrics.sync(e)
	return true
}

// Modified reports whether the document has changed since the last
// successful Save, or since creation if it has never been saved.
func (e *Editor) Modified() bool {
	return e.undo.Top() != e.savedAction
}
