package editor

import (
	"github.com/tamberg/piecetext/history"
	"github.com/tamberg/piecetext/piece"
)

// cacheContains reports whether id is the single piece eligible for the
// edit-coalescing fast path: it must be the piece most recently allocated
// by the current, still-open Action, and its content must currently sit at
// the very end of the store's tail buffer.
//
// The membership test below checks only the new span's Start piece, not
// its End, matching a documented quirk of the reference implementation's
// cache membership check: a multi-piece Change (e.g. a midway insert, which
// produces a Before/Mid/After triple) can never be grown by the fast path
// even when its own newest piece would otherwise qualify, because Start
// names the first piece of the triple rather than the one actually abutting
// the tail buffer.
func (e *Editor) cacheContains(id piece.ID) bool {
	if e.cachePiece == piece.Nil || e.cachePiece != id {
		return false
	}
	top := e.topChange()
	if top == nil || top.New.Start != id {
		return false
	}
	c := e.graph.ContentAt(id)
	return e.store.IsTailEdge(c.Buf, c.Off, c.Len)
}

func (e *Editor) topChange() *history.Change {
	if e.currentAction == nil || len(e.currentAction.Changes) == 0 {
		return nil
	}
	return e.currentAction.Top()
}

// tryCacheInsert attempts to grow the cached piece in place rather than
// allocating a new one. It applies at any offset within the cached piece:
// the text is spliced into the tail buffer at the matching position.
func (e *Editor) tryCacheInsert(id piece.ID, off int, text []byte) bool {
	if !e.cacheContains(id) {
		e.metrics.miss()
		return false
	}
	c := e.graph.ContentAt(id)
	if !e.store.InsertAt(c.Buf, c.Off+off, text) {
		e.metrics.miss()
		return false
	}
	e.graph.GrowPiece(id, len(text))
	e.topChange().New.Len += len(text)
	e.metrics.hit()
	return true
}

// tryCacheDelete attempts to shrink the cached piece in place rather than
// splicing the graph. It applies only when the deleted range lies entirely
// within the cached piece's content.
func (e *Editor) tryCacheDelete(id piece.ID, off, n int) bool {
	if !e.cacheContains(id) {
		e.metrics.miss()
		return false
	}
	c := e.graph.ContentAt(id)
	if off+n > c.Len {
		e.metrics.miss()
		return false
	}
	if !e.store.DeleteAt(c.Buf, c.Off+off, n) {
		e.metrics.miss()
		return false
	}
	e.graph.GrowPiece(id, -n)
	e.topChange().New.Len -= n
	e.metrics.hit()
	return true
}

// setCacheCandidate records newPiece as the cache candidate for the next
// edit if its content currently abuts the tail buffer's end — the only
// condition under which a following edit could grow or shrink it in place.
func (e *Editor) setCacheCandidate(c piece.Content, newPiece piece.ID) {
	if e.store.IsTailEdge(c.Buf, c.Off, c.Len) {
		e.cachePiece = newPiece
	} else {
		e.cachePiece = piece.Nil
	}
}

// changeAlloc ensures a current Action exists, starting a new one (and
// discarding the entire redo stack) if the previous edit was followed by a
// Snapshot or this is the first edit. It then appends a fresh Change to the
// current Action and returns it for the caller to fill in.
func (e *Editor) changeAlloc() *history.Change {
	if e.currentAction == nil {
		for _, a := range e.redo.Drain() {
			e.freeAction(a)
		}
		e.currentAction = history.NewAction(e.newActionID(e.cfg.clock()), e.cfg.clock())
		e.undo.Push(e.currentAction)
	}
	return e.currentAction.Push()
}

// freeAction releases the bookkeeping held for an Action that can never be
// reached again: every piece referenced by the new side of its Changes is
// no longer part of any undo/redo path, so if the cache candidate is one of
// them it must be invalidated. The old-side pieces of a Change are never
// freed here — they remain part of an earlier Action's new side, or of the
// live document, until that Action is itself freed.
func (e *Editor) freeAction(a *history.Action) {
	for _, ch := range a.Changes {
		if ch.New.Empty() {
			continue
		}
		if e.cachePiece == ch.New.Start || e.cachePiece == ch.New.End {
			e.cachePiece = piece.Nil
		}
	}
}
