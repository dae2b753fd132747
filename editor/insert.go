package editor

import "github.com/tamberg/piecetext/piece"

// Insert splices text into the document at pos, shifting everything at or
// after pos to the right. It reports whether pos was within range; pos may
// equal Size to append. Inserting an empty text is a no-op that still
// validates pos.
func (e *Editor) Insert(pos int, text []byte) bool {
	if pos < 0 {
		panic("editor: negative position")
	}
	if pos > e.graph.Size() {
		return false
	}
	if len(text) == 0 {
		return true
	}

	id, off := e.graph.Locate(pos)
	if e.tryCacheInsert(id, off, text) {
		return true
	}

	ch := e.changeAlloc()
	bufID, bOff, bLen := e.store.Store(text)
	content := piece.Content{Buf: bufID, Off: bOff, Len: bLen}

	var newPiece piece.ID
	if off == e.graph.Len(id) {
		n := e.graph.Alloc()
		e.graph.Init(n, content, id, e.graph.Next(id))
		ch.New = piece.Span{Start: n, End: n, Len: bLen}
		ch.Old = piece.Span{}
		newPiece = n
	} else {
		c := e.graph.ContentAt(id)
		before := e.graph.Alloc()
		mid := e.graph.Alloc()
		after := e.graph.Alloc()
		e.graph.Init(before, piece.Content{Buf: c.Buf, Off: c.Off, Len: off}, e.graph.Prev(id), mid)
		e.graph.Init(mid, content, before, after)
		e.graph.Init(after, piece.Content{Buf: c.Buf, Off: c.Off + off, Len: c.Len - off}, mid, e.graph.Next(id))
		ch.New = piece.Span{Start: before, End: after, Len: off + bLen + (c.Len - off)}
		ch.Old = piece.Span{Start: id, End: id, Len: c.Len}
		newPiece = mid
	}

	e.setCacheCandidate(content, newPiece)
	e.graph.SpanSwap(ch.Old, ch.New)
	e.metrics.sync(e)
	return true
}
