package editor

import "github.com/tamberg/piecetext/piece"

// Iterate calls visit with successive, non-overlapping byte runs of the
// document starting at pos, in order, until visit returns false or the end
// of the document is reached. Each call's content slice aliases the
// underlying buffer storage and is only valid until the next edit.
func (e *Editor) Iterate(pos int, visit func(pos int, content []byte) bool) {
	id, off := e.graph.Locate(pos)
	cur := pos
	for id != piece.Nil {
		if !e.graph.IsSentinel(id) {
			c := e.graph.ContentAt(id)
			bytes := e.store.Slice(c.Buf, c.Off+off, c.Len-off)
			if len(bytes) > 0 {
				if !visit(cur, bytes) {
					return
				}
				cur += len(bytes)
			}
		}
		off = 0
		id = e.graph.Next(id)
	}
}

// Iterator is a cursor over the pieces of a document, for callers that want
// to walk content piece-by-piece rather than through a callback.
type Iterator struct {
	e   *Editor
	id  piece.ID
	off int
}

// IteratorAt returns a cursor positioned at pos. If pos falls exactly on
// the Begin sentinel (only possible at pos == 0), the cursor advances past
// it to the first real piece, so Valid reports the presence of content
// rather than the existence of the sentinel.
func (e *Editor) IteratorAt(pos int) *Iterator {
	id, off := e.graph.Locate(pos)
	if id == piece.Begin {
		id = e.graph.Next(id)
		off = 0
	}
	return &Iterator{e: e, id: id, off: off}
}

// Valid reports whether the cursor is positioned on a real piece.
func (it *Iterator) Valid() bool {
	return it.id != piece.Nil && !it.e.graph.IsSentinel(it.id)
}

// Bytes returns the remaining content of the piece the cursor is on, or nil
// if the cursor is not Valid.
func (it *Iterator) Bytes() []byte {
	if !it.Valid() {
		return nil
	}
	c := it.e.graph.ContentAt(it.id)
	return it.e.store.Slice(c.Buf, c.Off+it.off, c.Len-it.off)
}

// Next advances the cursor to the following piece.
func (it *Iterator) Next() {
	if it.id == piece.Nil {
		return
	}
	it.id = it.e.graph.Next(it.id)
	it.off = 0
}

// Prev moves the cursor to the preceding piece.
func (it *Iterator) Prev() {
	if it.id == piece.Nil {
		return
	}
	it.id = it.e.graph.Prev(it.id)
	it.off = 0
}
