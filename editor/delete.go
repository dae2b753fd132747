package editor

import "github.com/tamberg/piecetext/piece"

// Delete removes the n bytes starting at pos. It reports whether the range
// [pos, pos+n) was within the document; deleting a zero-length range is
// always a successful no-op.
func (e *Editor) Delete(pos, n int) bool {
	if pos < 0 || n < 0 {
		panic("editor: negative position or length")
	}
	if n == 0 {
		return true
	}
	if pos+n > e.graph.Size() {
		return false
	}

	id, off := e.graph.Locate(pos)
	if e.tryCacheDelete(id, off, n) {
		return true
	}
	ch := e.changeAlloc()

	g := e.graph
	var midwayStart, midwayEnd bool
	var before, after piece.ID
	var start, end piece.ID
	var cur int

	if off == g.Len(id) {
		before = id
		start = g.Next(id)
	} else {
		midwayStart = true
		cur = g.Len(id) - off
		start = id
		before = g.Alloc()
	}

	p := id
	for cur < n {
		p = g.Next(p)
		cur += g.Len(p)
	}

	if cur == n {
		end = p
		after = g.Next(p)
	} else {
		midwayEnd = true
		end = p
		over := cur - n
		c := g.ContentAt(p)
		afterContent := piece.Content{Buf: c.Buf, Off: c.Off + c.Len - over, Len: over}
		after = g.Alloc()
		g.Init(after, afterContent, before, g.Next(p))
	}

	if midwayStart {
		sc := g.ContentAt(start)
		beforeContent := piece.Content{Buf: sc.Buf, Off: sc.Off, Len: off}
		g.Init(before, beforeContent, g.Prev(start), after)
	}

	newStart, newEnd := piece.Nil, piece.Nil
	if midwayStart {
		newStart = before
		if !midwayEnd {
			newEnd = before
		}
	}
	if midwayEnd {
		if !midwayStart {
			newStart = after
		}
		newEnd = after
	}

	old := g.SpanOf(start, end)
	newSpan := g.SpanOf(newStart, newEnd)

	ch.Old = old
	ch.New = newSpan
	g.SpanSwap(old, newSpan)
	e.metrics.sync(e)
	return true
}
