package piece

// Span names a contiguous run of pieces, from Start to End inclusive,
// reachable by following Next from Start. Len is the cached sum of their
// content lengths. The zero Span is empty: Start and End are both Nil.
type Span struct {
	Start, End ID
	Len        int
}

// Empty reports whether s names no pieces at all, as opposed to a span of
// zero-length pieces (which cannot occur: every allocated piece has
// positive length).
func (s Span) Empty() bool { return s.Start == Nil }

// SpanOf walks from start to end following Next, summing content lengths,
// and returns the resulting Span. end must be reachable from start; callers
// that already know both ends of an empty span should use the zero Span
// instead of calling SpanOf(Nil, Nil).
func (g *Graph) SpanOf(start, end ID) Span {
	if start == Nil {
		return Span{}
	}
	total := 0
	cur := start
	for {
		total += g.Len(cur)
		if cur == end {
			break
		}
		cur = g.Next(cur)
	}
	return Span{Start: start, End: end, Len: total}
}

// SpanSwap replaces old with new in the live sequence: every piece in old
// stops being reachable from Begin, and every piece in new becomes
// reachable in its place. Neither span's internal links are touched; only
// the links of the pieces immediately outside each span are rewired. The
// pieces named by old are not otherwise modified, so a Change can later
// call SpanSwap(new, old) to undo this exact swap.
func (g *Graph) SpanSwap(old, new Span) {
	switch {
	case old.Empty() && new.Empty():
		return
	case old.Empty():
		p := g.nodes[new.Start].prev
		n := g.nodes[new.End].next
		g.nodes[p].next = new.Start
		g.nodes[n].prev = new.End
	case new.Empty():
		p := g.nodes[old.Start].prev
		n := g.nodes[old.End].next
		g.nodes[p].next = n
		g.nodes[n].prev = p
	default:
		p := g.nodes[old.Start].prev
		n := g.nodes[old.End].next
		g.nodes[p].next = new.Start
		g.nodes[n].prev = new.End
	}
	g.size += new.Len - old.Len
}

// Locate returns the piece containing document position pos and the offset
// within that piece's content where pos falls. Ties at a piece boundary
// resolve to the left: Locate(0) always returns the Begin sentinel, and a
// position exactly at the end of a piece is reported as that piece with an
// offset equal to its length, never as the start of the next piece. A pos
// beyond the document's size is not meaningful; callers must bounds-check
// against Size before calling Locate.
func (g *Graph) Locate(pos int) (ID, int) {
	cur := 0
	id := Begin
	for id != End {
		l := g.Len(id)
		if cur <= pos && pos <= cur+l {
			return id, pos - cur
		}
		cur += l
		id = g.Next(id)
	}
	return End, 0
}
