// Package piece implements the piece graph: a doubly-linked sequence of
// Pieces, each a view into a byte range owned by a buffer.Store, that
// together describe the current contents of a document. Pieces are
// addressed by a small integer ID into an arena rather than by pointer, so
// a piece's identity survives arena growth and a Change can reference a
// piece's ID long after it stops being part of the live sequence.
package piece

import "github.com/tamberg/piecetext/buffer"

// ID addresses a piece within a Graph's arena.
type ID int32

// Nil is the distinguished ID meaning "no piece". It is also the zero value
// of ID, so a zero-valued Span is empty by construction.
const Nil ID = 0

// Begin and End are sentinel pieces present in every Graph. They carry no
// content and are never visited by Iterate; they exist only to give every
// real piece a well-defined neighbor at the edges of the document.
const (
	Begin ID = 1
	End   ID = 2
)

// Content describes where a piece's bytes live: a run of length bytes
// starting at offset Off within buffer Buf. Storing a location rather than
// a pointer means the content stays valid no matter how the owning Store's
// buffers are reallocated or adopted.
type Content struct {
	Buf buffer.ID
	Off int
	Len int
}

type node struct {
	content    Content
	prev, next ID
}

// Graph is the live sequence of pieces describing a document's contents,
// plus every piece ever referenced by a still-reachable Change. Graph
// itself holds no byte data; callers resolve a piece's Content against the
// buffer.Store that owns it.
type Graph struct {
	nodes []node
	size  int
}

// NewGraph returns the piece graph for an empty document: just the Begin
// and End sentinels, linked to each other.
func NewGraph() *Graph {
	g := &Graph{nodes: make([]node, 3)}
	g.nodes[Begin] = node{prev: Nil, next: End}
	g.nodes[End] = node{prev: Begin, next: Nil}
	return g
}

// NewGraphWithContent returns the piece graph for a document consisting of
// a single initial piece, as used when loading a file.
func NewGraphWithContent(c Content) *Graph {
	g := &Graph{nodes: make([]node, 4), size: c.Len}
	const first ID = 3
	g.nodes[Begin] = node{prev: Nil, next: first}
	g.nodes[first] = node{content: c, prev: Begin, next: End}
	g.nodes[End] = node{prev: first, next: Nil}
	return g
}

// Alloc reserves a new, zero-valued node and returns its ID. Callers must
// follow up with Init before the node is linked into the graph by SpanSwap.
func (g *Graph) Alloc() ID {
	g.nodes = append(g.nodes, node{})
	return ID(len(g.nodes) - 1)
}

// Init sets the content and neighbor links of a previously allocated node.
func (g *Graph) Init(id ID, c Content, prev, next ID) {
	g.nodes[id] = node{content: c, prev: prev, next: next}
}

// Prev returns the piece preceding id in the current sequence.
func (g *Graph) Prev(id ID) ID { return g.nodes[id].prev }

// Next returns the piece following id in the current sequence.
func (g *Graph) Next(id ID) ID { return g.nodes[id].next }

// ContentAt returns the content location of piece id.
func (g *Graph) ContentAt(id ID) Content { return g.nodes[id].content }

// Len returns the content length of piece id. Sentinels always report 0.
func (g *Graph) Len(id ID) int { return g.nodes[id].content.Len }

// Size reports the total length, in bytes, of the document described by the
// live sequence of pieces.
func (g *Graph) Size() int { return g.size }

// IsSentinel reports whether id is the Begin or End marker.
func (g *Graph) IsSentinel(id ID) bool { return id == Begin || id == End }

// PieceCount reports how many nodes the arena currently holds, live or not,
// for instrumentation purposes.
func (g *Graph) PieceCount() int { return len(g.nodes) }

// GrowPiece adjusts the content length of a live piece in place, as used by
// the edit-coalescing fast path when appending to or truncating the most
// recently allocated piece.
func (g *Graph) GrowPiece(id ID, delta int) {
	g.nodes[id].content.Len += delta
	g.size += delta
}
