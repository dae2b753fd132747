package history

import "github.com/tamberg/piecetext/piece"

// Change is a single span-swap: replacing Old with New in the piece graph
// applies the change, and replacing New with Old reverts it. An empty Old
// span means the change is a pure insertion; an empty New span means a pure
// deletion. Neither span is ever empty on both sides.
type Change struct {
	Old, New piece.Span
}
