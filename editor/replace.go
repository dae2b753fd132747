package editor

// Replace substitutes the oldLen bytes starting at pos with text, as a
// single undoable Action. This differs from the reference implementation,
// which infers the delete length from strlen(text) rather than taking it
// as an argument — a bug when the replacement text is not the same length
// as the text being replaced. Taking oldLen explicitly also lets Replace
// operate on text containing NUL bytes, which a strlen-based length never
// could.
func (e *Editor) Replace(pos, oldLen int, text []byte) bool {
	if pos < 0 || oldLen < 0 {
		panic("editor: negative position or length")
	}
	if pos+oldLen > e.graph.Size() {
		return false
	}
	if !e.Delete(pos, oldLen) {
		return false
	}
	return e.Insert(pos, text)
}
