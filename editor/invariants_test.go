package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tamberg/piecetext/piece"
)

// sumPieceLengths walks the live graph (excluding sentinels) and totals the
// content length of every piece, independent of Graph.Size's own bookkeeping.
func sumPieceLengths(e *Editor) int {
	total := 0
	for id := e.graph.Next(piece.Begin); id != piece.End; id = e.graph.Next(id) {
		total += e.graph.Len(id)
	}
	return total
}

func TestInvariantLengthConservation(t *testing.T) {
	e := NewEmpty()
	require.True(t, e.Insert(0, []byte("hello world")))
	require.True(t, e.Insert(5, []byte(",")))
	require.True(t, e.Delete(0, 3))
	e.Snapshot()
	require.True(t, e.Insert(2, []byte("XYZ")))

	require.Equal(t, e.Size(), sumPieceLengths(e))
}

func TestInvariantUndoRedoInverse(t *testing.T) {
	e := NewEmpty()
	require.True(t, e.Insert(0, []byte("abcdef")))
	e.Snapshot()
	before := contents(t, e)

	require.True(t, e.Delete(1, 3))
	after := contents(t, e)
	e.Snapshot()

	require.True(t, e.Undo())
	require.Equal(t, before, contents(t, e))

	require.True(t, e.Redo())
	require.Equal(t, after, contents(t, e))
}

func TestInvariantReplayIdempotence(t *testing.T) {
	e := NewEmpty()
	require.True(t, e.Insert(0, []byte("abcdef")))
	e.Snapshot()
	require.True(t, e.Delete(1, 3))
	e.Snapshot()

	want := contents(t, e)
	for k := 0; k < 3; k++ {
		require.True(t, e.Undo())
		require.True(t, e.Redo())
		require.Equal(t, want, contents(t, e))
	}
}

func TestInvariantSpanDisjointness(t *testing.T) {
	e := NewEmpty()
	require.True(t, e.Insert(0, []byte("abcdef")))
	e.Snapshot()
	require.True(t, e.Insert(3, []byte("XYZ")))

	type occupied struct {
		start, end int
	}
	byBuf := map[int][]occupied{}
	for id := e.graph.Next(piece.Begin); id != piece.End; id = e.graph.Next(id) {
		c := e.graph.ContentAt(id)
		for _, o := range byBuf[int(c.Buf)] {
			require.False(t, o.start < c.Off+c.Len && c.Off < o.end,
				"piece [%d,%d) overlaps existing range [%d,%d) in buffer %d", c.Off, c.Off+c.Len, o.start, o.end, c.Buf)
		}
		byBuf[int(c.Buf)] = append(byBuf[int(c.Buf)], occupied{c.Off, c.Off + c.Len})
	}
}

func TestInvariantSaveRoundTrip(t *testing.T) {
	e := NewEmpty()
	require.True(t, e.Insert(0, []byte("hello world")))
	e.Snapshot()
	require.True(t, e.Insert(5, []byte(", there")))

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, e.Save(path))
	require.False(t, e.Modified())

	loaded, err := Load(path)
	require.NoError(t, err)
	defer loaded.Close()

	require.Equal(t, contents(t, e), contents(t, loaded))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, contents(t, e), string(raw))
}

func TestInvariantRedoInvalidatedByNewEdit(t *testing.T) {
	e := NewEmpty()
	require.True(t, e.Insert(0, []byte("abc")))
	e.Snapshot()
	require.True(t, e.Insert(3, []byte("d")))
	e.Snapshot()

	require.True(t, e.Undo())
	require.Equal(t, 1, e.redo.Len())

	require.True(t, e.Insert(0, []byte("z")))
	require.Equal(t, 0, e.redo.Len())
}
