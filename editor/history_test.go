package editor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUndoOnEmptyStackReturnsFalse(t *testing.T) {
	e := NewEmpty()
	require.False(t, e.Undo())
}

func TestRedoOnEmptyStackReturnsFalse(t *testing.T) {
	e := NewEmpty()
	require.True(t, e.Insert(0, []byte("a")))
	require.False(t, e.Redo())
}

func TestSnapshotWithNoOpenActionIsHarmless(t *testing.T) {
	e := NewEmpty()
	e.Snapshot()
	e.Snapshot()
	require.True(t, e.Insert(0, []byte("a")))
}

func TestUndoRevertsOpenAction(t *testing.T) {
	e := NewEmpty()
	require.True(t, e.Insert(0, []byte("abc")))
	e.Snapshot()
	require.True(t, e.Insert(3, []byte("d")))

	require.True(t, e.Undo())
	require.Equal(t, "abc", contents(t, e))
}
