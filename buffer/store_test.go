package buffer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStoreAllocatesNewTailWhenFull(t *testing.T) {
	s := NewStore(4)

	id1, off1, n1 := s.Store([]byte("ab"))
	if off1 != 0 || n1 != 2 {
		t.Fatalf("Store() = (%d,%d,%d), want (id,0,2)", id1, off1, n1)
	}

	id2, off2, n2 := s.Store([]byte("cd"))
	if id2 != id1 || off2 != 2 || n2 != 2 {
		t.Fatalf("second Store() = (%d,%d,%d), want same buffer at offset 2", id2, off2, n2)
	}

	// The 4-byte buffer is now full; a third write must allocate a new tail.
	id3, off3, _ := s.Store([]byte("ef"))
	if id3 == id2 {
		t.Fatalf("Store() reused a full buffer")
	}
	if off3 != 0 {
		t.Fatalf("Store() into new buffer has offset %d, want 0", off3)
	}
	if got := s.BufferCount(); got != 2 {
		t.Fatalf("BufferCount() = %d, want 2", got)
	}
}

func TestStoreInsertAtOnlyAffectsTail(t *testing.T) {
	s := NewStore(16)
	id, _, _ := s.Store([]byte("abcd"))

	if !s.InsertAt(id, 2, []byte("XY")) {
		t.Fatalf("InsertAt on tail buffer failed")
	}
	if got := string(s.Slice(id, 0, 6)); got != "abXYcd" {
		t.Fatalf("Slice() = %q, want %q", got, "abXYcd")
	}

	other := s.AdoptReadOnly([]byte("readonly"))
	if s.InsertAt(other, 0, []byte("z")) {
		t.Fatalf("InsertAt succeeded against a non-tail buffer")
	}
}

func TestStoreDeleteAtShrinksInPlace(t *testing.T) {
	s := NewStore(16)
	id, _, _ := s.Store([]byte("abcdef"))

	if !s.DeleteAt(id, 2, 2) {
		t.Fatalf("DeleteAt failed")
	}
	if got, want := s.Slice(id, 0, 4), []byte("abef"); !cmp.Equal(got, want) {
		t.Fatalf("Slice() = %q, want %q", got, want)
	}
	if s.Len(id) != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len(id))
	}
}

func TestStoreIsTailEdge(t *testing.T) {
	s := NewStore(16)
	id, off, n := s.Store([]byte("abc"))

	if !s.IsTailEdge(id, off, n) {
		t.Fatalf("IsTailEdge() = false for a span ending at the tail")
	}
	if s.IsTailEdge(id, 0, n-1) {
		t.Fatalf("IsTailEdge() = true for a span that does not reach the end")
	}

	other := s.AdoptReadOnly([]byte("xyz"))
	if s.IsTailEdge(other, 0, 3) {
		t.Fatalf("IsTailEdge() = true for the read-only buffer")
	}
}

func TestStoreAdoptReadOnlyDoesNotBecomeTail(t *testing.T) {
	s := NewStore(16)
	ro := s.AdoptReadOnly([]byte("file contents"))

	id, off, _ := s.Store([]byte("edit"))
	if id == ro {
		t.Fatalf("Store() wrote into the adopted read-only buffer")
	}
	if off != 0 {
		t.Fatalf("Store() after adopting a read-only buffer has offset %d, want 0", off)
	}
}
