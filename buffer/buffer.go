// Package buffer implements the append-only byte arenas that back a piece
// graph. A Store holds zero or one read-only buffer adopted from an mmap'd
// file plus a chain of heap-allocated append buffers; pieces never reference
// raw pointers, only a stable (ID, offset, length) triple, so a buffer's
// backing array is never relocated once allocated.
package buffer

import "fmt"

// ID identifies a Buffer within a Store. Nil never names a real buffer; the
// zero value names the first buffer a Store holds.
type ID int32

// Nil is the distinguished ID that never refers to a real buffer.
const Nil ID = -1

// DefaultSize is the minimum capacity of a freshly allocated append buffer,
// matching the reference implementation's fixed 1 MiB growth chunk.
const DefaultSize = 1 << 20

// Buffer is a single fixed-capacity byte arena. Its backing array is
// allocated once and never grows; Store allocates a new Buffer when the
// current tail runs out of room.
type Buffer struct {
	data       []byte // len(data) == capacity, always
	n          int    // bytes currently in use, data[:n]
	mmapped    bool
	appendable bool
}

func newHeap(capacity int) *Buffer {
	return &Buffer{data: make([]byte, capacity), appendable: true}
}

func newReadOnly(data []byte) *Buffer {
	return &Buffer{data: data, n: len(data), mmapped: true}
}

// Cap reports the total capacity of the buffer.
func (b *Buffer) Cap() int { return len(b.data) }

// Len reports the number of bytes currently stored in the buffer.
func (b *Buffer) Len() int { return b.n }

func (b *Buffer) hasRoom(n int) bool { return b.appendable && len(b.data)-b.n >= n }

// append copies p onto the unused tail of the buffer and returns the slice
// it was written into. The caller must have already checked hasRoom.
func (b *Buffer) append(p []byte) []byte {
	dst := b.data[b.n : b.n+len(p)]
	copy(dst, p)
	b.n += len(p)
	return dst
}

// insertAt splices p into the buffer at pos, shifting any bytes after pos
// to the right. It reports whether there was enough capacity to do so.
func (b *Buffer) insertAt(pos int, p []byte) bool {
	if pos < 0 || pos > b.n || !b.hasRoom(len(p)) {
		return false
	}
	if pos == b.n {
		b.append(p)
		return true
	}
	copy(b.data[pos+len(p):b.n+len(p)], b.data[pos:b.n])
	copy(b.data[pos:pos+len(p)], p)
	b.n += len(p)
	return true
}

// deleteAt removes the n bytes starting at pos, shifting any bytes after the
// deleted range to the left. It reports whether the range fit within the
// buffer's current contents.
func (b *Buffer) deleteAt(pos, n int) bool {
	if pos < 0 || n < 0 || pos+n > b.n {
		return false
	}
	if pos+n == b.n {
		b.n -= n
		return true
	}
	copy(b.data[pos:b.n-n], b.data[pos+n:b.n])
	b.n -= n
	return true
}

func (b *Buffer) bytes(off, length int) []byte {
	if off < 0 || length < 0 || off+length > b.n {
		panic(fmt.Sprintf("buffer: slice [%d:%d] out of range for length %d", off, off+length, b.n))
	}
	return b.data[off : off+length]
}
