package buffer

// Store owns every Buffer that backs a single document: at most one
// read-only buffer adopted from a memory-mapped file, plus a chain of
// heap-allocated append buffers. Only the most recently allocated append
// buffer (the tail) ever receives new writes; every other buffer, including
// the adopted file buffer, is immutable once stored.
type Store struct {
	bufs []*Buffer
	tail ID
	size int
}

// NewStore returns an empty Store. minSize overrides DefaultSize as the
// floor on how large a freshly allocated append buffer is; values <= 0 fall
// back to DefaultSize.
func NewStore(minSize int) *Store {
	if minSize <= 0 {
		minSize = DefaultSize
	}
	return &Store{tail: Nil, size: minSize}
}

// AdoptReadOnly wraps data (typically an mmap'd file) as a new, immutable
// buffer and returns its ID. The adopted buffer never becomes the tail, so
// it is never a target for InsertAt or DeleteAt.
func (s *Store) AdoptReadOnly(data []byte) ID {
	s.bufs = append(s.bufs, newReadOnly(data))
	return ID(len(s.bufs) - 1)
}

// Store appends data to the tail append buffer, allocating a new one first
// if the tail is full, missing, or the adopted read-only buffer. It returns
// the buffer the data landed in, the offset it starts at, and its length.
func (s *Store) Store(data []byte) (ID, int, int) {
	var tail *Buffer
	if s.tail != Nil {
		tail = s.bufs[s.tail]
	}
	if tail == nil || !tail.hasRoom(len(data)) {
		cap := s.size
		if len(data) > cap {
			cap = len(data)
		}
		tail = newHeap(cap)
		s.bufs = append(s.bufs, tail)
		s.tail = ID(len(s.bufs) - 1)
	}
	off := tail.Len()
	tail.append(data)
	return s.tail, off, len(data)
}

// InsertAt splices data into buffer id at pos, in place. It fails if id is
// not the current tail buffer or there is no room left in its backing
// array.
func (s *Store) InsertAt(id ID, pos int, data []byte) bool {
	if id == Nil || id != s.tail {
		return false
	}
	return s.bufs[id].insertAt(pos, data)
}

// DeleteAt removes n bytes at pos from buffer id, in place. It fails if id
// is not the current tail buffer.
func (s *Store) DeleteAt(id ID, pos, n int) bool {
	if id == Nil || id != s.tail {
		return false
	}
	return s.bufs[id].deleteAt(pos, n)
}

// IsTailEdge reports whether the byte range [off, off+length) sits exactly
// at the end of the current tail buffer's used region, the condition under
// which a subsequent insert or delete can grow or shrink it in place.
func (s *Store) IsTailEdge(id ID, off, length int) bool {
	if id == Nil || id != s.tail {
		return false
	}
	return off+length == s.bufs[id].Len()
}

// Len reports the number of bytes currently stored in buffer id.
func (s *Store) Len(id ID) int { return s.bufs[id].Len() }

// Slice returns the length bytes of buffer id starting at off. The returned
// slice aliases the buffer's backing array and is only valid until the next
// mutation of that buffer.
func (s *Store) Slice(id ID, off, length int) []byte { return s.bufs[id].bytes(off, length) }

// BufferCount reports how many buffers the store has allocated, including
// any adopted read-only buffer.
func (s *Store) BufferCount() int { return len(s.bufs) }

// Close releases any memory-mapped buffers held by the store. Heap buffers
// are left for the garbage collector.
func (s *Store) Close() error {
	var first error
	for _, b := range s.bufs {
		if b.mmapped {
			if err := unmap(b.data); err != nil && first == nil {
				first = err
			}
		}
	}
	s.bufs = nil
	s.tail = Nil
	return first
}
