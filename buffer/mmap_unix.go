//go:build unix

package buffer

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MapReadOnly maps the entire contents of f into memory for reading. The
// mapping stays valid after f is closed; the caller is responsible for
// calling Close on the Store that adopts it (via AdoptReadOnly) to unmap it.
func MapReadOnly(f *os.File, size int) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap: %w", err)
	}
	return data, nil
}

// MapWritable maps the first size bytes of f for writing. It does not grow
// the file: f must already be at least size bytes long. It is used by an
// atomic save to write document content directly into the destination
// file's page cache.
func MapWritable(f *os.File, size int) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap: %w", err)
	}
	return data, nil
}

// Unmap releases a mapping previously returned by MapReadOnly or
// MapWritable.
func Unmap(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return unix.Munmap(data)
}

func unmap(data []byte) error { return Unmap(data) }
