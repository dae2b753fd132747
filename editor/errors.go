package editor

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange names the condition of a position or length falling
	// outside the current document, such as deleting past the end of the
	// text. Insert, Delete and Replace report that condition by returning
	// false; none of them returns ErrOutOfRange.
	ErrOutOfRange = errors.New("piecetext: position out of range")

	// ErrNotRegularFile is returned by Load when filename does not name a
	// regular file — a directory, device, or similar cannot be mapped.
	ErrNotRegularFile = errors.New("piecetext: not a regular file")

	// ErrIO wraps a failure of an underlying filesystem or mmap operation
	// performed by Load or Save. Use errors.As to recover the original
	// *os.PathError or syscall error.
	ErrIO = errors.New("piecetext: I/O failure")
)

func ioErrorf(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, op, err)
}

func wrapNotRegular(filename string) error {
	return fmt.Errorf("%w: %s", ErrNotRegularFile, filename)
}
