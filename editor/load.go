package editor

import (
	"os"

	"go.uber.org/zap"

	"github.com/tamberg/piecetext/buffer"
	"github.com/tamberg/piecetext/piece"
)

// Load returns an Editor over the contents of filename, which is
// memory-mapped read-only for the lifetime of the returned Editor. The
// mapping is never written to; every edit is recorded in separate
// append-only buffers, and the original file is left untouched until Save
// is called.
func Load(filename string, opts ...Option) (*Editor, error) {
	e := newEditor(opts...)

	f, err := os.Open(filename)
	if err != nil {
		return nil, ioErrorf("open", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, ioErrorf("stat", err)
	}
	if !info.Mode().IsRegular() {
		return nil, wrapNotRegular(filename)
	}

	size := int(info.Size())
	data, err := buffer.MapReadOnly(f, size)
	if err != nil {
		return nil, ioErrorf("mmap", err)
	}
	if size > 0 {
		bufID := e.store.AdoptReadOnly(data)
		e.graph = piece.NewGraphWithContent(piece.Content{Buf: bufID, Off: 0, Len: size})
	}

	e.filename = filename
	e.cfg.logger.Debug("editor loaded", zap.String("filename", filename), zap.Int("size", size))
	return e, nil
}
