package editor

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/tamberg/piecetext/buffer"
)

// Save writes the document to filename by way of a sibling temporary file
// that is renamed into place once fully written, so a crash or power loss
// mid-write never leaves filename truncated or half-updated. On success,
// Save clears the current undo boundary so Modified reports false until
// the next edit.
func (e *Editor) Save(filename string) error {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".*.tmp")
	if err != nil {
		return ioErrorf("create temp", err)
	}
	tmpName := tmp.Name()

	if err := saveInto(e, tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return ioErrorf("close temp", err)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		os.Remove(tmpName)
		return ioErrorf("rename", err)
	}

	e.savedAction = e.undo.Top()
	e.Snapshot()
	e.cfg.logger.Debug("editor saved", zap.String("filename", filename), zap.Int("size", e.Size()))
	return nil
}

func saveInto(e *Editor, f *os.File) error {
	size := e.Size()
	if size == 0 {
		return nil
	}
	if err := f.Truncate(int64(size)); err != nil {
		return ioErrorf("truncate", err)
	}
	data, err := buffer.MapWritable(f, size)
	if err != nil {
		return ioErrorf("mmap", err)
	}
	cur := 0
	e.Iterate(0, func(pos int, content []byte) bool {
		copy(data[cur:], content)
		cur += len(content)
		return true
	})
	if err := buffer.Unmap(data); err != nil {
		return ioErrorf("munmap", err)
	}
	return nil
}
