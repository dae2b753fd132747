// Package editor implements an in-memory piece-table text buffer with
// unlimited undo and redo, modeled on the piece chain used by the vis text
// editor: a document is a sequence of pieces, each a view into either an
// immutable memory-mapped source file or an append-only edit buffer, and
// every edit is a splice of that sequence rather than a copy of its bytes.
package editor

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/tamberg/piecetext/buffer"
	"github.com/tamberg/piecetext/history"
	"github.com/tamberg/piecetext/piece"
)

// Editor owns a single document's piece graph, its backing buffers, and its
// undo/redo history. An Editor is not safe for concurrent use: callers that
// share one across goroutines must serialize access themselves.
type Editor struct {
	cfg config

	filename string
	graph    *piece.Graph
	store    *buffer.Store

	undo, redo    history.Stack
	currentAction *history.Action
	savedAction   *history.Action
	entropy       *ulid.MonotonicEntropy
	cachePiece    piece.ID

	metrics metrics
	closed  bool
}

func newEditor(opts ...Option) *Editor {
	cfg := defaultConfig().apply(opts)
	seed := rand.New(rand.NewSource(cfg.clock().UnixNano()))
	return &Editor{
		cfg:        cfg,
		graph:      piece.NewGraph(),
		store:      buffer.NewStore(cfg.bufferSize),
		entropy:    ulid.Monotonic(seed, 0),
		cachePiece: piece.Nil,
		metrics:    newMetrics(cfg.registerer),
	}
}

// NewEmpty returns an Editor over a new, empty document.
func NewEmpty(opts ...Option) *Editor {
	e := newEditor(opts...)
	e.cfg.logger.Debug("editor created", zap.String("source", "empty"))
	return e
}

// Size reports the current length of the document, in bytes.
func (e *Editor) Size() int { return e.graph.Size() }

// Filename reports the path the Editor was loaded from, or "" for a
// document created with NewEmpty.
func (e *Editor) Filename() string { return e.filename }

// Close releases the Editor's resources, unmapping any memory-mapped file
// it adopted. An Editor must not be used after Close returns.
func (e *Editor) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	e.undo.Clear()
	e.redo.Clear()
	e.currentAction = nil
	e.cachePiece = piece.Nil
	return e.store.Close()
}

func (e *Editor) newActionID(t time.Time) string {
	id, err := ulid.New(ulid.Timestamp(t), e.entropy)
	if err != nil {
		// Entropy reads only fail if more than 2^80 IDs are minted within
		// the same millisecond, which a single-process editor cannot do.
		panic(err)
	}
	return id.String()
}
