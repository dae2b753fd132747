package editor

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/tamberg/piecetext/buffer"
)

// Option configures an Editor at construction time, following the same
// chainable functional-options style this module's cache configuration
// type uses.
type Option func(*config)

type config struct {
	bufferSize int
	logger     *zap.Logger
	registerer prometheus.Registerer
	clock      func() time.Time
}

func defaultConfig() config {
	return config{
		bufferSize: buffer.DefaultSize,
		logger:     zap.NewNop(),
		clock:      time.Now,
	}
}

func (c config) apply(opts []Option) config {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithLogger sets the structured logger used for Debug-level lifecycle
// events: editor creation, a successful Load, and a successful Save. Cache
// hits and misses and I/O failures are not logged. The default is a no-op
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithBufferSize overrides the minimum capacity of a freshly allocated
// append buffer. The default, buffer.DefaultSize, matches the reference
// implementation's fixed 1 MiB growth chunk.
func WithBufferSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.bufferSize = n
		}
	}
}

// WithMetrics registers gauges and counters describing editor internals —
// piece and buffer counts, undo/redo depth, cache hit rate — against reg.
// Metrics are disabled by default; passing a nil Registerer is a no-op.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *config) { c.registerer = reg }
}

// WithClock overrides the function used to timestamp Actions, for
// deterministic tests. The default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.clock = now
		}
	}
}
