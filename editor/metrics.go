package editor

import "github.com/prometheus/client_golang/prometheus"

// metrics holds the optional Prometheus instrumentation for an Editor. The
// zero value has enabled == false, making every method a no-op, so an
// Editor built without WithMetrics pays only a field check per edit.
type metrics struct {
	enabled   bool
	pieces    prometheus.Gauge
	buffers   prometheus.Gauge
	undoDepth prometheus.Gauge
	redoDepth prometheus.Gauge
	cacheHits prometheus.Counter
	cacheMiss prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) metrics {
	if reg == nil {
		return metrics{}
	}
	m := metrics{
		enabled: true,
		pieces: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "piecetext", Name: "pieces", Help: "Number of pieces allocated in the piece graph arena.",
		}),
		buffers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "piecetext", Name: "buffers", Help: "Number of byte buffers allocated by the document's store.",
		}),
		undoDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "piecetext", Name: "undo_depth", Help: "Number of actions currently on the undo stack.",
		}),
		redoDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "piecetext", Name: "redo_depth", Help: "Number of actions currently on the redo stack.",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "piecetext", Name: "cache_hits_total", Help: "Edits served by the edit-coalescing fast path.",
		}),
		cacheMiss: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "piecetext", Name: "cache_misses_total", Help: "Edits that fell through to the slow path.",
		}),
	}
	reg.MustRegister(m.pieces, m.buffers, m.undoDepth, m.redoDepth, m.cacheHits, m.cacheMiss)
	return m
}

func (m metrics) hit() {
	if m.enabled {
		m.cacheHits.Inc()
	}
}

func (m metrics) miss() {
	if m.enabled {
		m.cacheMiss.Inc()
	}
}

func (m metrics) sync(e *Editor) {
	if !m.enabled {
		return
	}
	m.pieces.Set(float64(e.graph.PieceCount()))
	m.buffers.Set(float64(e.store.BufferCount()))
	m.undoDepth.Set(float64(e.undo.Len()))
	m.redoDepth.Set(float64(e.redo.Len()))
}
