package notify

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/custodia-labs/pizza-hunt/internal/core/ports/driven"
)

// Ensure Metrics implements the interface.
var _ driven.Notifier = (*Metrics)(nil)

// Metrics counts replay outcomes.
type Metrics struct {
	flushedRecords prometheus.Counter
	flushes        prometheus.Counter
	failures       prometheus.Counter
}

// NewMetrics creates replay counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		flushedRecords: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pizzahunt_replay_flushed_records_total",
			Help: "Queued records delivered by replay",
		}),
		flushes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pizzahunt_replay_flushes_total",
			Help: "Replays that delivered and cleared the queue",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pizzahunt_replay_failures_total",
			Help: "Replays that left the queue untouched",
		}),
	}

	for _, c := range []prometheus.Collector{m.flushedRecords, m.flushes, m.failures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Flushed counts delivered records.
func (m *Metrics) Flushed(count int) {
	m.flushes.Inc()
	m.flushedRecords.Add(float64(count))
}

// Failed counts a failed replay.
func (m *Metrics) Failed(error) {
	m.failures.Inc()
}
