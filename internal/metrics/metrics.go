// Package metrics exposes Prometheus collectors and a health endpoint for the
// report stream.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "report_stream"

// Stats is a point-in-time summary served on /health.
type Stats struct {
	StartTime        time.Time `json:"start_time"`
	EventsReceived   uint64    `json:"events_received"`
	EventErrors      uint64    `json:"event_errors"`
	Heartbeats       uint64    `json:"heartbeats"`
	FetchRequests    uint64    `json:"fetch_requests"`
	SchemaFetches    uint64    `json:"schema_fetches"`
	CompositeCalls   uint64    `json:"composite_calls"`
	CompositeErrors  uint64    `json:"composite_errors"`
	ReportLines      uint64    `json:"report_lines"`
	Reconnects       uint64    `json:"reconnects"`
	LastEventTime    time.Time `json:"last_event_time,omitempty"`
	LastHeartbeat    time.Time `json:"last_heartbeat,omitempty"`
	LastError        string    `json:"last_error,omitempty"`
	LastErrorKind    string    `json:"last_error_kind,omitempty"`
	LastErrorTime    time.Time `json:"last_error_time,omitempty"`
	CompositeLatency string    `json:"composite_latency,omitempty"`
}

// Metrics holds the Prometheus collectors and the stats snapshot.
type Metrics struct {
	eventsReceived    prometheus.Counter
	heartbeats        prometheus.Counter
	fetchRequests     prometheus.Counter
	creditsReleased   prometheus.Counter
	schemaFetches     prometheus.Counter
	compositeCalls    *prometheus.CounterVec
	compositeDuration prometheus.Histogram
	reportLines       prometheus.Counter
	eventErrors       *prometheus.CounterVec
	reconnects        prometheus.Counter

	mu    sync.RWMutex
	stats Stats
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		eventsReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_received_total",
			Help:      "Total number of events delivered by the event bus",
		}),
		heartbeats: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "heartbeats_total",
			Help:      "Total number of keepalive responses without events",
		}),
		fetchRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_requests_total",
			Help:      "Total number of fetch requests sent on the stream",
		}),
		creditsReleased: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "credits_released_total",
			Help:      "Total number of stream credits returned after a request was fulfilled",
		}),
		schemaFetches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schema_fetches_total",
			Help:      "Total number of schema lookups sent to the event bus",
		}),
		compositeCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "composite_calls_total",
			Help:      "Total number of composite graph calls by outcome",
		}, []string{"outcome"}),
		compositeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "composite_call_duration_seconds",
			Help:      "Time taken by composite graph calls",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~5s
		}),
		reportLines: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_lines_total",
			Help:      "Total number of report lines written",
		}),
		eventErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_errors_total",
			Help:      "Total number of events that failed processing, by failure kind",
		}, []string{"kind"}),
		reconnects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconnects_total",
			Help:      "Total number of stream reconnect attempts",
		}),
		stats: Stats{StartTime: time.Now()},
	}

	reg.MustRegister(
		m.eventsReceived,
		m.heartbeats,
		m.fetchRequests,
		m.creditsReleased,
		m.schemaFetches,
		m.compositeCalls,
		m.compositeDuration,
		m.reportLines,
		m.eventErrors,
		m.reconnects,
	)
	return m
}

// NewUnregistered creates metrics on a private registry, for tests and tools.
func NewUnregistered() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) EventReceived() {
	m.eventsReceived.Inc()
	m.mu.Lock()
	m.stats.EventsReceived++
	m.stats.LastEventTime = time.Now()
	m.mu.Unlock()
}

func (m *Metrics) Heartbeat() {
	m.heartbeats.Inc()
	m.mu.Lock()
	m.stats.Heartbeats++
	m.stats.LastHeartbeat = time.Now()
	m.mu.Unlock()
}

func (m *Metrics) FetchRequestSent() {
	m.fetchRequests.Inc()
	m.mu.Lock()
	m.stats.FetchRequests++
	m.mu.Unlock()
}

func (m *Metrics) CreditReleased() {
	m.creditsReleased.Inc()
}

func (m *Metrics) SchemaFetched() {
	m.schemaFetches.Inc()
	m.mu.Lock()
	m.stats.SchemaFetches++
	m.mu.Unlock()
}

// CompositeCall records one composite graph call.
func (m *Metrics) CompositeCall(success bool, latency time.Duration) {
	outcome := "success"
	if !success {
		outcome = "error"
	}
	m.compositeCalls.WithLabelValues(outcome).Inc()
	m.compositeDuration.Observe(latency.Seconds())

	m.mu.Lock()
	m.stats.CompositeCalls++
	if !success {
		m.stats.CompositeErrors++
	}
	m.stats.CompositeLatency = latency.String()
	m.mu.Unlock()
}

func (m *Metrics) ReportLines(n int) {
	m.reportLines.Add(float64(n))
	m.mu.Lock()
	m.stats.ReportLines += uint64(n)
	m.mu.Unlock()
}

// EventFailed records an event that could not be processed.
func (m *Metrics) EventFailed(kind string) {
	m.eventErrors.WithLabelValues(kind).Inc()
	m.mu.Lock()
	m.stats.EventErrors++
	m.stats.LastErrorKind = kind
	m.stats.LastErrorTime = time.Now()
	m.mu.Unlock()
}

// RecordError keeps the message of the most recent error for /health.
func (m *Metrics) RecordError(err error) {
	if err == nil {
		return
	}
	m.mu.Lock()
	m.stats.LastError = err.Error()
	m.stats.LastErrorTime = time.Now()
	m.mu.Unlock()
}

func (m *Metrics) Reconnected() {
	m.reconnects.Inc()
	m.mu.Lock()
	m.stats.Reconnects++
	m.mu.Unlock()
}

// Snapshot returns a copy of the current stats
func (m *Metrics) Snapshot() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stats
}
