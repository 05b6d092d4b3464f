package metrics

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap/zaptest"
)

func TestCounters(t *testing.T) {
	m := NewUnregistered()

	m.EventReceived()
	m.EventReceived()
	m.Heartbeat()
	m.FetchRequestSent()
	m.SchemaFetched()
	m.CompositeCall(true, 20*time.Millisecond)
	m.CompositeCall(false, 30*time.Millisecond)
	m.ReportLines(3)
	m.EventFailed("decode")
	m.RecordError(errors.New("bad payload"))
	m.Reconnected()

	if got := testutil.ToFloat64(m.eventsReceived); got != 2 {
		t.Errorf("events_received_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.compositeCalls.WithLabelValues("error")); got != 1 {
		t.Errorf("composite_calls_total{outcome=error} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.eventErrors.WithLabelValues("decode")); got != 1 {
		t.Errorf("event_errors_total{kind=decode} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.reportLines); got != 3 {
		t.Errorf("report_lines_total = %v, want 3", got)
	}

	stats := m.Snapshot()
	if stats.EventsReceived != 2 || stats.Heartbeats != 1 || stats.SchemaFetches != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.CompositeCalls != 2 || stats.CompositeErrors != 1 {
		t.Errorf("composite stats = %d/%d", stats.CompositeCalls, stats.CompositeErrors)
	}
	if stats.LastErrorKind != "decode" || stats.LastError != "bad payload" {
		t.Errorf("last error = %q (%q)", stats.LastError, stats.LastErrorKind)
	}
	if stats.Reconnects != 1 {
		t.Errorf("reconnects = %d", stats.Reconnects)
	}
}

func TestHealthAndMetricsRoutes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.EventReceived()

	srv := NewServer(0, m, reg, zaptest.NewLogger(t))
	router := srv.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("/health status = %d", rec.Code)
	}
	var health HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("decode /health: %v", err)
	}
	if health.Status != "healthy" || health.Stats.EventsReceived != 1 {
		t.Errorf("health = %+v", health)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("/metrics status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "report_stream_events_received_total 1") {
		t.Errorf("/metrics missing events counter:\n%s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /health status = %d, want 405", rec.Code)
	}
}
