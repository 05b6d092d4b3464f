package metrics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// HealthResponse is the JSON response for /health
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
	Stats  Stats  `json:"stats"`
}

// Server serves /health and /metrics.
type Server struct {
	metrics  *Metrics
	gatherer prometheus.Gatherer
	server   *http.Server
	logger   *zap.Logger
}

// NewServer creates a health server listening on port.
func NewServer(port int, m *Metrics, gatherer prometheus.Gatherer, logger *zap.Logger) *Server {
	s := &Server{
		metrics:  m,
		gatherer: gatherer,
		logger:   logger.With(zap.String("component", "health")),
	}
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Router returns the HTTP routes.
func (s *Server) Router() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	return router
}

// Start serves in the background.
func (s *Server) Start() {
	s.logger.Info("starting health server", zap.String("address", s.server.Addr))
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("health server error", zap.Error(err))
		}
	}()
}

// Stop gracefully stops the health server
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats := s.metrics.Snapshot()
	response := HealthResponse{
		Status: "healthy",
		Uptime: time.Since(stats.StartTime).Round(time.Second).String(),
		Stats:  stats,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.logger.Error("failed to encode health check response", zap.Error(err))
	}
}
