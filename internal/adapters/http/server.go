// Package http exposes classification over a small JSON API.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mestiri/wrangler/internal/metrics"
	"github.com/mestiri/wrangler/pkg/ports"
)

// maxSnapshotBytes bounds uploaded snapshot documents.
const maxSnapshotBytes = 32 << 20

// Classifier is the engine surface the server needs.
type Classifier interface {
	ScanSnapshot(ctx context.Context, data []byte) (*ports.ScanRecord, error)
}

// Server handles classification requests.
type Server struct {
	classifier Classifier
	logger     *slog.Logger
}

// NewHandler builds the HTTP handler: POST /v1/classify accepts a YAML scene
// snapshot and returns the scan record; /metrics serves the Prometheus
// registry.
func NewHandler(c Classifier, logger *slog.Logger, m *metrics.Metrics) http.Handler {
	s := &Server{classifier: c, logger: logger}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Get("/v1/healthz", s.healthz)
	r.Post("/v1/classify", s.classify)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) classify(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxSnapshotBytes))
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	if len(data) == 0 {
		http.Error(w, "Empty snapshot", http.StatusBadRequest)
		return
	}

	rec, err := s.classifier.ScanSnapshot(r.Context(), data)
	if err != nil {
		s.logger.Warn("classify request failed", "err", err)
		http.Error(w, fmt.Sprintf("Classify error: %v", err), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rec); err != nil {
		s.logger.Warn("classify encode failed", "err", err)
	}
}
