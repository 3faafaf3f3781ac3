// Package server exposes the mapper over HTTP: the current catalog as Turtle
// on GET, catalog import on POST.
package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/digdirlab/atlasdcat/catalog"
	"github.com/digdirlab/atlasdcat/graph"
	"github.com/digdirlab/atlasdcat/mapper"
)

// Server serves the catalog endpoints. The mapper is single-threaded, so
// every request holds the mutex for the full fetch-map cycle; concurrent
// requests queue rather than interleave.
type Server struct {
	mu sync.Mutex
	m  *mapper.Mapper

	js      jetstream.JetStream
	subject string

	logger  *slog.Logger
	metrics *metrics
}

// Option configures a Server.
type Option func(*Server)

// WithLogger replaces the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithPublisher publishes catalog updates on the given JetStream subject
// after a successful import. A nil client disables publishing.
func WithPublisher(js jetstream.JetStream, subject string) Option {
	return func(s *Server) {
		s.js = js
		s.subject = subject
	}
}

// New creates a Server around m.
func New(m *mapper.Mapper, opts ...Option) *Server {
	s := &Server{
		m:       m,
		logger:  slog.Default(),
		metrics: newMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetMapper swaps the mapper, typically after a config reload.
func (s *Server) SetMapper(m *mapper.Mapper) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = m
}

// Handler returns the route mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /catalog", s.instrument("get_catalog", s.handleGetCatalog))
	mux.HandleFunc("POST /catalog", s.instrument("post_catalog", s.handlePostCatalog))
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	return mux
}

// handleGetCatalog fetches the glossary, maps it and returns Turtle. Per-term
// mapping errors do not fail the request; the remaining catalog is still
// valid and the skipped terms are logged.
func (s *Server) handleGetCatalog(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.m.Fetch(r.Context()); err != nil {
		s.logger.Error("Glossary fetch failed", "error", err)
		http.Error(w, "glossary unavailable", http.StatusBadGateway)
		return
	}

	cat, err := s.m.MapGlossaryTermsToDatasetCatalog()
	if err != nil {
		s.metrics.mappingErrors.Inc()
		s.logger.Warn("Terms skipped during mapping", "error", err)
	}

	w.Header().Set("Content-Type", "text/turtle; charset=utf-8")
	if err := cat.WriteTurtle(w); err != nil {
		s.logger.Error("Turtle serialization failed", "error", err)
	}
}

// handlePostCatalog imports a Turtle catalog into the glossary and saves it.
func (s *Server) handlePostCatalog(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat, err := catalog.ParseTurtle(r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid turtle: %v", err), http.StatusBadRequest)
		return
	}

	if err := s.m.Fetch(r.Context()); err != nil {
		s.logger.Error("Glossary fetch failed", "error", err)
		http.Error(w, "glossary unavailable", http.StatusBadGateway)
		return
	}
	if err := s.m.MapDatasetCatalogToGlossaryTerms(cat); err != nil {
		s.metrics.mappingErrors.Inc()
		http.Error(w, fmt.Sprintf("mapping failed: %v", err), http.StatusUnprocessableEntity)
		return
	}
	if err := s.m.Save(r.Context()); err != nil {
		s.logger.Error("Glossary save failed", "error", err)
		http.Error(w, "glossary save failed", http.StatusBadGateway)
		return
	}

	if err := graph.PublishCatalogUpdate(r.Context(), s.js, s.subject, cat); err != nil {
		// The import succeeded; a failed notification is not the client's problem.
		s.logger.Warn("Catalog update publish failed", "error", err)
	}

	s.logger.Info("Catalog imported", "datasets", len(cat.Datasets))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

// metrics are registered on a private registry so multiple Server instances
// can coexist in one process.
type metrics struct {
	registry      *prometheus.Registry
	requests      *prometheus.HistogramVec
	mappingErrors prometheus.Counter
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	return &metrics{
		registry: reg,
		requests: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name: "atlasdcat_request_duration_seconds",
			Help: "Duration of catalog endpoint requests.",
		}, []string{"handler", "code"}),
		mappingErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "atlasdcat_mapping_errors_total",
			Help: "Requests during which one or more terms failed to map.",
		}),
	}
}

func (s *Server) instrument(name string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
			s.metrics.requests.WithLabelValues(name, fmt.Sprint(sw.code)).Observe(v)
		}))
		defer timer.ObserveDuration()
		h(sw, r)
	}
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}
