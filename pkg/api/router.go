package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validity"
)

// DefaultMaxBodyBytes bounds request bodies when no limit is configured.
const DefaultMaxBodyBytes int64 = 1 << 20

type routerConfig struct {
	log     *slog.Logger
	ev      *validity.Evaluator
	metrics *Metrics
	maxBody int64
}

// Option configures NewRouter.
type Option func(*routerConfig)

// WithLogger sets the logger for request logs and the evaluator's debug
// output. nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(c *routerConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// WithEvaluator overrides the evaluator built from the logger.
func WithEvaluator(ev *validity.Evaluator) Option {
	return func(c *routerConfig) { c.ev = ev }
}

// WithMetrics shares a Metrics instance, for example to read counters in
// tests.
func WithMetrics(m *Metrics) Option {
	return func(c *routerConfig) { c.metrics = m }
}

// WithMaxBodyBytes limits the size of request bodies. Non-positive values
// keep DefaultMaxBodyBytes.
func WithMaxBodyBytes(n int64) Option {
	return func(c *routerConfig) {
		if n > 0 {
			c.maxBody = n
		}
	}
}

// NewRouter wires the service routes:
//
//	POST /v1/validity  evaluate an HTML document or a snapshot
//	GET  /healthz      liveness probe
//	GET  /metrics      Prometheus metrics
func NewRouter(opts ...Option) http.Handler {
	cfg := &routerConfig{
		log:     logger.NewNop(),
		maxBody: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.metrics == nil {
		cfg.metrics = NewMetrics()
	}
	if cfg.ev == nil {
		cfg.ev = validity.New(validity.WithLogger(cfg.log.With(logger.Component("validity"))))
	}
	log := cfg.log.With(logger.Component("api"))

	r := chi.NewRouter()
	r.Use(RequestID, logRequests(log, cfg.metrics), recoverPanics(log))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, ErrMethodNotAllowed)
	})

	r.Get("/healthz", healthz)
	r.Method(http.MethodGet, "/metrics", cfg.metrics.Handler())
	r.Route("/v1", func(r chi.Router) {
		r.Method(http.MethodPost, "/validity", &validityHandler{
			ev:      cfg.ev,
			log:     log,
			metrics: cfg.metrics,
			maxBody: cfg.maxBody,
		})
	})
	return r
}
