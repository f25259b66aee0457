package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pulsekit/pulse/internal/api/handler"
	apimw "github.com/pulsekit/pulse/internal/api/middleware"
	"github.com/pulsekit/pulse/internal/metrics"
	"github.com/pulsekit/pulse/internal/probe"
	"github.com/pulsekit/pulse/internal/repository"
)

// Deps carries everything the router needs. Repo is nil when no database is
// configured; the status handler then omits the heartbeat field.
type Deps struct {
	InstanceID string
	StartedAt  time.Time
	Probes     *probe.Registry
	Repo       repository.HeartbeatRepository
	Metrics    *metrics.Metrics
	Registry   prometheus.Gatherer
	RateLimit  int
	Logger     *zap.Logger
}

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
// Unknown paths get chi's default 404 and wrong methods its default 405.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer)          // recover panics, return 500
	r.Use(chimw.RealIP)             // trust X-Forwarded-For / X-Real-IP
	r.Use(chimw.RequestSize(1<<20)) // 1 MB max request body
	r.Use(apimw.CorrelationID)      // X-Correlation-ID inject / echo
	r.Use(apimw.RequestLogger(d.Logger))
	r.Use(apimw.Instrument(d.Metrics))
	r.Use(apimw.Throttle(d.RateLimit))

	// --- handler instances ---
	hh := handler.NewHealthHandler()
	rh := handler.NewReadyHandler(d.Probes)
	sh := handler.NewStatusHandler(d.InstanceID, d.StartedAt, d.Repo, d.Logger)

	// --- routes ---
	// Prometheus scrape endpoint (for Prometheus server / Grafana)
	r.Handle("/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", hh.Health)
		r.Get("/ready", rh.Ready)
		r.Get("/status", sh.Status)
	})

	return r
}
