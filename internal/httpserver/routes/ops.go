package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/fedipeek/fedipeek/internal/httpserver/deps"
	"github.com/fedipeek/fedipeek/internal/httpserver/handlers"
	"github.com/fedipeek/fedipeek/internal/httpserver/mw"
)

func init() { Register(registerOps) }

// Ops endpoints are CIDR-guarded: health probes and the Prometheus
// scrape should not be reachable from the open internet.
func registerOps(r chi.Router, d deps.Deps) {
	guarded := r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger))
	guarded.Get("/healthz", handlers.Healthz(d))
	guarded.Get("/readyz", handlers.Readyz(d))
	guarded.Handle("/metrics", d.Metrics.Handler())
}
