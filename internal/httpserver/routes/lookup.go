package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/fedipeek/fedipeek/internal/httpserver/deps"
	"github.com/fedipeek/fedipeek/internal/httpserver/handlers"
	"github.com/fedipeek/fedipeek/internal/httpserver/mw"
)

func init() { Register(registerLookup) }

func registerLookup(r chi.Router, d deps.Deps) {
	sub := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))
	sub.Get("/", handlers.Index(d))
	sub.Get("/api/lookup", handlers.Lookup(d))
}
