package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/fedipeek/fedipeek/internal/httpserver/deps"
)

// Registrar mounts a group of routes on the router. Route files
// self-register from init(), so adding an endpoint never touches
// server wiring.
type Registrar func(r chi.Router, d deps.Deps)

var registry []Registrar

// Register adds a registrar to the registry.
func Register(reg Registrar) {
	registry = append(registry, reg)
}

// RegisterAll mounts every registered route group. Called once from
// server.New().
func RegisterAll(r chi.Router, d deps.Deps) {
	for _, reg := range registry {
		reg(r, d)
	}
}
