package handlers

import (
	"net/http"

	"github.com/fedipeek/fedipeek/internal/httpserver/deps"
	"github.com/fedipeek/fedipeek/internal/logger"
	"github.com/fedipeek/fedipeek/internal/web"
)

// Index serves the embedded lookup page.
func Index(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(web.IndexHTML); err != nil {
			d.Logger.Debug("failed to write index page", logger.Error(err))
		}
	}
}
