package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/fedipeek/fedipeek/internal/domain"
	"github.com/fedipeek/fedipeek/internal/httpserver/deps"
	"github.com/fedipeek/fedipeek/internal/logger"
	"github.com/fedipeek/fedipeek/internal/metrics"
)

// maxHostLen is the DNS limit on a full hostname.
const maxHostLen = 253

// Lookup fetches the metadata of the host named in ?host= and responds
// with the rendered HTML fragment. An unreachable host is still a 200:
// the offline block is content, not a server error.
func Lookup(d deps.Deps) http.HandlerFunc {
	now := d.TimeNow
	if now == nil {
		now = time.Now
	}

	return func(w http.ResponseWriter, r *http.Request) {
		host := strings.TrimSpace(r.URL.Query().Get("host"))
		if host == "" {
			// No network request for empty input.
			d.Metrics.LookupsTotal.WithLabelValues(metrics.OutcomeBadRequest).Inc()
			http.Error(w, "missing host parameter", http.StatusBadRequest)
			return
		}
		if !validHost(host) {
			d.Logger.Debug("rejected invalid host", logger.String("host", host))
			d.Metrics.LookupsTotal.WithLabelValues(metrics.OutcomeBadRequest).Inc()
			http.Error(w, "invalid host", http.StatusBadRequest)
			return
		}

		d.Logger.Info("lookup request", logger.String("host", host))

		// The request context flows into the fetch, so a client that
		// navigated away cancels the in-flight upstream call.
		start := now()
		meta, err := d.Fetcher.Fetch(r.Context(), host)
		d.Metrics.FetchDuration.Observe(now().Sub(start).Seconds())

		var res *domain.Result
		if err != nil {
			d.Logger.Info("lookup failed",
				logger.String("host", host),
				logger.Error(err))
			d.Metrics.LookupsTotal.WithLabelValues(metrics.OutcomeOffline).Inc()
			res = domain.OfflineResult(host, err)
		} else {
			d.Metrics.LookupsTotal.WithLabelValues(metrics.OutcomeOnline).Inc()
			res = domain.OnlineResult(host, meta)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if err := d.Renderer.Render(w, res); err != nil {
			d.Logger.Error("failed to render result",
				logger.String("host", host),
				logger.Error(err))
		}
	}
}

// validHost rejects anything that is not a bare hostname: schemes,
// paths, embedded whitespace, or over-long names.
func validHost(host string) bool {
	if len(host) > maxHostLen {
		return false
	}
	if strings.ContainsAny(host, "/\\ \t") {
		return false
	}
	if strings.Contains(host, "://") {
		return false
	}
	return true
}
