package deps

import (
	"context"
	"time"

	"github.com/fedipeek/fedipeek/internal/domain"
	"github.com/fedipeek/fedipeek/internal/logger"
	"github.com/fedipeek/fedipeek/internal/metrics"
	"github.com/fedipeek/fedipeek/internal/render"
)

// MetaFetcher retrieves and normalizes a host's metadata document.
// Satisfied by instance.Fetcher; handler tests swap in stubs.
type MetaFetcher interface {
	Fetch(ctx context.Context, host string) (*domain.Metadata, error)
}

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	TimeNow      func() time.Time // for testing, defaults to time.Now
	AllowedHosts []string         // Host headers allowed to access the server
	AllowedCIDRS []string         // IPs allowed to access ops endpoints
	TrustProxy   bool             // true if running behind a trusted reverse proxy (e.g., cloudflared)

	Fetcher  MetaFetcher      // upstream meta fetch (POST with GET fallback)
	Renderer *render.Renderer // result -> HTML fragment
	Metrics  *metrics.Metrics // lookup counters and fetch timings
}
