package integration

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedipeek/fedipeek/internal/httpserver/deps"
	"github.com/fedipeek/fedipeek/internal/httpserver/handlers"
	"github.com/fedipeek/fedipeek/internal/logger"
	"github.com/fedipeek/fedipeek/internal/metrics"
	"github.com/fedipeek/fedipeek/internal/render"
	"github.com/fedipeek/fedipeek/internal/sources/instance"
)

const metaURL = "https://example.social/api/meta"

// newLookupHandler wires the real fetcher (on a mock transport),
// mapper and renderer behind the lookup handler, mirroring app.New.
func newLookupHandler(transport *httpmock.MockTransport) (http.HandlerFunc, *metrics.Metrics) {
	m := metrics.New()
	fetcher := instance.NewFetcher(instance.Options{
		Timeout:    2 * time.Second,
		Transport:  transport,
		OnFallback: m.FallbacksTotal.Inc,
	})
	d := deps.Deps{
		Logger:   logger.New("error", true),
		Fetcher:  fetcher,
		Renderer: render.New(),
		Metrics:  m,
	}
	return handlers.Lookup(d), m
}

func TestLookupEndToEndOnline(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodPost, metaURL,
		httpmock.NewStringResponder(http.StatusOK, `{
			"softwareName": "misskey",
			"version": "2024.10",
			"description": "A friendly instance",
			"maintainerName": "Alice",
			"maintainerEmail": "alice@example.social",
			"repositoryUrl": "https://example.com/repo",
			"serverRules": ["Be nice", "No spam"]
		}`))

	handler, _ := newLookupHandler(transport)

	req := httptest.NewRequest(http.MethodGet, "/api/lookup?host=example.social", http.NoBody)
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Online")
	assert.Contains(t, body, "2024.10")
	assert.Contains(t, body, "A friendly instance")
	assert.Contains(t, body, "Alice")
	// Repository stands in for the missing inquiry URL.
	assert.Contains(t, body, "https://example.com/repo")
	assert.Contains(t, body, "Be nice")
	assert.Contains(t, body, "No spam")

	counts := transport.GetCallCountInfo()
	assert.Equal(t, 0, counts["GET "+metaURL])
}

func TestLookupEndToEndFallback(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodPost, metaURL,
		httpmock.NewStringResponder(http.StatusMethodNotAllowed, ""))
	transport.RegisterResponder(http.MethodGet, metaURL,
		httpmock.NewStringResponder(http.StatusOK, `{"version":"1.2.3"}`))

	handler, m := newLookupHandler(transport)

	req := httptest.NewRequest(http.MethodGet, "/api/lookup?host=example.social", http.NoBody)
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Online")
	assert.Contains(t, rec.Body.String(), "1.2.3")

	counts := transport.GetCallCountInfo()
	assert.Equal(t, 1, counts["POST "+metaURL])
	assert.Equal(t, 1, counts["GET "+metaURL])
	assert.Equal(t, float64(1), testutil.ToFloat64(m.FallbacksTotal))
}

func TestLookupEndToEndOffline(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodPost, metaURL,
		httpmock.NewStringResponder(http.StatusBadGateway, ""))
	transport.RegisterResponder(http.MethodGet, metaURL,
		httpmock.NewStringResponder(http.StatusServiceUnavailable, ""))

	handler, _ := newLookupHandler(transport)

	req := httptest.NewRequest(http.MethodGet, "/api/lookup?host=example.social", http.NoBody)
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Offline")
	assert.Contains(t, body, "GET returned HTTP 503")
}

func TestLookupEndToEndEscaping(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodPost, metaURL,
		httpmock.NewStringResponder(http.StatusOK,
			`{"description":"<script>alert('xss')</script>"}`))

	handler, _ := newLookupHandler(transport)

	req := httptest.NewRequest(http.MethodGet, "/api/lookup?host=example.social", http.NoBody)
	rec := httptest.NewRecorder()
	handler(rec, req)

	body := rec.Body.String()
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}
