package instance

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/fedipeek/fedipeek/internal/logger"
	"github.com/fedipeek/fedipeek/internal/utils"
)

// MetaPath is the well-known metadata path queried on every host.
const MetaPath = "/api/meta"

// DefaultTimeout is the shared deadline covering both fetch attempts.
const DefaultTimeout = 5 * time.Second

// maxBodyBytes caps how much of a response body we are willing to parse.
const maxBodyBytes = 1 << 20

// StatusError reports a non-2xx response from the remote host.
type StatusError struct {
	Method string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned HTTP %d", e.Method, e.Code)
}

// Options configures a metadata Client.
type Options struct {
	Timeout   time.Duration     // shared deadline for POST + GET (default 5s)
	UserAgent string            // User-Agent header sent upstream
	Transport http.RoundTripper // override for tests; nil = default transport
	Logger    logger.Logger

	// OnFallback is invoked when the POST leg fails and the GET
	// fallback is about to run. Used for metrics; may be nil.
	OnFallback func()
}

// Client fetches a host's metadata document.
//
// The fetch strategy is POST-first with a single GET fallback: some
// servers only accept POST on the meta path, others only GET. Both
// attempts run under one deadline clock; the POST leg's failure is
// logged and swallowed so the GET still runs.
type Client struct {
	http       *http.Client
	timeout    time.Duration
	userAgent  string
	logger     logger.Logger
	onFallback func()
}

// NewClient creates a metadata client.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := opts.Transport
	if transport == nil {
		transport = &http.Transport{
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return (&net.Dialer{
					Timeout:   timeout,
					KeepAlive: 0,
				}).DialContext(ctx, network, addr)
			},
			TLSHandshakeTimeout: timeout,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
			DisableKeepAlives: true,
		}
	}

	return &Client{
		// No client-level timeout: the deadline is carried by the
		// context so it spans both attempts instead of resetting
		// between POST and GET.
		http:       &http.Client{Transport: transport},
		timeout:    timeout,
		userAgent:  opts.UserAgent,
		logger:     opts.Logger,
		onFallback: opts.OnFallback,
	}
}

// FetchDocument retrieves and parses https://<host>/api/meta.
//
// POST with an empty JSON body is tried first; any POST-level failure
// (non-2xx including 404/405, transport error, timeout, unparsable
// body) triggers exactly one GET fallback on the same URL. A GET-level
// failure is terminal and becomes the single surfaced error.
func (c *Client) FetchDocument(ctx context.Context, host string) (*MetaDocument, error) {
	url := fmt.Sprintf("https://%s%s", host, MetaPath)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	doc, err := c.attempt(ctx, http.MethodPost, url)
	if err == nil {
		return doc, nil
	}

	if c.logger != nil {
		c.logger.Debug("meta POST failed, falling back to GET",
			logger.String("host", host),
			logger.Error(err))
	}
	if c.onFallback != nil {
		c.onFallback()
	}

	doc, err = c.attempt(ctx, http.MethodGet, url)
	if err != nil {
		return nil, fmt.Errorf("meta fetch failed for %s: %w", host, err)
	}
	return doc, nil
}

func (c *Client) attempt(ctx context.Context, method, url string) (*MetaDocument, error) {
	var body io.Reader = http.NoBody
	if method == http.MethodPost {
		body = strings.NewReader("{}")
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", method, err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Method: method, Code: resp.StatusCode}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	doc, err := ParseMetaDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse meta response: %w", err)
	}
	return doc, nil
}
