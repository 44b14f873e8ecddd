// Package pharmd is the HTTP client for the pharmacy backend service, the
// system of record for medicines, stock, alerts, predictions and sales.
// One logical operation maps to one request; the client never retries and
// never caches.
package pharmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// tunnelBypassHeader skips the ngrok interstitial warning page that
	// would otherwise replace JSON responses with HTML.
	tunnelBypassHeader = "ngrok-skip-browser-warning"

	// cacheBusterParam is appended to every read. The same client mutates
	// the collection it reads, so any cached response is already stale.
	cacheBusterParam = "_t"

	defaultTimeout = 30 * time.Second
)

// TokenSource supplies the current bearer token. An empty token means no
// Authorization header; the session object implements this.
type TokenSource interface {
	Token() string
}

// Config holds client construction parameters.
type Config struct {
	BaseURL string
	Tokens  TokenSource  // optional, requests are anonymous without it
	HTTP    *http.Client // optional, defaults to a 30s-timeout client

	// SkipTunnelWarning adds the ngrok bypass header to every request.
	SkipTunnelWarning bool

	// RequestsPerSec throttles outbound calls (the tunnel drops bursty
	// clients). Zero disables throttling.
	RequestsPerSec float64
	Burst          int
}

// Client talks to the pharmacy backend.
type Client struct {
	baseURL           string
	tokens            TokenSource
	httpClient        *http.Client
	limiter           *rate.Limiter
	skipTunnelWarning bool
}

// New creates a backend client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("BaseURL is required")
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSec > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), burst)
	}

	return &Client{
		baseURL:           strings.TrimSuffix(cfg.BaseURL, "/"),
		tokens:            cfg.Tokens,
		httpClient:        httpClient,
		limiter:           limiter,
		skipTunnelWarning: cfg.SkipTunnelWarning,
	}, nil
}

// newRequest builds a request with the standard header set. Reads get the
// cache-busting query parameter plus no-cache headers.
func (c *Client) newRequest(ctx context.Context, method, path string, body any, read bool) (*http.Request, error) {
	url := c.baseURL + path
	if read {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		url += fmt.Sprintf("%s%s=%d", sep, cacheBusterParam, time.Now().UnixMilli())
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s %s body: %w", method, path, err)
		}
		reader = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if read {
		req.Header.Set("Cache-Control", "no-cache")
		req.Header.Set("Pragma", "no-cache")
	}
	c.setCommonHeaders(req)
	return req, nil
}

func (c *Client) setCommonHeaders(req *http.Request) {
	if c.skipTunnelWarning {
		req.Header.Set(tunnelBypassHeader, "true")
	}
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
}

// do sends the request, waiting on the outbound limiter first. Network
// failures come back as TransportError, non-2xx responses as ServerError
// or NotFoundError with the body already read and flattened.
func (c *Client) do(req *http.Request, op string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return nil, &TransportError{Op: op, Err: err}
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := flattenDetail(raw, fmt.Sprintf("%s failed with status %d", op, resp.StatusCode))
		return nil, &ServerError{Status: resp.StatusCode, Message: msg}
	}

	return raw, nil
}

// asNotFound converts a 404 ServerError into a NotFoundError for the given
// entity; any other error passes through unchanged.
func asNotFound(err error, resource string, id int) error {
	var se *ServerError
	if errors.As(err, &se) && se.Status == http.StatusNotFound {
		return &NotFoundError{Resource: resource, ID: id}
	}
	return err
}
