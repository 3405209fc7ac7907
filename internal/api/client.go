package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/rickgao/skyblock-ah/internal/version"
)

// Client reads auction pages from the Hypixel public API.
//
// The API key is optional for the auction endpoints. When set it is sent
// as the API-Key header on every request, which raises the caller's rate
// limit. The key is fixed at construction.
type Client struct {
	baseURL    string // e.g. https://api.hypixel.net/v2, no trailing slash
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger

	// Retries apply per page request. Zero leaves retry policy to the caller.
	maxRetries   int
	retryBackoff time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a client for the API rooted at baseURL. An empty apiKey
// sends requests without the API-Key header. Retries are off unless
// WithRetries is given.
func NewClient(baseURL, apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		userAgent: version.UserAgent(),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:       slog.Default(),
		retryBackoff: time.Second,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout bounds each page request, including reading the body. Full
// pages are large, so keep this well above typical latency.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRetries retries 429 and 5xx answers up to max times, starting at
// backoff and doubling with jitter. A non-positive backoff keeps the
// default of one second.
func WithRetries(max int, backoff time.Duration) ClientOption {
	return func(c *Client) {
		if max > 0 {
			c.maxRetries = max
		}
		if backoff > 0 {
			c.retryBackoff = backoff
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}
