package paperforge

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the default API endpoint. A single trailing slash
// is stripped.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the per-call timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPClient sets a custom HTTP client. Its Timeout field is left
// untouched; the per-call timeout still applies on top of it.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeaders merges extra headers into every request. On key collision
// with the fixed Content-Type and Authorization headers, the extra value
// wins.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		if c.headers == nil {
			c.headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// WithHeader merges a single extra header into every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		if c.headers == nil {
			c.headers = make(map[string]string, 1)
		}
		c.headers[key] = value
	}
}

// WithLogger sets the logger used for diagnostic records.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables diagnostic records for every request and successful
// response. The Authorization value is masked. Debug output never alters
// control flow or returned data.
func WithDebug() Option {
	return func(c *Client) {
		c.debug = true
	}
}
