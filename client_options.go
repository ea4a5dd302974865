package searchapi2

import (
	"net/http"
	"time"
)

// Option configures the client.
type Option func(*clientConfig)

type clientConfig struct {
	token      string
	timeout    time.Duration
	httpClient *http.Client
}

// WithToken sets the auth token forwarded to the API on every call.
func WithToken(token string) Option {
	return func(c *clientConfig) {
		c.token = token
	}
}

// WithTimeout sets the HTTP client timeout. Ignored when WithHTTPClient is
// also given.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient supplies a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = hc
	}
}
