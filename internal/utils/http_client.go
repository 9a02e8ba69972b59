package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.WithBaseURL("https://example.com"))
//	resp, err := client.R().Get("/status")
type HTTPClient struct {
	*resty.Client
}

// Option configures the underlying resty.Client during construction.
type Option func(*resty.Client)

// WithBaseURL sets the base URL every request path is resolved against.
func WithBaseURL(baseURL string) Option {
	return func(c *resty.Client) {
		c.SetBaseURL(baseURL)
	}
}

// WithTimeout bounds the total duration of each outbound request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *resty.Client) {
		c.SetTimeout(timeout)
	}
}

// NewHTTPClient creates and returns a new HTTPClient instance with a
// default-configured underlying resty.Client, adjusted by opts.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(opts ...Option) *HTTPClient {
	client := resty.New()
	for _, opt := range opts {
		opt(client)
	}

	return &HTTPClient{Client: client}
}
