package socketlabs

import (
	"net/http"
	"time"
)

// Option is a functional option for configuring the client.
type Option func(*Config)

// WithEndpointURL overrides the Injection API endpoint.
func WithEndpointURL(endpoint string) Option {
	return func(c *Config) {
		c.EndpointURL = endpoint
	}
}

// WithProxyURL routes requests through the given HTTP proxy. The proxy
// applies to this client only.
func WithProxyURL(proxy string) Option {
	return func(c *Config) {
		c.ProxyURL = proxy
	}
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithMaxRecipients overrides the recipient cap applied by local validation.
func WithMaxRecipients(limit int) Option {
	return func(c *Config) {
		c.MaxRecipients = limit
	}
}

// WithHTTPClient supplies a custom HTTP client. The caller then owns all
// transport settings, including timeout and proxy.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}
