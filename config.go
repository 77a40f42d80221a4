package socketlabs

import (
	"net/http"
	"net/url"
	"time"

	"github.com/mirriamronoh/socketlabs-go/internal/core"
)

// DefaultEndpointURL is the production Injection API endpoint.
const DefaultEndpointURL = "https://inject.socketlabs.com/api/v1/email"

// Config holds the complete client configuration. It is read-only after the
// client is constructed; concurrent sends share nothing else.
type Config struct {
	// ServerID is the SocketLabs server id (required, positive).
	ServerID int

	// APIKey is the Injection API key for the server (required).
	APIKey string

	// EndpointURL overrides the Injection API endpoint (optional).
	EndpointURL string

	// ProxyURL routes requests through an HTTP proxy (optional). The proxy is
	// applied to this client only, never to process-wide HTTP defaults.
	ProxyURL string

	// Timeout bounds each HTTP request. It is transport configuration, not a
	// retry policy; the client never retries.
	Timeout time.Duration

	// MaxRecipients caps the recipient count accepted by local validation.
	// Defaults to the API's documented per-message limit.
	MaxRecipients int

	// HTTPClient overrides the underlying HTTP client (optional). When set,
	// the caller owns transport settings including Timeout and ProxyURL.
	HTTPClient *http.Client
}

// DefaultConfig returns a configuration with sensible defaults. ServerID and
// APIKey must still be supplied.
func DefaultConfig() Config {
	return Config{
		EndpointURL:   DefaultEndpointURL,
		Timeout:       60 * time.Second,
		MaxRecipients: core.DefaultMaxRecipients,
	}
}

// Validate checks the construction-time configuration. Credential values are
// checked per send, not here, so a misconfigured credential still resolves a
// send into a typed outcome rather than failing construction.
func (c *Config) Validate() error {
	if c.EndpointURL == "" {
		return &ValidationError{
			Field:   "endpoint_url",
			Message: "endpoint URL is required",
		}
	}
	if _, err := url.ParseRequestURI(c.EndpointURL); err != nil {
		return &ValidationError{
			Field:   "endpoint_url",
			Message: "endpoint URL is not a valid URL: " + c.EndpointURL,
		}
	}
	if c.ProxyURL != "" {
		if _, err := url.ParseRequestURI(c.ProxyURL); err != nil {
			return &ValidationError{
				Field:   "proxy_url",
				Message: "proxy URL is not a valid URL: " + c.ProxyURL,
			}
		}
	}
	if c.Timeout <= 0 {
		return &ValidationError{
			Field:   "timeout",
			Message: "timeout must be greater than 0",
		}
	}
	return nil
}
