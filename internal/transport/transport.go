// Package transport performs the HTTP POST to the Injection API endpoint and
// hands back the raw status/body pair. It knows nothing about message shapes
// or result codes.
package transport

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sendgrid/rest"
)

// Response is the raw HTTP outcome handed to the response interpreter.
type Response struct {
	// StatusCode is the HTTP status code of the reply.
	StatusCode int

	// Body is the raw response body.
	Body []byte
}

// Options configures a transport client. Proxy configuration is per client;
// nothing here touches process-wide HTTP defaults.
type Options struct {
	// Endpoint is the Injection API URL to POST to.
	Endpoint string

	// UserAgent is sent as the User-Agent header on every request.
	UserAgent string

	// ProxyURL routes requests through an HTTP proxy (optional). Ignored when
	// HTTPClient is supplied.
	ProxyURL string

	// Timeout bounds each request when no HTTPClient is supplied.
	Timeout time.Duration

	// HTTPClient overrides the underlying HTTP client (optional). The caller
	// owns its transport settings, including any proxy.
	HTTPClient *http.Client
}

// Client posts JSON payloads to a fixed endpoint. It is safe for concurrent
// use.
type Client struct {
	endpoint  string
	userAgent string
	rest      rest.Client
}

// New creates a transport client for the given options.
func New(opts Options) (*Client, error) {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
		if opts.ProxyURL != "" {
			proxy, err := url.Parse(opts.ProxyURL)
			if err != nil {
				return nil, fmt.Errorf("invalid proxy url %q: %w", opts.ProxyURL, err)
			}
			httpClient.Transport = &http.Transport{Proxy: http.ProxyURL(proxy)}
		}
	}

	return &Client{
		endpoint:  opts.Endpoint,
		userAgent: opts.UserAgent,
		rest:      rest.Client{HTTPClient: httpClient},
	}, nil
}

// Post sends the JSON payload and returns the raw response. A returned error
// means no usable response arrived at all.
func (c *Client) Post(ctx context.Context, body []byte) (*Response, error) {
	req := rest.Request{
		Method:  rest.Post,
		BaseURL: c.endpoint,
		Headers: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
			"User-Agent":   c.userAgent,
		},
		Body: body,
	}

	resp, err := c.rest.SendWithContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("post to %s failed: %w", c.endpoint, err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: []byte(resp.Body)}, nil
}
