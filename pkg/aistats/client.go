package aistats

import (
	"context"
	"maps"
	"strings"

	"github.com/phaseo/ai-stats-go/pkg/httpclient"
)

// DefaultBaseURL is the public gateway endpoint.
const DefaultBaseURL = "https://api.phaseo.app/v1"

// Logger is the logging surface used by the client.
type Logger = httpclient.Logger

// Client binds a base URL and a set of default headers to a Transport.
//
// The header mapping is not safe for concurrent mutation. Share a Client across
// goroutines only if headers are no longer changed, or guard it externally.
type Client struct {
	baseURL    string
	headers    map[string]string
	transport  httpclient.Transport
	pathPolicy PathPolicy
	log        Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithPathPolicy selects how missing path parameters are handled.
func WithPathPolicy(p PathPolicy) Option {
	return func(c *Client) { c.pathPolicy = p }
}

// WithLogger attaches a logger.
func WithLogger(log Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a Client. Every trailing slash is stripped from baseURL.
func New(baseURL string, transport httpclient.Transport, opts ...Option) *Client {
	c := &Client{
		baseURL:    NormalizeBaseURL(baseURL),
		headers:    make(map[string]string),
		transport:  transport,
		pathPolicy: PathStrict,
		log:        httpclient.NopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NormalizeBaseURL removes all trailing slashes.
func NormalizeBaseURL(raw string) string {
	return strings.TrimRight(raw, "/")
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// PathPolicy returns the configured missing-parameter policy.
func (c *Client) PathPolicy() PathPolicy { return c.pathPolicy }

// Headers returns the live default-header mapping. Writes to it affect every
// later request.
func (c *Client) Headers() map[string]string { return c.headers }

// SetHeader sets a default header, replacing any previous value.
func (c *Client) SetHeader(name, value string) {
	c.headers[name] = value
}

// DelHeader removes a default header.
func (c *Client) DelHeader(name string) {
	delete(c.headers, name)
}

// SetAPIKey installs a bearer Authorization header.
func (c *Client) SetAPIKey(key string) {
	c.SetHeader("Authorization", "Bearer "+key)
}

// Request sends method to baseURL+path with the current default headers and
// returns the transport's result unchanged. path must begin with "/".
func (c *Client) Request(ctx context.Context, method, path string, body []byte) (httpclient.Response, error) {
	return c.send(ctx, "", method, path, body)
}

func (c *Client) send(ctx context.Context, operation, method, path string, body []byte) (httpclient.Response, error) {
	return c.transport.Do(ctx, httpclient.Request{
		Method:    method,
		URL:       c.baseURL + path,
		Body:      body,
		Headers:   maps.Clone(c.headers),
		Operation: operation,
	})
}
