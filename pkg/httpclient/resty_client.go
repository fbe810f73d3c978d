package httpclient

import (
	"context"
	"fmt"
	"net/textproto"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultUserAgent is sent when the caller does not set a User-Agent header.
const DefaultUserAgent = "ai-stats-go"

const contentTypeJSON = "application/json"

// RestyTransport adapts resty.Client to the Transport interface.
type RestyTransport struct {
	client    *resty.Client
	userAgent string
	log       Logger
}

// RestyOption customizes a RestyTransport.
type RestyOption func(*RestyTransport)

// WithLogger routes per-request debug logs and resty's own warnings to log.
func WithLogger(log Logger) RestyOption {
	return func(r *RestyTransport) {
		r.log = ensureLogger(log)
		r.client.SetLogger(restyLogger{log: r.log})
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) RestyOption {
	return func(r *RestyTransport) {
		if ua != "" {
			r.userAgent = ua
		}
	}
}

// NewRestyTransport creates a RestyTransport with the specified timeout.
// A zero timeout means no client-side deadline beyond the request context.
func NewRestyTransport(timeout time.Duration, opts ...RestyOption) *RestyTransport {
	r := &RestyTransport{
		client:    newRestyBaseClient(timeout),
		userAgent: DefaultUserAgent,
		log:       noopLogger{},
	}
	r.client.SetLogger(restyLogger{log: r.log})
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewRestyHTTPClient exposes a configured resty.Client for callers needing custom verbs.
func NewRestyHTTPClient(timeout time.Duration) *resty.Client {
	return newRestyBaseClient(timeout)
}

// newRestyBaseClient creates a new resty.Client with the specified timeout and
// automatic retries disabled.
func newRestyBaseClient(timeout time.Duration) *resty.Client {
	c := resty.New()
	c.SetTimeout(timeout)
	c.SetRetryCount(0)
	c.SetAllowGetMethodPayload(true)
	return c
}

// Do performs the request with the given context, method, URL, body and headers.
func (r *RestyTransport) Do(ctx context.Context, req Request) (Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	rr := r.client.R().SetContext(ctx)
	if len(req.Headers) > 0 {
		rr.SetHeaders(req.Headers)
	}
	if !hasHeader(req.Headers, "User-Agent") {
		rr.SetHeader("User-Agent", r.userAgent)
	}
	if req.Body != nil {
		if !hasHeader(req.Headers, "Content-Type") {
			rr.SetHeader("Content-Type", contentTypeJSON)
		}
		rr.SetBody(req.Body)
	}

	start := time.Now()
	resp, err := rr.Execute(req.Method, req.URL)
	if err != nil {
		r.log.DebugObj("transport request failed", "transport_error", map[string]any{
			"operation":  req.Operation,
			"method":     req.Method,
			"url":        req.URL,
			"error":      err.Error(),
			"elapsed_ms": time.Since(start).Milliseconds(),
		})
		return Response{}, newTransportError(req, err)
	}

	r.log.DebugObj("transport request completed", "transport_result", map[string]any{
		"operation":  req.Operation,
		"method":     req.Method,
		"url":        req.URL,
		"status":     resp.StatusCode(),
		"bytes":      len(resp.Body()),
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return NewResponse(resp.StatusCode(), resp.Body()), nil
}

// restyLogger adapts Logger to resty's printf-style logger.
type restyLogger struct {
	log Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.log.ErrorObj("resty error", "resty_message", fmt.Sprintf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.log.WarnObj("resty warning", "resty_message", fmt.Sprintf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.log.DebugObj("resty debug", "resty_message", fmt.Sprintf(format, v...))
}

// hasHeader reports whether headers carries name, compared canonically.
func hasHeader(headers map[string]string, name string) bool {
	want := textproto.CanonicalMIMEHeaderKey(name)
	for k := range headers {
		if textproto.CanonicalMIMEHeaderKey(k) == want {
			return true
		}
	}
	return false
}
