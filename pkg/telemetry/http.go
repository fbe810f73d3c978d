package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"

	"github.com/phaseo/ai-stats-go/pkg/httpclient"
)

// Webhook headers mirror the attributes queue and topic sinks attach, so a
// receiver can route or dedupe without parsing the body.
const (
	HeaderEventID      = "X-AI-Stats-Event-ID"
	HeaderEndpointType = "X-AI-Stats-Endpoint-Type"
	HeaderOccurredAt   = "X-AI-Stats-Occurred-At"
)

const webhookUserAgent = httpclient.DefaultUserAgent + " webhook"

// httpSink posts each recorded entry to a webhook.
type httpSink struct {
	id      string
	method  string
	url     string
	headers map[string]string
	client  *resty.Client
	log     Logger
}

func newHTTPSink(_ context.Context, cfg SinkConfig, log Logger) (Sink, error) {
	if cfg.HTTP == nil {
		return nil, fmt.Errorf("sink %q missing http configuration", cfg.ID)
	}
	if strings.TrimSpace(cfg.HTTP.URL) == "" {
		return nil, fmt.Errorf("sink %q missing webhook url", cfg.ID)
	}
	method := strings.ToUpper(strings.TrimSpace(cfg.HTTP.Method))
	if method == "" {
		method = httpDefaultMethod
	}
	timeout := cfg.HTTP.TimeoutSeconds
	if timeout <= 0 {
		timeout = httpDefaultTimeoutSeconds
	}

	return &httpSink{
		id:      cfg.ID,
		method:  method,
		url:     cfg.HTTP.URL,
		headers: cfg.HTTP.Headers,
		client:  httpclient.NewRestyHTTPClient(time.Duration(timeout) * time.Second),
		log:     ensureLogger(log),
	}, nil
}

func (h *httpSink) ID() string   { return h.id }
func (h *httpSink) Type() string { return TypeHTTP }

// Publish sends the event as the JSON body. Configured headers are applied
// first; the event headers always win.
func (h *httpSink) Publish(ctx context.Context, evt Event) error {
	payload, err := evt.Marshal()
	if err != nil {
		return err
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("User-Agent", webhookUserAgent).
		SetHeaders(h.headers).
		SetHeaders(eventHeaders(evt)).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)

	resp, err := req.Execute(h.method, h.url)
	if err != nil {
		return fmt.Errorf("webhook %s %s: %w", h.method, h.url, err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook rejected event %s with status %d: %s", evt.ID, resp.StatusCode(), bodySnippet(resp.Body()))
	}
	h.log.DebugObj("webhook delivered entry", "sink_http_delivery", map[string]any{
		"sink_id":       h.id,
		"event_id":      evt.ID,
		"endpoint_type": evt.Type,
		"status":        resp.StatusCode(),
	})
	return nil
}

func eventHeaders(evt Event) map[string]string {
	headers := map[string]string{}
	attrs := evt.attributes()
	if id := attrs["event_id"]; id != "" {
		headers[HeaderEventID] = id
	}
	if typ := attrs["endpoint_type"]; typ != "" {
		headers[HeaderEndpointType] = typ
	}
	if !evt.OccurredAt.IsZero() {
		headers[HeaderOccurredAt] = evt.OccurredAt.Format(time.RFC3339Nano)
	}
	return headers
}

const maxSnippetBytes = 512

// bodySnippet returns at most maxSnippetBytes of body without splitting a
// character.
func bodySnippet(body []byte) string {
	if len(body) > maxSnippetBytes {
		n := maxSnippetBytes
		for n > 0 && !utf8.RuneStart(body[n]) {
			n--
		}
		body = body[:n]
	}
	return strings.TrimSpace(string(body))
}
