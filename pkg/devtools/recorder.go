package devtools

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/phaseo/ai-stats-go/pkg/aistats"
	"github.com/phaseo/ai-stats-go/pkg/httpclient"
)

// EntryWriter persists recorded entries.
type EntryWriter interface {
	Save(ctx context.Context, entry Entry) error
}

// Publisher forwards recorded entries to external sinks. It returns how many
// sinks accepted the entry.
type Publisher interface {
	Publish(ctx context.Context, entry Entry) (int, error)
}

// Recorder is a Transport that records every exchange it forwards. Recording
// failures are logged and never change what the caller sees.
type Recorder struct {
	next           httpclient.Transport
	writer         EntryWriter
	publisher      Publisher
	assets         AssetWriter
	sessions       SessionWriter
	sessionOnce    sync.Once
	captureHeaders bool
	log            Logger
	now            func() time.Time
	newID          func() string
}

// RecorderOption customizes a Recorder.
type RecorderOption func(*Recorder)

func WithWriter(w EntryWriter) RecorderOption {
	return func(r *Recorder) { r.writer = w }
}

func WithPublisher(p Publisher) RecorderOption {
	return func(r *Recorder) { r.publisher = p }
}

// WithAssets stores binary image, audio and video responses through w and
// references them from the entry by path.
func WithAssets(w AssetWriter) RecorderOption {
	return func(r *Recorder) { r.assets = w }
}

// WithSessions registers the process session with w before the first entry
// is stored.
func WithSessions(w SessionWriter) RecorderOption {
	return func(r *Recorder) { r.sessions = w }
}

// WithCaptureHeaders stores request headers, with credentials redacted.
func WithCaptureHeaders(enabled bool) RecorderOption {
	return func(r *Recorder) { r.captureHeaders = enabled }
}

func WithLogger(log Logger) RecorderOption {
	return func(r *Recorder) {
		if log != nil {
			r.log = log
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) RecorderOption {
	return func(r *Recorder) { r.now = now }
}

// WithIDGenerator replaces the uuid based entry id generator.
func WithIDGenerator(gen func() string) RecorderOption {
	return func(r *Recorder) { r.newID = gen }
}

// NewRecorder wraps next.
func NewRecorder(next httpclient.Transport, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		next:  next,
		log:   httpclient.NopLogger(),
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Do forwards req to the wrapped transport and records the outcome.
func (r *Recorder) Do(ctx context.Context, req httpclient.Request) (httpclient.Response, error) {
	start := r.now()
	resp, err := r.next.Do(ctx, req)
	entry, asset := r.buildEntry(req, resp, err, start, r.now())
	r.record(context.WithoutCancel(ctx), entry, asset)
	return resp, err
}

type pendingAsset struct {
	path string
	data []byte
}

func (r *Recorder) buildEntry(req httpclient.Request, resp httpclient.Response, err error, start, end time.Time) (Entry, *pendingAsset) {
	typ := EndpointTypeFor(req.Operation)
	request := decodeBody(req.Body)

	entry := Entry{
		ID:         r.newID(),
		Type:       typ,
		Timestamp:  start.UnixMilli(),
		DurationMs: end.Sub(start).Milliseconds(),
		Request:    request,
		Metadata: Metadata{
			SDK:        SDKName,
			SDKVersion: SDKVersion,
			Model:      stringField(request, "model"),
			Provider:   extractProvider(nil, request),
		},
	}
	if stream, ok := request["stream"].(bool); ok {
		entry.Metadata.Stream = stream
	}
	if r.captureHeaders {
		entry.Metadata.Headers = redactHeaders(req.Headers)
	}

	if err != nil {
		entry.Error = &ErrorInfo{Message: err.Error(), Code: errorCode(err)}
		return entry, nil
	}

	body := resp.Body()
	response := decodeBody(body)
	entry.Response = response
	var asset *pendingAsset
	if kind, ok := AssetKindFor(typ); ok && r.assets != nil && isBinary(body) {
		asset = &pendingAsset{path: AssetPath(kind, entry.ID, body), data: body}
		response["asset_path"] = asset.path
	}
	entry.Metadata.StatusCode = resp.StatusCode()
	if m := stringField(response, "model"); m != "" {
		entry.Metadata.Model = m
	}
	if p := extractProvider(response, request); p != "" {
		entry.Metadata.Provider = p
	}
	entry.Metadata.Usage = extractUsage(response, typ)
	entry.Metadata.Cost = extractCost(response)

	var apiErr *aistats.APIError
	if errors.As(aistats.CheckStatus(resp), &apiErr) {
		entry.Error = &ErrorInfo{
			Message: apiErr.Message,
			Code:    "http_error",
			Status:  apiErr.StatusCode,
		}
	}
	return entry, asset
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, httpclient.ErrTransport):
		return "transport_error"
	default:
		return "error"
	}
}

func (r *Recorder) record(ctx context.Context, entry Entry, asset *pendingAsset) {
	if r.sessions != nil {
		r.sessionOnce.Do(func() { r.startSession(ctx) })
	}
	if asset != nil {
		if err := r.assets.SaveAsset(ctx, asset.path, asset.data); err != nil {
			delete(entry.Response, "asset_path")
			r.log.WarnObj("failed to store devtools asset", "asset", map[string]string{
				"id":    entry.ID,
				"path":  asset.path,
				"error": err.Error(),
			})
		}
	}
	if r.writer != nil {
		if err := r.writer.Save(ctx, entry); err != nil {
			r.log.WarnObj("failed to store devtools entry", "entry", map[string]string{
				"id":    entry.ID,
				"type":  string(entry.Type),
				"error": err.Error(),
			})
		}
	}
	if r.publisher != nil {
		delivered, err := r.publisher.Publish(ctx, entry)
		if err != nil {
			r.log.WarnObj("failed to publish devtools entry", "entry", map[string]any{
				"id":        entry.ID,
				"type":      string(entry.Type),
				"delivered": delivered,
				"error":     err.Error(),
			})
			return
		}
		r.log.DebugObj("devtools entry published", "entry", map[string]any{
			"id":        entry.ID,
			"delivered": delivered,
		})
	}
}

func (r *Recorder) startSession(ctx context.Context) {
	session, err := r.sessions.StartSession(ctx, NewSession(r.now()))
	if err != nil {
		r.log.WarnObj("failed to store devtools session", "error", err.Error())
		return
	}
	r.log.DebugObj("devtools session", "session", session)
}
