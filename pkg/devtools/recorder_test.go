package devtools

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/phaseo/ai-stats-go/pkg/httpclient"
)

type memoryWriter struct {
	mu      sync.Mutex
	entries []Entry
	err     error
}

func (w *memoryWriter) Save(_ context.Context, e Entry) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.entries = append(w.entries, e)
	return nil
}

type fakePublisher struct {
	published []Entry
	err       error
}

func (p *fakePublisher) Publish(_ context.Context, e Entry) (int, error) {
	p.published = append(p.published, e)
	if p.err != nil {
		return 0, p.err
	}
	return 1, nil
}

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) InfoObj(string, string, interface{})  {}
func (l *recordingLogger) DebugObj(string, string, interface{}) {}
func (l *recordingLogger) WarnObj(msg string, _ string, _ interface{}) {
	l.warnings = append(l.warnings, msg)
}
func (l *recordingLogger) ErrorObj(string, string, interface{}) {}

func steppingClock(start time.Time, step time.Duration) func() time.Time {
	now := start
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

func respond(status int, body string) httpclient.Transport {
	return httpclient.TransportFunc(func(context.Context, httpclient.Request) (httpclient.Response, error) {
		return httpclient.NewResponse(status, []byte(body)), nil
	})
}

func TestRecorderCapturesSuccessfulChatCompletion(t *testing.T) {
	w := &memoryWriter{}
	pub := &fakePublisher{}
	start := time.UnixMilli(1_700_000_000_000)
	rec := NewRecorder(
		respond(http.StatusOK, `{"id":"c1","model":"openai/gpt-4o-mini","provider":"openai","usage":{"prompt_tokens":10,"completion_tokens":5,"total_tokens":15,"cost_usd":0.002}}`),
		WithWriter(w),
		WithPublisher(pub),
		WithClock(steppingClock(start, 250*time.Millisecond)),
		WithIDGenerator(func() string { return "entry-1" }),
	)

	resp, err := rec.Do(context.Background(), httpclient.Request{
		Method:    http.MethodPost,
		URL:       "https://api.example.com/chat/completions",
		Body:      []byte(`{"model":"gpt-4o-mini","stream":false,"messages":[{"role":"user","content":"hi"}]}`),
		Headers:   map[string]string{"Authorization": "Bearer secret"},
		Operation: "createChatCompletion",
	})
	if err != nil || resp.StatusCode() != http.StatusOK {
		t.Fatalf("Do: %v %d", err, resp.StatusCode())
	}
	if len(w.entries) != 1 || len(pub.published) != 1 {
		t.Fatalf("expected one stored and one published entry, got %d/%d", len(w.entries), len(pub.published))
	}

	e := w.entries[0]
	if e.ID != "entry-1" || e.Type != TypeChatCompletions {
		t.Fatalf("unexpected identity %s %s", e.ID, e.Type)
	}
	if e.Timestamp != start.UnixMilli() || e.DurationMs != 250 {
		t.Fatalf("timing = %d/%d", e.Timestamp, e.DurationMs)
	}
	if e.Error != nil {
		t.Fatalf("unexpected error info %+v", e.Error)
	}
	if e.Metadata.SDK != "go" || e.Metadata.StatusCode != http.StatusOK {
		t.Fatalf("metadata = %+v", e.Metadata)
	}
	if e.Metadata.Model != "openai/gpt-4o-mini" || e.Metadata.Provider != "openai" {
		t.Fatalf("model/provider = %q/%q", e.Metadata.Model, e.Metadata.Provider)
	}
	if e.Tokens() != 15 || e.Metadata.Usage.PromptTokens != 10 {
		t.Fatalf("usage = %+v", e.Metadata.Usage)
	}
	if e.Cost() != 0.002 {
		t.Fatalf("cost = %v", e.Cost())
	}
	if e.Metadata.Headers != nil {
		t.Fatalf("headers captured without opt-in")
	}
	if e.Request["model"] != "gpt-4o-mini" {
		t.Fatalf("request not decoded: %v", e.Request)
	}
}

func TestRecorderCapturesHTTPErrors(t *testing.T) {
	w := &memoryWriter{}
	rec := NewRecorder(respond(http.StatusNotFound, `{"error":"not found"}`), WithWriter(w))

	resp, err := rec.Do(context.Background(), httpclient.Request{Method: http.MethodGet, URL: "https://x/videos/v1", Operation: "getVideoAlias"})
	if err != nil {
		t.Fatalf("404 must not become an error: %v", err)
	}
	if resp.StatusCode() != http.StatusNotFound {
		t.Fatalf("response altered: %d", resp.StatusCode())
	}
	e := w.entries[0]
	if e.Type != TypeVideoGenerations {
		t.Fatalf("type = %s", e.Type)
	}
	if e.Error == nil || e.Error.Status != http.StatusNotFound || e.Error.Message != "not found" {
		t.Fatalf("error info = %+v", e.Error)
	}
	if e.Response["error"] != "not found" {
		t.Fatalf("response body not kept: %v", e.Response)
	}
}

func TestRecorderCapturesTransportErrors(t *testing.T) {
	w := &memoryWriter{}
	cause := &httpclient.TransportError{Method: "GET", URL: "https://x/health", Err: errors.New("connection refused")}
	rec := NewRecorder(httpclient.TransportFunc(func(context.Context, httpclient.Request) (httpclient.Response, error) {
		return httpclient.Response{}, cause
	}), WithWriter(w))

	_, err := rec.Do(context.Background(), httpclient.Request{Method: "GET", URL: "https://x/health", Operation: "healthz"})
	if err != cause {
		t.Fatalf("error changed: %v", err)
	}
	e := w.entries[0]
	if e.Response != nil {
		t.Fatalf("response should be nil on transport failure")
	}
	if e.Error == nil || e.Error.Code != "transport_error" || e.Type != TypeHealth {
		t.Fatalf("entry = %+v", e)
	}
}

func TestRecorderFailuresDoNotAffectCaller(t *testing.T) {
	log := &recordingLogger{}
	rec := NewRecorder(
		respond(http.StatusOK, `{}`),
		WithWriter(&memoryWriter{err: errors.New("disk full")}),
		WithPublisher(&fakePublisher{err: errors.New("sqs down")}),
		WithLogger(log),
	)
	resp, err := rec.Do(context.Background(), httpclient.Request{Method: "GET", URL: "https://x/models", Operation: "listModels"})
	if err != nil || resp.StatusCode() != http.StatusOK {
		t.Fatalf("recording failure leaked to caller: %v", err)
	}
	if len(log.warnings) != 2 {
		t.Fatalf("expected two warnings, got %v", log.warnings)
	}
}

func TestRecorderRedactsCapturedHeaders(t *testing.T) {
	w := &memoryWriter{}
	rec := NewRecorder(respond(http.StatusOK, `{}`), WithWriter(w), WithCaptureHeaders(true))
	_, _ = rec.Do(context.Background(), httpclient.Request{
		Method:  "GET",
		URL:     "https://x/credits",
		Headers: map[string]string{"Authorization": "Bearer secret", "X-Team": "core"},
	})
	h := w.entries[0].Metadata.Headers
	if h["Authorization"] != "[redacted]" || h["X-Team"] != "core" {
		t.Fatalf("headers = %v", h)
	}
	if w.entries[0].Type != TypeOther {
		t.Fatalf("raw request type = %s", w.entries[0].Type)
	}
}

func TestDecodeBody(t *testing.T) {
	if got := decodeBody(nil); len(got) != 0 {
		t.Fatalf("nil body = %v", got)
	}
	if got := decodeBody([]byte(`[1,2]`)); got["value"] == nil {
		t.Fatalf("array body = %v", got)
	}
	if got := decodeBody([]byte("plain text")); got["raw"] != "plain text" {
		t.Fatalf("text body = %v", got)
	}
	if got := decodeBody([]byte{0xff, 0xfe, 0x00, 0x01}); got["bytes"] != 4 {
		t.Fatalf("binary body = %v", got)
	}
}

func TestExtractUsageAnthropicAndImages(t *testing.T) {
	u := extractUsage(map[string]any{"usage": map[string]any{"input_tokens": float64(7), "output_tokens": float64(3)}}, TypeMessages)
	if u == nil || u.TotalTokens != 10 {
		t.Fatalf("anthropic usage = %+v", u)
	}
	img := extractUsage(map[string]any{"data": []any{map[string]any{}, map[string]any{}}}, TypeImagesGenerations)
	if img == nil || img.ImagesGenerated != 2 {
		t.Fatalf("image usage = %+v", img)
	}
	if extractUsage(map[string]any{}, TypeModelsList) != nil {
		t.Fatalf("expected nil usage")
	}
}

func TestEndpointTypeFor(t *testing.T) {
	cases := map[string]EndpointType{
		"createChatCompletion":      TypeChatCompletions,
		"createBatchAlias":          TypeBatchesCreate,
		"retrieveBatchAlias":        TypeBatchesRetrieve,
		"listProvisioningKeysAlias": TypeProvisioningKeysList,
		"updateProvisioningKey":     TypeProvisioningKeysUpdate,
		"getMusicGeneration":        TypeOther,
		"":                          TypeOther,
	}
	for op, want := range cases {
		if got := EndpointTypeFor(op); got != want {
			t.Errorf("EndpointTypeFor(%q) = %s, want %s", op, got, want)
		}
	}
}

func TestDecodeBodyTruncatesOnCharacterBoundary(t *testing.T) {
	body := strings.Repeat("a", maxRawBody-1) + "é" + "tail"
	raw, _ := decodeBody([]byte(body))["raw"].(string)
	if len(raw) != maxRawBody-1 {
		t.Fatalf("raw length = %d, want %d", len(raw), maxRawBody-1)
	}
	if !utf8.ValidString(raw) {
		t.Fatalf("truncated body is not valid UTF-8")
	}
}

func TestTruncateUTF8(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"abcdef", 3, "abc"},
		{"aé", 2, "a"},
		{"日本", 4, "日"},
		{"日本", 2, ""},
	}
	for _, tc := range cases {
		if got := truncateUTF8(tc.in, tc.n); got != tc.want {
			t.Fatalf("truncateUTF8(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
		}
	}
}

type memoryAssets struct {
	saved map[string][]byte
	err   error
}

func (m *memoryAssets) SaveAsset(_ context.Context, path string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	if m.saved == nil {
		m.saved = map[string][]byte{}
	}
	m.saved[path] = data
	return nil
}

func TestRecorderStoresBinaryAssets(t *testing.T) {
	png := string([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0xff})
	w := &memoryWriter{}
	assets := &memoryAssets{}
	rec := NewRecorder(respond(http.StatusOK, png),
		WithWriter(w),
		WithAssets(assets),
		WithIDGenerator(func() string { return "img-1" }),
	)

	resp, err := rec.Do(context.Background(), httpclient.Request{Method: "POST", URL: "https://x/images/generations", Operation: "createImage"})
	if err != nil || string(resp.Body()) != png {
		t.Fatalf("caller saw %q, %v", resp.Body(), err)
	}
	e := w.entries[0]
	if e.Response["asset_path"] != "assets/images/img-1.png" || e.Response["bytes"] != len(png) {
		t.Fatalf("response = %v", e.Response)
	}
	if string(assets.saved["assets/images/img-1.png"]) != png {
		t.Fatalf("asset not stored: %v", assets.saved)
	}
}

func TestRecorderSkipsAssetsForTextAndOtherEndpoints(t *testing.T) {
	assets := &memoryAssets{}
	w := &memoryWriter{}
	rec := NewRecorder(respond(http.StatusOK, `{"data":[{"b64_json":"aGk="}]}`), WithWriter(w), WithAssets(assets))
	_, _ = rec.Do(context.Background(), httpclient.Request{Method: "POST", URL: "https://x/images/generations", Operation: "createImage"})

	rec = NewRecorder(respond(http.StatusOK, "\xff\xfe"), WithWriter(w), WithAssets(assets))
	_, _ = rec.Do(context.Background(), httpclient.Request{Method: "GET", URL: "https://x/files/f", Operation: "retrieveFile"})

	if len(assets.saved) != 0 {
		t.Fatalf("unexpected assets %v", assets.saved)
	}
	for _, e := range w.entries {
		if _, ok := e.Response["asset_path"]; ok {
			t.Fatalf("entry %s references an asset", e.Type)
		}
	}
}

func TestRecorderDropsAssetPathWhenSaveFails(t *testing.T) {
	log := &recordingLogger{}
	w := &memoryWriter{}
	rec := NewRecorder(respond(http.StatusOK, "RIFF\x00\x00\x00\x00WAVEfmt \xff"),
		WithWriter(w),
		WithAssets(&memoryAssets{err: errors.New("disk full")}),
		WithLogger(log),
	)
	_, _ = rec.Do(context.Background(), httpclient.Request{Method: "POST", URL: "https://x/audio/speech", Operation: "createSpeech"})

	if _, ok := w.entries[0].Response["asset_path"]; ok {
		t.Fatalf("entry references an unsaved asset: %v", w.entries[0].Response)
	}
	if len(log.warnings) != 1 {
		t.Fatalf("expected one warning, got %v", log.warnings)
	}
}

type memorySessions struct {
	calls   int
	current *SessionMetadata
}

func (m *memorySessions) StartSession(_ context.Context, s SessionMetadata) (SessionMetadata, error) {
	m.calls++
	if m.current == nil {
		m.current = &s
	}
	return *m.current, nil
}

func TestRecorderStartsSessionOnce(t *testing.T) {
	sessions := &memorySessions{}
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rec := NewRecorder(respond(http.StatusOK, `{}`), WithSessions(sessions), WithClock(func() time.Time { return start }))
	for i := 0; i < 3; i++ {
		_, _ = rec.Do(context.Background(), httpclient.Request{Method: "GET", URL: "https://x/health", Operation: "healthz"})
	}

	if sessions.calls != 1 {
		t.Fatalf("StartSession called %d times", sessions.calls)
	}
	s := sessions.current
	if s.SessionID == "" || s.StartedAt != start.UnixMilli() || s.SDK != SDKName || s.SDKVersion != SDKVersion {
		t.Fatalf("unexpected session %+v", s)
	}
}
