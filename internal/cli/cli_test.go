package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/phaseo/ai-stats-go/internal/app"
	"github.com/phaseo/ai-stats-go/internal/config"
	"github.com/phaseo/ai-stats-go/pkg/httpclient"
)

type recordingTransport struct {
	requests []httpclient.Request
	status   int
	body     string
}

func (r *recordingTransport) Do(_ context.Context, req httpclient.Request) (httpclient.Response, error) {
	r.requests = append(r.requests, req)
	return httpclient.NewResponse(r.status, []byte(r.body)), nil
}

func newOptions(t *testing.T, tr *recordingTransport) *GlobalOptions {
	t.Helper()
	cfg := &config.Config{
		BaseURL:          "https://gateway.test/v1",
		RequestTimeout:   time.Second,
		StrictPathParams: true,
		StorageType:      "bbolt",
		BBoltPath:        filepath.Join(t.TempDir(), "devtools.db"),
		Retention:        time.Hour,
		CleanupInterval:  time.Hour,
	}
	return &GlobalOptions{
		Load: func(ctx context.Context) (*app.App, error) {
			return app.New(ctx, cfg, nil, app.WithTransport(tr))
		},
	}
}

func execute(t *testing.T, opts *GlobalOptions, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(opts)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestOperationsTable(t *testing.T) {
	out, err := execute(t, &GlobalOptions{}, "operations")
	if err != nil {
		t.Fatalf("operations: %v", err)
	}
	if !strings.Contains(out, "getVideo") || !strings.Contains(out, "/videos/{video_id}") {
		t.Fatalf("catalogue missing getVideo:\n%s", out)
	}
}

func TestOperationsJSON(t *testing.T) {
	out, err := execute(t, &GlobalOptions{}, "operations", "--json")
	if err != nil {
		t.Fatalf("operations --json: %v", err)
	}
	if !strings.Contains(out, `"name": "createChatCompletion"`) {
		t.Fatalf("unexpected json:\n%s", out)
	}
}

func TestCallSendsResolvedRequest(t *testing.T) {
	tr := &recordingTransport{status: http.StatusOK, body: `{"id":"abc123","status":"completed"}`}
	opts := newOptions(t, tr)

	out, err := execute(t, opts, "call", "getVideo", "-p", "video_id=abc123", "-q", "detail=full")
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if len(tr.requests) != 1 {
		t.Fatalf("expected one request, got %d", len(tr.requests))
	}
	req := tr.requests[0]
	if req.Method != http.MethodGet || req.URL != "https://gateway.test/v1/videos/abc123?detail=full" {
		t.Fatalf("unexpected request %s %s", req.Method, req.URL)
	}
	if !strings.Contains(out, `"status": "completed"`) {
		t.Fatalf("body not pretty printed:\n%s", out)
	}
}

func TestCallKeepsRepeatedQueryValues(t *testing.T) {
	tr := &recordingTransport{status: http.StatusOK, body: `{"data":[]}`}
	opts := newOptions(t, tr)

	_, err := execute(t, opts, "call", "listModels",
		"-q", "provider=openai", "-q", "provider=anthropic", "-q", "limit=5")
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	want := "https://gateway.test/v1/models?limit=5&provider=openai&provider=anthropic"
	if got := tr.requests[0].URL; got != want {
		t.Fatalf("URL = %s, want %s", got, want)
	}
}

func TestCallMissingParamSendsNothing(t *testing.T) {
	tr := &recordingTransport{status: http.StatusOK}
	if _, err := execute(t, newOptions(t, tr), "call", "getVideo"); err == nil {
		t.Fatalf("expected missing parameter error")
	}
	if len(tr.requests) != 0 {
		t.Fatalf("request sent despite missing parameter")
	}
}

func TestCallLenientPath(t *testing.T) {
	tr := &recordingTransport{status: http.StatusNotFound, body: "not found"}
	out, err := execute(t, newOptions(t, tr), "call", "getVideoContent", "--lenient-path", "--raw")
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected 404 error, got %v", err)
	}
	if tr.requests[0].URL != "https://gateway.test/v1/videos//content" {
		t.Fatalf("URL = %s", tr.requests[0].URL)
	}
	if out != "not found" {
		t.Fatalf("raw body = %q", out)
	}
}

func TestCallBodyFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "body.json")
	if err := os.WriteFile(path, []byte(`{"model":"text-embedding-3-small","input":"hi"}`), 0o644); err != nil {
		t.Fatalf("write body: %v", err)
	}
	tr := &recordingTransport{status: http.StatusOK, body: `{}`}
	if _, err := execute(t, newOptions(t, tr), "call", "createEmbedding", "-d", "@"+path); err != nil {
		t.Fatalf("call: %v", err)
	}
	if string(tr.requests[0].Body) != `{"model":"text-embedding-3-small","input":"hi"}` {
		t.Fatalf("body = %s", tr.requests[0].Body)
	}
}

func TestCallUnknownOperation(t *testing.T) {
	if _, err := execute(t, &GlobalOptions{}, "call", "doesNotExist"); err == nil {
		t.Fatalf("expected unknown operation error")
	}
}

func TestHistoryAndStatsReadRecordedCalls(t *testing.T) {
	tr := &recordingTransport{status: http.StatusOK, body: `{"model":"gpt-4o","usage":{"total_tokens":12}}`}
	opts := newOptions(t, tr)

	if _, err := execute(t, opts, "call", "createChatCompletion", "-d", `{"model":"gpt-4o"}`); err != nil {
		t.Fatalf("call: %v", err)
	}
	tr.status = http.StatusTooManyRequests
	tr.body = `{"error":"rate limited"}`
	if _, err := execute(t, opts, "call", "createChatCompletion", "-d", `{"model":"gpt-4o"}`); err == nil {
		t.Fatalf("expected 429 error")
	}

	out, err := execute(t, opts, "history", "--errors")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "429") || !strings.Contains(out, "1 of 1 entries") {
		t.Fatalf("unexpected history:\n%s", out)
	}

	out, err = execute(t, opts, "stats")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !strings.Contains(out, `"total_requests": 2`) || !strings.Contains(out, `"total_errors": 1`) {
		t.Fatalf("unexpected stats:\n%s", out)
	}
}

func TestHistoryRejectsConflictingFlags(t *testing.T) {
	if _, err := execute(t, &GlobalOptions{}, "history", "--errors", "--ok"); err == nil {
		t.Fatalf("expected flag conflict error")
	}
}

func TestParsePairs(t *testing.T) {
	got, err := parsePairs([]string{"a=1", "b==2", "c="})
	if err != nil {
		t.Fatalf("parsePairs: %v", err)
	}
	if got["a"] != "1" || got["b"] != "=2" || got["c"] != "" {
		t.Fatalf("unexpected pairs %v", got)
	}
	if _, err := parsePairs([]string{"novalue"}); err == nil {
		t.Fatalf("expected error for missing =")
	}
}

func TestParseQuery(t *testing.T) {
	q, err := parseQuery([]string{"tag=a", "tag=b", " page =2"})
	if err != nil {
		t.Fatalf("parseQuery: %v", err)
	}
	if got := q["tag"]; len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("tag values = %v", got)
	}
	if q.Get("page") != "2" {
		t.Fatalf("page = %q", q.Get("page"))
	}
	if _, err := parseQuery([]string{"=x"}); err == nil {
		t.Fatalf("expected error for empty name")
	}
}
