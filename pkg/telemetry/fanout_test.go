package telemetry

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubSink struct {
	id     string
	typ    string
	err    error
	calls  int
	closed bool
}

func (s *stubSink) ID() string   { return s.id }
func (s *stubSink) Type() string { return s.typ }
func (s *stubSink) Publish(context.Context, Event) error {
	s.calls++
	return s.err
}
func (s *stubSink) Close() error {
	s.closed = true
	return nil
}

func TestFanoutPublishAggregatesErrors(t *testing.T) {
	ok := &stubSink{id: "ok", typ: "http"}
	bad := &stubSink{id: "bad", typ: "sqs", err: errors.New("failed")}
	fanout := NewFanout([]Sink{ok, nil, bad})

	if fanout.Size() != 2 {
		t.Fatalf("nil sink not dropped, size=%d", fanout.Size())
	}
	count, err := fanout.Publish(context.Background(), Event{})
	if count != 1 {
		t.Fatalf("expected 1 success, got %d", count)
	}
	if err == nil || !strings.Contains(err.Error(), "sqs sink[bad]") {
		t.Fatalf("expected aggregated error naming the sink, got %v", err)
	}
	if ok.calls != 1 || bad.calls != 1 {
		t.Fatalf("every sink must be attempted")
	}
}

func TestFanoutCloseClosesSinks(t *testing.T) {
	s := &stubSink{id: "a", typ: "gcp_pubsub"}
	if err := NewFanout([]Sink{s}).Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !s.closed {
		t.Fatalf("sink not closed")
	}
}

func TestNilFanoutIsNoop(t *testing.T) {
	var f *Fanout
	if n, err := f.Publish(context.Background(), Event{}); n != 0 || err != nil {
		t.Fatalf("nil fanout Publish = %d, %v", n, err)
	}
	if f.Size() != 0 || f.Close() != nil {
		t.Fatalf("nil fanout not inert")
	}
}

func TestBuildAllWithDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()
	sinks, err := BuildAll(context.Background(), reg, []SinkConfig{
		{ID: "hook", Type: TypeHTTP, HTTP: &HTTPSinkConfig{URL: "https://example.com"}},
	}, nil)
	if err != nil {
		t.Fatalf("BuildAll: %v", err)
	}
	if len(sinks) != 1 || sinks[0].Type() != TypeHTTP {
		t.Fatalf("unexpected sinks %#v", sinks)
	}
}

func TestBuildAllClosesBuiltSinksOnFailure(t *testing.T) {
	built := &stubSink{id: "first", typ: "stub"}
	reg := NewRegistry(map[string]Builder{
		"stub": func(context.Context, SinkConfig, Logger) (Sink, error) { return built, nil },
		"boom": func(context.Context, SinkConfig, Logger) (Sink, error) { return nil, errors.New("boom") },
	})
	_, err := BuildAll(context.Background(), reg, []SinkConfig{
		{ID: "first", Type: "stub"},
		{ID: "second", Type: "boom"},
	}, nil)
	if err == nil {
		t.Fatalf("expected build error")
	}
	if !built.closed {
		t.Fatalf("sink built before the failure was not closed")
	}
}

func TestRegistryRejectsUnknownType(t *testing.T) {
	if _, err := DefaultRegistry().SinkFor(context.Background(), SinkConfig{ID: "x", Type: "kafka"}, nil); err == nil {
		t.Fatalf("expected error for unknown sink type")
	}
	if _, err := DefaultRegistry().SinkFor(context.Background(), SinkConfig{ID: "x"}, nil); err == nil {
		t.Fatalf("expected error for missing type")
	}
}
