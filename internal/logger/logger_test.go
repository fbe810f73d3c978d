package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/phaseo/ai-stats-go/internal/config"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestZapWritesObjectField(t *testing.T) {
	var buf bytes.Buffer
	log := NewZap(New(&buf, zapcore.DebugLevel))

	log.InfoObj("recorded entry", "entry", map[string]any{"id": "abc"})

	out := buf.String()
	if !strings.Contains(out, `"msg":"recorded entry"`) || !strings.Contains(out, `"entry":{"id":"abc"}`) {
		t.Fatalf("unexpected log line %s", out)
	}
	if !strings.Contains(out, `"ts":`) {
		t.Fatalf("missing ts field: %s", out)
	}
}

func TestZapRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZap(New(&buf, zapcore.WarnLevel))
	log.DebugObj("hidden", "k", 1)
	log.InfoObj("hidden", "k", 1)
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below warn, got %s", buf.String())
	}
	log.WarnObj("shown", "k", 1)
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("warn not written")
	}
}

func TestPackageHelpersAreSafeBeforeInit(t *testing.T) {
	S = nil
	InfoObj("x", "k", 1)
	ErrorObj("x", "k", 1)
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	NopLogger().ErrorObj("x", "k", 1)
}

func TestInitWithLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "aistats.log")
	_, err := Init(&config.Config{LogLevel: "info", LogFile: path, LogMaxSizeMB: 1})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	InfoObj("hello", "k", "v")
	_ = Close()
	S = nil

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Fatalf("log file missing entry: %s", data)
	}
}

func TestInitLogsToStderrOnly(t *testing.T) {
	dir := t.TempDir()
	stdout, err := os.Create(filepath.Join(dir, "stdout"))
	if err != nil {
		t.Fatalf("create stdout: %v", err)
	}
	stderr, err := os.Create(filepath.Join(dir, "stderr"))
	if err != nil {
		t.Fatalf("create stderr: %v", err)
	}
	origOut, origErr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = stdout, stderr
	t.Cleanup(func() {
		os.Stdout, os.Stderr = origOut, origErr
		S = nil
	})

	if _, err := Init(&config.Config{LogLevel: "info"}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	InfoObj("hello", "k", "v")
	_ = S.Sync()

	if out, _ := os.ReadFile(stdout.Name()); len(out) != 0 {
		t.Fatalf("logger wrote to stdout: %s", out)
	}
	if errOut, _ := os.ReadFile(stderr.Name()); !strings.Contains(string(errOut), `"msg":"hello"`) {
		t.Fatalf("stderr missing entry: %s", errOut)
	}
}
