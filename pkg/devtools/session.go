package devtools

import (
	"context"
	"runtime"
	"time"

	"github.com/google/uuid"
)

// SessionMetadata describes the process that recorded a set of entries.
type SessionMetadata struct {
	SessionID  string `json:"session_id"`
	StartedAt  int64  `json:"started_at"`
	SDK        string `json:"sdk"`
	SDKVersion string `json:"sdk_version"`
	Platform   string `json:"platform,omitempty"`
	GoVersion  string `json:"go_version,omitempty"`
}

// SessionWriter stores session metadata. StartSession keeps an existing
// session and returns whichever one is current.
type SessionWriter interface {
	StartSession(ctx context.Context, s SessionMetadata) (SessionMetadata, error)
}

// NewSession describes the running process.
func NewSession(now time.Time) SessionMetadata {
	return SessionMetadata{
		SessionID:  uuid.NewString(),
		StartedAt:  now.UnixMilli(),
		SDK:        SDKName,
		SDKVersion: SDKVersion,
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
		GoVersion:  runtime.Version(),
	}
}
