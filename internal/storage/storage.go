// Package storage persists recorded devtools entries.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/phaseo/ai-stats-go/pkg/devtools"
)

// Store keeps entries and their binary assets until their retention
// expires, along with the metadata of the session that recorded them.
type Store interface {
	Save(ctx context.Context, entry devtools.Entry) error
	Get(ctx context.Context, id string) (devtools.Entry, bool, error)
	// Entries returns every live entry, most recent first.
	Entries(ctx context.Context) ([]devtools.Entry, error)
	List(ctx context.Context, f devtools.Filter) (devtools.Page, error)

	SaveAsset(ctx context.Context, path string, data []byte) error
	Asset(ctx context.Context, path string) ([]byte, bool, error)

	StartSession(ctx context.Context, s devtools.SessionMetadata) (devtools.SessionMetadata, error)
	Session(ctx context.Context) (devtools.SessionMetadata, bool, error)

	// Clear removes entries, assets and the session.
	Clear(ctx context.Context) error
	Close() error
}

// Options controls where and for how long entries are kept.
type Options struct {
	Path            string
	RedisURL        string
	RedisPrefix     string
	Retention       time.Duration
	CleanupInterval time.Duration
}

const (
	defaultRetention       = 7 * 24 * time.Hour
	defaultCleanupInterval = time.Hour
	defaultRedisPrefix     = "ai-stats:devtools"
)

// Types lists the accepted backend names.
var Types = []string{"bbolt", "redis", "none"}

// NewStore creates the configured storage backend.
func NewStore(typ string, opts Options) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	opts = normalizeOptions(opts)

	switch typ {
	case "", "none", "disabled":
		return noopStore{}, nil
	case "bbolt":
		if strings.TrimSpace(opts.Path) == "" {
			return nil, fmt.Errorf("bbolt storage requires a path")
		}
		return openBolt(opts.Path, opts)
	case "redis":
		if strings.TrimSpace(opts.RedisURL) == "" {
			return nil, fmt.Errorf("redis storage requires a url")
		}
		return openRedis(opts)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", typ)
	}
}

func normalizeOptions(opts Options) Options {
	if opts.Retention <= 0 {
		opts.Retention = defaultRetention
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = defaultCleanupInterval
	}
	if strings.TrimSpace(opts.RedisPrefix) == "" {
		opts.RedisPrefix = defaultRedisPrefix
	}
	return opts
}

func listPage(ctx context.Context, s Store, f devtools.Filter) (devtools.Page, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return devtools.Page{}, err
	}
	return devtools.Apply(entries, f), nil
}

type noopStore struct{}

func (noopStore) Save(context.Context, devtools.Entry) error { return nil }
func (noopStore) Get(context.Context, string) (devtools.Entry, bool, error) {
	return devtools.Entry{}, false, nil
}
func (noopStore) Entries(context.Context) ([]devtools.Entry, error) { return nil, nil }
func (noopStore) List(_ context.Context, f devtools.Filter) (devtools.Page, error) {
	return devtools.Apply(nil, f), nil
}
func (noopStore) SaveAsset(context.Context, string, []byte) error { return nil }
func (noopStore) Asset(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}
func (noopStore) StartSession(_ context.Context, s devtools.SessionMetadata) (devtools.SessionMetadata, error) {
	return s, nil
}
func (noopStore) Session(context.Context) (devtools.SessionMetadata, bool, error) {
	return devtools.SessionMetadata{}, false, nil
}
func (noopStore) Clear(context.Context) error { return nil }
func (noopStore) Close() error                { return nil }
