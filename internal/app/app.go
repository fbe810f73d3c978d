// Package app wires configuration, logging, storage, telemetry and the SDK
// client into one runtime shared by the CLI commands.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/phaseo/ai-stats-go/internal/config"
	"github.com/phaseo/ai-stats-go/internal/logger"
	"github.com/phaseo/ai-stats-go/internal/storage"
	"github.com/phaseo/ai-stats-go/pkg/aistats"
	"github.com/phaseo/ai-stats-go/pkg/devtools"
	"github.com/phaseo/ai-stats-go/pkg/httpclient"
	"github.com/phaseo/ai-stats-go/pkg/telemetry"
)

// App holds the runtime built from configuration.
type App struct {
	cfg      *config.Config
	log      logger.Logger
	store    storage.Store
	fanout   *telemetry.Fanout
	recorder *devtools.Recorder
	client   *aistats.Client
}

// Option customizes New.
type Option func(*options)

type options struct {
	transport httpclient.Transport
}

// WithTransport replaces the resty transport, mainly for tests.
func WithTransport(t httpclient.Transport) Option {
	return func(o *options) { o.transport = t }
}

// New builds the runtime. Resources opened before a failure are released.
func New(ctx context.Context, cfg *config.Config, log logger.Logger, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{cfg: cfg, log: log}

	store, err := storage.NewStore(cfg.StorageType, storage.Options{
		Path:            cfg.BBoltPath,
		RedisURL:        cfg.RedisURL,
		RedisPrefix:     cfg.RedisPrefix,
		Retention:       cfg.Retention,
		CleanupInterval: cfg.CleanupInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	a.store = store
	log.InfoObj("storage initialized", "storage_config", map[string]any{
		"type":                     cfg.StorageType,
		"path":                     cfg.BBoltPath,
		"retention_seconds":        int(cfg.Retention.Seconds()),
		"cleanup_interval_seconds": int(cfg.CleanupInterval.Seconds()),
	})

	fanout, err := buildFanout(ctx, cfg, log)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.fanout = fanout

	transport := o.transport
	if transport == nil {
		transport = httpclient.NewRestyTransport(cfg.RequestTimeout,
			httpclient.WithLogger(log),
			httpclient.WithUserAgent(fmt.Sprintf("ai-stats-go/%s", devtools.SDKVersion)),
		)
	}

	recOpts := []devtools.RecorderOption{
		devtools.WithWriter(store),
		devtools.WithSessions(store),
		devtools.WithCaptureHeaders(cfg.CaptureHeaders),
		devtools.WithLogger(log),
	}
	if cfg.SaveAssets {
		recOpts = append(recOpts, devtools.WithAssets(store))
	}
	if fanout.Size() > 0 {
		recOpts = append(recOpts, devtools.WithPublisher(entryPublisher{fanout: fanout}))
	}
	a.recorder = devtools.NewRecorder(transport, recOpts...)

	policy := aistats.PathStrict
	if !cfg.StrictPathParams {
		policy = aistats.PathLenient
	}
	a.client = aistats.New(cfg.BaseURL, a.recorder, aistats.WithPathPolicy(policy), aistats.WithLogger(log))
	if cfg.APIKey != "" {
		a.client.SetAPIKey(cfg.APIKey)
	}

	log.InfoObj("client ready", "client_config", map[string]any{
		"base_url":    a.client.BaseURL(),
		"path_policy": policy.String(),
		"sinks":       fanout.Size(),
		"has_api_key": cfg.APIKey != "",
	})
	return a, nil
}

func buildFanout(ctx context.Context, cfg *config.Config, log logger.Logger) (*telemetry.Fanout, error) {
	if cfg.TelemetrySinksFile == "" {
		return telemetry.NewFanout(nil), nil
	}

	reg, err := telemetry.LoadRegistry(cfg.TelemetrySinksFile)
	if err != nil {
		return nil, fmt.Errorf("load telemetry sinks: %w", err)
	}
	enabled := reg.Enabled()
	sinks, err := telemetry.BuildAll(ctx, telemetry.DefaultRegistry(), enabled, log)
	if err != nil {
		return nil, fmt.Errorf("build telemetry sinks: %w", err)
	}

	summaries := make([]map[string]string, 0, len(enabled))
	for _, s := range enabled {
		summaries = append(summaries, map[string]string{"id": s.ID, "type": s.Type})
	}
	log.InfoObj("telemetry sinks loaded", "sinks_meta", map[string]any{
		"count": len(summaries),
		"sinks": summaries,
	})
	return telemetry.NewFanout(sinks), nil
}

// Config returns the configuration the app was built from.
func (a *App) Config() *config.Config { return a.cfg }

// Client returns the SDK client. Every call it makes is recorded.
func (a *App) Client() *aistats.Client { return a.client }

// Store returns the devtools entry store.
func (a *App) Store() storage.Store { return a.store }

// Logger returns the app logger.
func (a *App) Logger() logger.Logger { return a.log }

// Close releases telemetry sinks and the store.
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	var errs []error
	if err := a.fanout.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close telemetry: %w", err))
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close storage: %w", err))
		}
	}
	return errors.Join(errs...)
}

// entryPublisher forwards recorded entries to the telemetry fanout.
type entryPublisher struct {
	fanout *telemetry.Fanout
}

func (p entryPublisher) Publish(ctx context.Context, e devtools.Entry) (int, error) {
	evt := telemetry.NewEvent(e.ID, string(e.Type), time.UnixMilli(e.Timestamp), e)
	return p.fanout.Publish(ctx, evt)
}
