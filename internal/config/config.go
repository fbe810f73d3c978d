package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultBaseURL mirrors aistats.DefaultBaseURL without importing the SDK.
const DefaultBaseURL = "https://api.phaseo.app/v1"

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	LogFile       string `mapstructure:"log_file"`
	LogMaxSizeMB  int    `mapstructure:"log_max_size_mb"`
	LogMaxBackups int    `mapstructure:"log_max_backups"`
	LogMaxAgeDays int    `mapstructure:"log_max_age_days"`

	APIKey                string        `mapstructure:"ai_stats_api_key"`
	BaseURL               string        `mapstructure:"ai_stats_base_url"`
	RequestTimeoutSeconds int64         `mapstructure:"request_timeout_seconds"`
	RequestTimeout        time.Duration `mapstructure:"-"`
	StrictPathParams      bool          `mapstructure:"strict_path_params"`

	DevtoolsEnabled        bool          `mapstructure:"devtools_enabled"`
	StorageType            string        `mapstructure:"devtools_storage_type"`
	BBoltPath              string        `mapstructure:"devtools_bbolt_path"`
	RedisURL               string        `mapstructure:"devtools_redis_url"`
	RedisPrefix            string        `mapstructure:"devtools_redis_prefix"`
	RetentionSeconds       int64         `mapstructure:"devtools_retention_seconds"`
	CleanupIntervalSeconds int64         `mapstructure:"devtools_cleanup_interval_seconds"`
	Retention              time.Duration `mapstructure:"-"`
	CleanupInterval        time.Duration `mapstructure:"-"`
	CaptureHeaders         bool          `mapstructure:"devtools_capture_headers"`
	SaveAssets             bool          `mapstructure:"devtools_save_assets"`
	TelemetrySinksFile     string        `mapstructure:"telemetry_sinks_file"`
	ViewerAddr             string        `mapstructure:"viewer_addr"`
}

var storageTypes = []string{"bbolt", "redis", "none"}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "aistats")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("log_max_size_mb", 50)
	v.SetDefault("log_max_backups", 3)
	v.SetDefault("log_max_age_days", 28)
	v.SetDefault("ai_stats_api_key", "")
	v.SetDefault("ai_stats_base_url", DefaultBaseURL)
	v.SetDefault("request_timeout_seconds", 60)
	v.SetDefault("strict_path_params", true)
	v.SetDefault("devtools_enabled", true)
	v.SetDefault("devtools_storage_type", "bbolt")
	v.SetDefault("devtools_bbolt_path", "./data/devtools.db")
	v.SetDefault("devtools_redis_url", "")
	v.SetDefault("devtools_redis_prefix", "ai-stats:devtools")
	v.SetDefault("devtools_retention_seconds", int64((7*24*time.Hour)/time.Second))
	v.SetDefault("devtools_cleanup_interval_seconds", int64(time.Hour/time.Second))
	v.SetDefault("devtools_capture_headers", false)
	v.SetDefault("devtools_save_assets", true)
	v.SetDefault("telemetry_sinks_file", "")
	v.SetDefault("viewer_addr", "127.0.0.1:4983")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() error {
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}

	if c.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("invalid request_timeout_seconds (must be positive seconds)")
	}
	c.RequestTimeout = time.Duration(c.RequestTimeoutSeconds) * time.Second

	c.StorageType = strings.ToLower(strings.TrimSpace(c.StorageType))
	if !c.DevtoolsEnabled {
		c.StorageType = "none"
	}
	if !slices.Contains(storageTypes, c.StorageType) {
		return fmt.Errorf("invalid devtools_storage_type %q (expected one of %s)", c.StorageType, strings.Join(storageTypes, ", "))
	}
	if c.StorageType == "redis" && strings.TrimSpace(c.RedisURL) == "" {
		return fmt.Errorf("devtools_redis_url is required when devtools_storage_type is redis")
	}

	if c.RetentionSeconds <= 0 {
		return fmt.Errorf("invalid devtools_retention_seconds (must be positive seconds)")
	}
	if c.CleanupIntervalSeconds <= 0 {
		return fmt.Errorf("invalid devtools_cleanup_interval_seconds (must be positive seconds)")
	}
	c.Retention = time.Duration(c.RetentionSeconds) * time.Second
	c.CleanupInterval = time.Duration(c.CleanupIntervalSeconds) * time.Second
	return nil
}
