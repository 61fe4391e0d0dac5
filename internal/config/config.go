package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// QiitaConfig controls the Qiita source. An empty Username falls back to a
// placeholder account inside the client.
type QiitaConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	Username string `mapstructure:"username"`
}

// ZennConfig controls the Zenn source.
type ZennConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	SiteURL  string `mapstructure:"site_url"`
	Username string `mapstructure:"username"`
}

// DataSources groups the blogging platforms.
type DataSources struct {
	Qiita QiitaConfig `mapstructure:"qiita"`
	Zenn  ZennConfig  `mapstructure:"zenn"`
}

// StorageConfig holds the remote store endpoint and access key.
type StorageConfig struct {
	URL     string `mapstructure:"url"`
	AnonKey string `mapstructure:"anon_key"`
	Timeout string `mapstructure:"timeout"` // duration string, e.g., "10s"; empty means none
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ContentConfig locates the local content collections.
type ContentConfig struct {
	Dir string `mapstructure:"dir"`
}

// SnapshotConfig controls the published timeline.
type SnapshotConfig struct {
	TTL             string `mapstructure:"ttl"`              // item lifetime, e.g., "48h"
	RefreshInterval string `mapstructure:"refresh_interval"` // used by serve, e.g., "30m"
}

// Config is the top-level configuration structure.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Sources  DataSources    `mapstructure:"sources"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Content  ContentConfig  `mapstructure:"content"`
	Snapshot SnapshotConfig `mapstructure:"snapshot"`
}

// EnvBindings maps config keys to the environment variables that may set them,
// in priority order. The VITE_ names keep existing site .env files working.
var EnvBindings = map[string][]string{
	"app.log_level":          {"SITEFEED_LOG_LEVEL"},
	"sources.qiita.username": {"QIITA_USERNAME", "VITE_QIITA_USERNAME"},
	"sources.zenn.username":  {"ZENN_USERNAME", "VITE_ZENN_USERNAME"},
	"storage.url":            {"SUPABASE_URL", "VITE_SUPABASE_URL"},
	"storage.anon_key":       {"SUPABASE_ANON_KEY", "VITE_SUPABASE_ANON_KEY"},
	"redis.addr":             {"REDIS_ADDR"},
	"redis.password":         {"REDIS_PASSWORD"},
	"content.dir":            {"SITEFEED_CONTENT_DIR"},
}

// FillDefaults applies default values if not provided.
// Platform usernames are deliberately left alone; see the source clients.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Content.Dir == "" {
		c.Content.Dir = "./src/content"
	}
	if c.Snapshot.TTL == "" {
		c.Snapshot.TTL = "48h"
	}
	if c.Snapshot.RefreshInterval == "" {
		c.Snapshot.RefreshInterval = "30m"
	}
}

// SlogLevel parses App.LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.App.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.App.LogLevel)
	}
}
