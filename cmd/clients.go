package cmd

import (
	"fmt"
	"strings"
	"time"

	"sitefeed/internal/aggregate"
	"sitefeed/internal/config"
	"sitefeed/internal/qiita"
	"sitefeed/internal/supabase"
	"sitefeed/internal/zenn"
)

// fetchers builds the platform fetchers selected by platform ("" means all).
func fetchers(cfg config.Config, platform string) ([]aggregate.Fetcher, error) {
	q := qiita.NewClient(cfg.Sources.Qiita.BaseURL, cfg.Sources.Qiita.Username)
	z := zenn.NewClient(cfg.Sources.Zenn.BaseURL, cfg.Sources.Zenn.SiteURL, cfg.Sources.Zenn.Username)
	switch strings.ToLower(strings.TrimSpace(platform)) {
	case "", "all":
		return []aggregate.Fetcher{q, z}, nil
	case q.Platform():
		return []aggregate.Fetcher{q}, nil
	case z.Platform():
		return []aggregate.Fetcher{z}, nil
	default:
		return nil, fmt.Errorf("unknown platform %q (want qiita or zenn)", platform)
	}
}

// storageClient constructs the storage client; missing credentials stop the command.
func storageClient(cfg config.Config) (*supabase.Client, error) {
	var timeout time.Duration
	if cfg.Storage.Timeout != "" {
		d, err := time.ParseDuration(cfg.Storage.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid storage.timeout: %w", err)
		}
		timeout = d
	}
	return supabase.New(supabase.Config{
		URL:     cfg.Storage.URL,
		AnonKey: cfg.Storage.AnonKey,
		Timeout: timeout,
	})
}
