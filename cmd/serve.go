package cmd

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"sitefeed/internal/redisclient"
	"sitefeed/internal/storage"
	"sitefeed/worker"

	"github.com/spf13/cobra"
)

// serveCmd keeps the published timeline fresh until interrupted.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Periodically refresh the published timeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		interval, err := time.ParseDuration(cfg.Snapshot.RefreshInterval)
		if err != nil {
			return fmt.Errorf("invalid snapshot.refresh_interval: %w", err)
		}
		ttl, err := time.ParseDuration(cfg.Snapshot.TTL)
		if err != nil {
			return fmt.Errorf("invalid snapshot.ttl: %w", err)
		}
		if ttl > 0 && ttl < interval {
			slog.Warn("serve: snapshot ttl shorter than refresh interval, timeline will have gaps", "ttl", ttl, "interval", interval)
		}
		fs, err := fetchers(cfg, "")
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		rdb, err := redisclient.Connect(ctx, cfg.Redis, 2*time.Second)
		if err != nil {
			return err
		}
		defer rdb.Close()

		snap := &worker.SnapshotWorker{
			Fetchers:    fs,
			Sink:        storage.NewRedisStore(rdb),
			Interval:    interval,
			TTL:         ttl,
			KeepOnEmpty: true,
		}
		mgr := worker.NewManager(snap)

		slog.Info("serve: starting snapshot refresh", "interval", interval, "ttl", ttl)
		err = mgr.Start(ctx)
		slog.Info("serve: shutting down")
		return err
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
