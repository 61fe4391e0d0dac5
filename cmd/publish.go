package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sitefeed/internal/redisclient"
	"sitefeed/internal/storage"
	"sitefeed/worker"

	"github.com/spf13/cobra"
)

var (
	publishTTL      string
	publishKeepLast bool
)

// publishCmd fetches every platform once and writes the merged timeline to Redis.
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Fetch posts and publish the merged timeline to Redis",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		ttlStr := cfg.Snapshot.TTL
		if publishTTL != "" {
			ttlStr = publishTTL
		}
		ttl, err := time.ParseDuration(ttlStr)
		if err != nil {
			return fmt.Errorf("invalid ttl: %w", err)
		}
		fs, err := fetchers(cfg, "")
		if err != nil {
			return err
		}
		rdb, err := redisclient.Connect(cmd.Context(), cfg.Redis, 2*time.Second)
		if err != nil {
			return err
		}
		defer rdb.Close()

		w := &worker.SnapshotWorker{
			Fetchers:    fs,
			Sink:        storage.NewRedisStore(rdb),
			TTL:         ttl,
			KeepOnEmpty: publishKeepLast,
		}
		n := w.RunOnce(cmd.Context())
		if n < 0 {
			return errors.New("snapshot not published")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Published %d posts\n", n)
		return nil
	},
}

var (
	timelineLimit  int
	timelineFormat string
)

// timelineCmd prints the timeline last written by publish or serve.
var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Print the published timeline from Redis",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		rdb, err := redisclient.Connect(ctx, cfg.Redis, 2*time.Second)
		if err != nil {
			return err
		}
		defer rdb.Close()
		store := storage.NewRedisStore(rdb)

		if at, ok, err := store.RefreshedAt(ctx); err != nil {
			return err
		} else if ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "Refreshed at %s\n", at.Format(time.RFC3339))
		}
		posts, err := store.RecentPosts(ctx, timelineLimit)
		if err != nil {
			return err
		}
		return printPosts(cmd, posts, timelineFormat)
	},
}

func init() {
	publishCmd.Flags().StringVar(&publishTTL, "ttl", "", "lifetime of published items (default: snapshot.ttl)")
	publishCmd.Flags().BoolVar(&publishKeepLast, "keep-on-empty", true, "keep the previous timeline when no posts were fetched")
	timelineCmd.Flags().IntVar(&timelineLimit, "limit", 20, "number of posts to print (0 = all)")
	timelineCmd.Flags().StringVar(&timelineFormat, "format", "table", "output format: table or json")
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(timelineCmd)
}
