package worker

import (
	"context"
	"log/slog"
	"time"

	"sitefeed/internal/aggregate"
	"sitefeed/internal/model"
)

// SnapshotSink receives the merged timeline.
type SnapshotSink interface {
	SavePosts(ctx context.Context, posts []model.Post, ttl time.Duration) error
}

// SnapshotWorker periodically fetches every platform and republishes the
// merged timeline.
type SnapshotWorker struct {
	Fetchers []aggregate.Fetcher
	Sink     SnapshotSink
	Interval time.Duration
	TTL      time.Duration
	// KeepOnEmpty leaves the previous snapshot in place when every platform
	// returned nothing, which is what a full outage looks like from here.
	KeepOnEmpty bool
}

func (w *SnapshotWorker) Start(ctx context.Context) error {
	if w.Interval <= 0 {
		w.Interval = 30 * time.Minute
	}

	// initial run
	w.RunOnce(ctx)

	t := time.NewTicker(w.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single refresh. It returns the number of posts published,
// or -1 when nothing was written.
func (w *SnapshotWorker) RunOnce(ctx context.Context) int {
	posts := aggregate.FetchAll(ctx, w.Fetchers...)
	if len(posts) == 0 && w.KeepOnEmpty {
		slog.Warn("snapshot: no posts fetched, keeping previous snapshot")
		return -1
	}
	if err := w.Sink.SavePosts(ctx, posts, w.TTL); err != nil {
		slog.Error("snapshot: save failed", "error", err)
		return -1
	}
	slog.Info("snapshot: published", "posts", len(posts), "platforms", countByPlatform(posts))
	return len(posts)
}

func countByPlatform(posts []model.Post) map[string]int {
	m := map[string]int{}
	for _, p := range posts {
		m[p.Platform]++
	}
	return m
}
