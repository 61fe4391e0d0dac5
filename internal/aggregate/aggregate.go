package aggregate

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"sitefeed/internal/model"
)

// Fetcher retrieves one platform's articles as Posts. Implementations never
// fail: an unavailable platform yields an empty slice.
type Fetcher interface {
	Platform() string
	FetchArticles(ctx context.Context) []model.Post
}

// FetchAll runs every fetcher concurrently and merges the results, newest first.
func FetchAll(ctx context.Context, fetchers ...Fetcher) []model.Post {
	results := make([][]model.Post, len(fetchers))
	var g errgroup.Group
	for i, f := range fetchers {
		i, f := i, f
		g.Go(func() error {
			results[i] = f.FetchArticles(ctx)
			slog.Debug("aggregate: platform fetched", "platform", f.Platform(), "count", len(results[i]))
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, r := range results {
		total += len(r)
	}
	merged := make([]model.Post, 0, total)
	for _, r := range results {
		merged = append(merged, r...)
	}
	SortNewestFirst(merged)
	return merged
}

// SortNewestFirst orders posts by published_at descending. Posts whose
// timestamp cannot be parsed go last; ties keep their input order.
func SortNewestFirst(posts []model.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		ti, oki := posts[i].PublishedTime()
		tj, okj := posts[j].PublishedTime()
		switch {
		case oki && okj:
			return ti.After(tj)
		case oki != okj:
			return oki
		default:
			return false
		}
	})
}

// Filter keeps the posts of one platform. An empty platform keeps everything.
func Filter(posts []model.Post, platform string) []model.Post {
	platform = strings.ToLower(strings.TrimSpace(platform))
	if platform == "" {
		return posts
	}
	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if p.Platform == platform {
			out = append(out, p)
		}
	}
	return out
}

// Limit returns at most n posts. n <= 0 means no limit.
func Limit(posts []model.Post, n int) []model.Post {
	if n <= 0 || len(posts) <= n {
		return posts
	}
	return posts[:n]
}
