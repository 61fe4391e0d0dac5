package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitefeed/internal/aggregate"
	"sitefeed/internal/model"
)

type fakeFetcher struct {
	platform string
	posts    []model.Post
}

func (f fakeFetcher) Platform() string { return f.platform }

func (f fakeFetcher) FetchArticles(context.Context) []model.Post { return f.posts }

type fakeSink struct {
	mu    sync.Mutex
	saves [][]model.Post
	ttl   time.Duration
	err   error
}

func (s *fakeSink) SavePosts(_ context.Context, posts []model.Post, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.saves = append(s.saves, posts)
	s.ttl = ttl
	return nil
}

func (s *fakeSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saves)
}

func TestSnapshotWorker_RunOnce(t *testing.T) {
	sink := &fakeSink{}
	w := &SnapshotWorker{
		Fetchers: []aggregate.Fetcher{
			fakeFetcher{platform: "qiita", posts: []model.Post{{ID: "a", Platform: "qiita", PublishedAt: "2024-01-01T00:00:00Z"}}},
			fakeFetcher{platform: "zenn", posts: []model.Post{{ID: "1", Platform: "zenn", PublishedAt: "2024-03-01T00:00:00Z"}}},
		},
		Sink: sink,
		TTL:  time.Hour,
	}

	assert.Equal(t, 2, w.RunOnce(context.Background()))
	require.Equal(t, 1, sink.count())
	assert.Equal(t, "zenn", sink.saves[0][0].Platform)
	assert.Equal(t, time.Hour, sink.ttl)
}

func TestSnapshotWorker_KeepOnEmpty(t *testing.T) {
	sink := &fakeSink{}
	w := &SnapshotWorker{
		Fetchers:    []aggregate.Fetcher{fakeFetcher{platform: "qiita"}},
		Sink:        sink,
		KeepOnEmpty: true,
	}
	assert.Equal(t, -1, w.RunOnce(context.Background()))
	assert.Equal(t, 0, sink.count())

	w.KeepOnEmpty = false
	assert.Equal(t, 0, w.RunOnce(context.Background()))
	assert.Equal(t, 1, sink.count())
}

func TestSnapshotWorker_SinkError(t *testing.T) {
	sink := &fakeSink{err: errors.New("redis down")}
	w := &SnapshotWorker{
		Fetchers: []aggregate.Fetcher{fakeFetcher{platform: "zenn", posts: []model.Post{{ID: "1", Platform: "zenn"}}}},
		Sink:     sink,
	}
	assert.Equal(t, -1, w.RunOnce(context.Background()))
}

func TestManager_StopsOnCancel(t *testing.T) {
	sink := &fakeSink{}
	w := &SnapshotWorker{
		Fetchers: []aggregate.Fetcher{fakeFetcher{platform: "zenn"}},
		Sink:     sink,
		Interval: time.Hour,
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewManager(w).Start(ctx) }()

	require.Eventually(t, func() bool { return sink.count() == 1 }, time.Second, 10*time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("manager did not stop")
	}
}

type failingWorker struct{ err error }

func (f failingWorker) Start(context.Context) error { return f.err }

func TestManager_FailureCancelsOthers(t *testing.T) {
	boom := errors.New("boom")
	sink := &fakeSink{}
	snap := &SnapshotWorker{
		Fetchers: []aggregate.Fetcher{fakeFetcher{platform: "zenn"}},
		Sink:     sink,
		Interval: time.Hour,
	}
	done := make(chan error, 1)
	go func() { done <- NewManager(snap, failingWorker{err: boom}).Start(context.Background()) }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	case <-time.After(2 * time.Second):
		t.Fatal("manager did not stop after worker failure")
	}
}
