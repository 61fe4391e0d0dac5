package aggregate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitefeed/internal/model"
	"sitefeed/internal/qiita"
	"sitefeed/internal/zenn"
)

type stubFetcher struct {
	platform string
	posts    []model.Post
}

func (s stubFetcher) Platform() string { return s.platform }

func (s stubFetcher) FetchArticles(context.Context) []model.Post { return s.posts }

func TestFetchAll_MergesNewestFirst(t *testing.T) {
	q := stubFetcher{platform: "qiita", posts: []model.Post{
		{ID: "q1", Platform: "qiita", PublishedAt: "2024-01-10T00:00:00Z"},
		{ID: "q2", Platform: "qiita", PublishedAt: "not a date"},
	}}
	z := stubFetcher{platform: "zenn", posts: []model.Post{
		{ID: "1", Platform: "zenn", PublishedAt: "2024-02-01T09:00:00+09:00"},
		{ID: "2", Platform: "zenn", PublishedAt: "2023-12-31"},
	}}

	got := FetchAll(context.Background(), q, z)
	ids := make([]string, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.Key())
	}
	assert.Equal(t, []string{"zenn:1", "qiita:q1", "zenn:2", "qiita:q2"}, ids)
}

func TestFetchAll_OnePlatformDown(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"articles":[{"id":1,"title":"ok","slug":"ok","emoji":"✅","path":"/a/ok","published_at":"2024-01-01T00:00:00Z","body_updated_at":"2024-01-01T00:00:00Z"}]}`))
	}))
	defer up.Close()

	got := FetchAll(context.Background(),
		qiita.NewClient(down.URL, "alice"),
		zenn.NewClient(up.URL, "", "alice"),
	)
	require.Len(t, got, 1)
	assert.Equal(t, "zenn", got[0].Platform)
}

func TestFetchAll_NoFetchers(t *testing.T) {
	got := FetchAll(context.Background())
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterAndLimit(t *testing.T) {
	posts := []model.Post{
		{ID: "a", Platform: "qiita"},
		{ID: "b", Platform: "zenn"},
		{ID: "c", Platform: "qiita"},
	}
	assert.Len(t, Filter(posts, ""), 3)
	assert.Len(t, Filter(posts, "Qiita"), 2)
	assert.Empty(t, Filter(posts, "note"))

	assert.Len(t, Limit(posts, 2), 2)
	assert.Len(t, Limit(posts, 0), 3)
	assert.Len(t, Limit(posts, 10), 3)
}
