package supabase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresConfig(t *testing.T) {
	cases := map[string]Config{
		"empty key":   {URL: "https://abc.supabase.co", AnonKey: ""},
		"blank key":   {URL: "https://abc.supabase.co", AnonKey: "   "},
		"empty url":   {URL: "", AnonKey: "key"},
		"invalid url": {URL: "not a url", AnonKey: "key"},
		"both empty":  {},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			c, err := New(cfg)
			require.Error(t, err)
			assert.Nil(t, c)
		})
	}

	c, err := New(Config{URL: "https://abc.supabase.co/", AnonKey: "key"})
	require.NoError(t, err)
	assert.Equal(t, "https://abc.supabase.co/rest/v1", c.baseURL)
}

type capture struct {
	mu     sync.Mutex
	path   string
	query  map[string]string
	apikey string
	bearer string
}

func newServer(t *testing.T, body string, status int, c *capture) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.mu.Lock()
		c.path = r.URL.Path
		c.query = map[string]string{}
		for k := range r.URL.Query() {
			c.query[k] = r.URL.Query().Get(k)
		}
		c.apikey = r.Header.Get("apikey")
		c.bearer = r.Header.Get("Authorization")
		c.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestListGadgets(t *testing.T) {
	var c capture
	ts := newServer(t, `[
		{"id":"1","name":"HHKB","slug":"hhkb","description":"kb","category":"keyboard","image_url":null,"tags":null,"created_at":"2024-05-01","updated_at":"2024-05-02"},
		{"id":"2","name":"Mouse","slug":"mouse","description":"m","category":"input","review_url":"https://example.com/r","tags":["desk"],"created_at":"2024-04-01","updated_at":"2024-04-01"}
	]`, http.StatusOK, &c)

	cli, err := New(Config{URL: ts.URL, AnonKey: "anon"})
	require.NoError(t, err)

	rows, err := cli.ListGadgets(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "hhkb", rows[0].Slug)
	assert.Nil(t, rows[0].ImageURL)
	assert.Equal(t, []string{}, rows[0].Tags)
	require.NotNil(t, rows[1].ReviewURL)
	assert.Equal(t, "https://example.com/r", *rows[1].ReviewURL)

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Equal(t, "/rest/v1/gadgets", c.path)
	assert.Equal(t, "*", c.query["select"])
	assert.Equal(t, "created_at.desc", c.query["order"])
	assert.Equal(t, "anon", c.apikey)
	assert.Equal(t, "Bearer anon", c.bearer)
}

func TestBookBySlug(t *testing.T) {
	var c capture
	ts := newServer(t, `[{"id":"9","title":"Go","slug":"go","author":"A","description":"d","rating":4.5,"tags":[],"created_at":"2024-01-01","updated_at":"2024-01-01"}]`, http.StatusOK, &c)

	cli, err := New(Config{URL: ts.URL, AnonKey: "anon"})
	require.NoError(t, err)

	b, err := cli.BookBySlug(context.Background(), "go")
	require.NoError(t, err)
	assert.Equal(t, "Go", b.Title)
	require.NotNil(t, b.Rating)
	assert.Equal(t, 4.5, *b.Rating)

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Equal(t, "/rest/v1/books", c.path)
	assert.Equal(t, "eq.go", c.query["slug"])
	assert.Equal(t, "1", c.query["limit"])
}

func TestBySlug_NotFound(t *testing.T) {
	var c capture
	ts := newServer(t, `[]`, http.StatusOK, &c)
	cli, err := New(Config{URL: ts.URL, AnonKey: "anon"})
	require.NoError(t, err)

	_, err = cli.GadgetBySlug(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = cli.BookBySlug(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListBooks_ErrorStatus(t *testing.T) {
	var c capture
	ts := newServer(t, `{"message":"JWT expired"}`, http.StatusUnauthorized, &c)
	cli, err := New(Config{URL: ts.URL, AnonKey: "anon"})
	require.NoError(t, err)

	rows, err := cli.ListBooks(context.Background())
	require.Error(t, err)
	assert.Nil(t, rows)
	assert.Contains(t, err.Error(), "status=401")
	assert.Contains(t, err.Error(), "JWT expired")
}
