package qiita

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"sitefeed/internal/model"
)

const (
	// DefaultBaseURL is the Qiita API v2 root.
	DefaultBaseURL = "https://qiita.com/api/v2"
	// DefaultUsername is used when no username is configured.
	DefaultUsername = "qiita"

	perPage = 100
)

// Client fetches a single user's Qiita items.
type Client struct {
	baseURL  string
	username string
	client   *http.Client
}

// NewClient creates a Qiita client. An empty baseURL selects DefaultBaseURL and
// an empty username falls back to DefaultUsername.
func NewClient(baseURL, username string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	username = strings.TrimSpace(username)
	if username == "" {
		slog.Warn("qiita: username not configured, using placeholder", "username", DefaultUsername)
		username = DefaultUsername
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		client:   &http.Client{},
	}
}

// WithHTTPClient returns a copy of c that issues requests through hc.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c2 := *c
	if hc != nil {
		c2.client = hc
	}
	return &c2
}

// Platform returns the platform tag of posts produced by this client.
func (c *Client) Platform() string { return model.PlatformQiita }

// Username returns the account whose items are fetched.
func (c *Client) Username() string { return c.username }

// FetchArticles returns the first page of the user's items as Posts.
// Any failure is logged and yields an empty slice so that one platform's
// outage never hides another platform's posts.
func (c *Client) FetchArticles(ctx context.Context) []model.Post {
	posts, err := c.fetch(ctx)
	if err != nil {
		slog.Error("qiita: failed to fetch articles", "username", c.username, "error", err)
		return []model.Post{}
	}
	return posts
}

// fetch performs one request.
// API: GET /users/{username}/items?per_page=100&page=1
func (c *Client) fetch(ctx context.Context) ([]model.Post, error) {
	endpoint := fmt.Sprintf("%s/users/%s/items", c.baseURL, url.PathEscape(c.username))
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("page", "1")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("qiita: status %d", resp.StatusCode)
	}
	var raw []Article
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("qiita: decode items: %w", err)
	}
	posts := make([]model.Post, 0, len(raw))
	for _, a := range raw {
		posts = append(posts, ToPost(a))
	}
	return posts, nil
}

// ToPost maps a raw Qiita item to a Post. Qiita has no separate slug, so the
// item ID doubles as one.
func ToPost(a Article) model.Post {
	tags := make([]string, 0, len(a.Tags))
	for _, t := range a.Tags {
		tags = append(tags, t.Name)
	}
	return model.Post{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.ID,
		Description: Describe(a.Body),
		Content:     a.Body,
		ExternalURL: a.URL,
		Platform:    model.PlatformQiita,
		PublishedAt: a.CreatedAt,
		Tags:        tags,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
