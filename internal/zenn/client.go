package zenn

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
	// DefaultBaseURL is the Zenn API root.
	DefaultBaseURL = "https://zenn.dev/api"
	// DefaultSiteURL prefixes article paths to build external links.
	DefaultSiteURL = "https://zenn.dev"
	// DefaultUsername is used when no username is configured.
	DefaultUsername = "zenn"
)

// Client fetches a single user's Zenn articles.
type Client struct {
	baseURL  string
	siteURL  string
	username string
	client   *http.Client
}

// NewClient creates a Zenn client. Empty values select the defaults.
func NewClient(baseURL, siteURL, username string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if strings.TrimSpace(siteURL) == "" {
		siteURL = DefaultSiteURL
	}
	username = strings.TrimSpace(username)
	if username == "" {
		slog.Warn("zenn: username not configured, using placeholder", "username", DefaultUsername)
		username = DefaultUsername
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		siteURL:  strings.TrimRight(siteURL, "/"),
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
func (c *Client) Platform() string { return model.PlatformZenn }

// Username returns the account whose articles are fetched.
func (c *Client) Username() string { return c.username }

// FetchArticles returns the user's articles as Posts, or an empty slice on any
// failure (logged).
func (c *Client) FetchArticles(ctx context.Context) []model.Post {
	posts, err := c.fetch(ctx)
	if err != nil {
		slog.Error("zenn: failed to fetch articles", "username", c.username, "error", err)
		return []model.Post{}
	}
	return posts
}

// fetch performs one request. Only the first page is read; next_page is ignored.
// API: GET /articles?username={username}
func (c *Client) fetch(ctx context.Context) ([]model.Post, error) {
	endpoint := fmt.Sprintf("%s/articles", c.baseURL)
	q := url.Values{"username": {c.username}}
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
		return nil, fmt.Errorf("zenn: status %d", resp.StatusCode)
	}
	var raw ArticlesResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("zenn: decode articles: %w", err)
	}
	posts := make([]model.Post, 0, len(raw.Articles))
	for _, a := range raw.Articles {
		posts = append(posts, c.ToPost(a))
	}
	return posts, nil
}

// ToPost maps a raw Zenn article to a Post. The list endpoint exposes neither
// body nor tags, and there is no summary field, so the description is built
// from the emoji and title.
func (c *Client) ToPost(a Article) model.Post {
	return model.Post{
		ID:          strconv.FormatInt(a.ID, 10),
		Title:       a.Title,
		Slug:        a.Slug,
		Description: a.Emoji + " " + a.Title,
		Content:     "",
		ExternalURL: c.siteURL + a.Path,
		Platform:    model.PlatformZenn,
		PublishedAt: a.PublishedAt,
		Tags:        []string{},
		CreatedAt:   a.PublishedAt,
		UpdatedAt:   a.BodyUpdatedAt,
	}
}
