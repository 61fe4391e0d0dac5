package model

import "time"

// Platform identifiers used in Post.Platform.
const (
	PlatformQiita = "qiita"
	PlatformZenn  = "zenn"
)

// Post is the unified representation of an article from any blogging platform.
// Every field is always set; absent source data maps to "" or an empty slice.
type Post struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	ExternalURL string   `json:"external_url"`
	Platform    string   `json:"platform"`
	PublishedAt string   `json:"published_at"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// Key identifies a post across platforms. IDs alone are only unique per platform.
func (p Post) Key() string {
	return p.Platform + ":" + p.ID
}

// PublishedTime parses PublishedAt as RFC 3339 or a bare date (midnight UTC).
// ok is false when it is neither.
func (p Post) PublishedTime() (t time.Time, ok bool) {
	if t, err := time.Parse(time.RFC3339, p.PublishedAt); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.DateOnly, p.PublishedAt); err == nil {
		return t, true
	}
	return time.Time{}, false
}
