package zenn

import "encoding/json"

// User is the author block embedded in a Zenn article.
type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	AvatarSmallURL string `json:"avatar_small_url"`
}

// Article mirrors an entry of the articles list endpoint.
type Article struct {
	ID                         int64           `json:"id"`
	PostType                   string          `json:"post_type"`
	Title                      string          `json:"title"`
	Slug                       string          `json:"slug"`
	CommentsCount              int             `json:"comments_count"`
	LikedCount                 int             `json:"liked_count"`
	BookmarkedCount            int             `json:"bookmarked_count"`
	BodyLettersCount           int             `json:"body_letters_count"`
	ArticleType                string          `json:"article_type"`
	Emoji                      string          `json:"emoji"`
	IsSuspendingPrivate        bool            `json:"is_suspending_private"`
	PublishedAt                string          `json:"published_at"`
	BodyUpdatedAt              string          `json:"body_updated_at"`
	SourceRepoUpdatedAt        string          `json:"source_repo_updated_at"`
	Pinned                     bool            `json:"pinned"`
	Path                       string          `json:"path"`
	PrincipalType              string          `json:"principal_type"`
	User                       *User           `json:"user"`
	Publication                json.RawMessage `json:"publication"`
	PublicationArticleOverride json.RawMessage `json:"publication_article_override"`
}

// ArticlesResponse is the envelope returned by GET /articles.
type ArticlesResponse struct {
	Articles   []Article `json:"articles"`
	NextPage   *int      `json:"next_page"`
	TotalCount *int      `json:"total_count"`
}
