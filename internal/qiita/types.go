package qiita

import "encoding/json"

// Tag is a tag attached to a Qiita item.
type Tag struct {
	Name     string   `json:"name"`
	Versions []string `json:"versions"`
}

// User is the author block embedded in a Qiita item.
type User struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	ProfileImageURL   string  `json:"profile_image_url"`
	GithubLoginName   *string `json:"github_login_name"`
	TwitterScreenName *string `json:"twitter_screen_name"`
	FollowersCount    int     `json:"followers_count"`
	FolloweesCount    int     `json:"followees_count"`
	ItemsCount        int     `json:"items_count"`
}

// Article mirrors an item returned by GET /users/:user_id/items.
type Article struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	URL                 string          `json:"url"`
	Body                string          `json:"body"`
	RenderedBody        string          `json:"rendered_body"`
	CreatedAt           string          `json:"created_at"`
	UpdatedAt           string          `json:"updated_at"`
	LikesCount          int             `json:"likes_count"`
	StocksCount         int             `json:"stocks_count"`
	CommentsCount       int             `json:"comments_count"`
	ReactionsCount      int             `json:"reactions_count"`
	Private             bool            `json:"private"`
	Coediting           bool            `json:"coediting"`
	Tags                []Tag           `json:"tags"`
	User                *User           `json:"user"`
	PageViewsCount      *int            `json:"page_views_count"`
	TeamMembership      json.RawMessage `json:"team_membership"`
	OrganizationURLName *string         `json:"organization_url_name"`
	Slide               bool            `json:"slide"`
}
