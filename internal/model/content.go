package model

// Gadget is a locally authored gadget entry from the gadgets collection.
type Gadget struct {
	Slug        string   `json:"slug" mapstructure:"-"`
	Name        string   `json:"name" mapstructure:"name"`
	Description string   `json:"description" mapstructure:"description"`
	ImageURL    string   `json:"image_url,omitempty" mapstructure:"image_url"`
	Category    string   `json:"category" mapstructure:"category"`
	ReviewURL   string   `json:"review_url,omitempty" mapstructure:"review_url"`
	AmazonURL   string   `json:"amazon_url,omitempty" mapstructure:"amazon_url"`
	Tags        []string `json:"tags" mapstructure:"tags"`
	CreatedAt   string   `json:"created_at" mapstructure:"created_at"`
	Body        string   `json:"body,omitempty" mapstructure:"-"`
}

// Book is a locally authored book entry from the books collection.
type Book struct {
	Slug        string   `json:"slug" mapstructure:"-"`
	Title       string   `json:"title" mapstructure:"title"`
	Author      string   `json:"author" mapstructure:"author"`
	Description string   `json:"description" mapstructure:"description"`
	ImageURL    string   `json:"image_url,omitempty" mapstructure:"image_url"`
	ReviewURL   string   `json:"review_url,omitempty" mapstructure:"review_url"`
	AmazonURL   string   `json:"amazon_url,omitempty" mapstructure:"amazon_url"`
	ReadDate    string   `json:"read_date,omitempty" mapstructure:"read_date"`
	Rating      *float64 `json:"rating,omitempty" mapstructure:"rating"`
	Tags        []string `json:"tags" mapstructure:"tags"`
	CreatedAt   string   `json:"created_at" mapstructure:"created_at"`
	Body        string   `json:"body,omitempty" mapstructure:"-"`
}

// GadgetRecord is a gadgets row in the remote store. ID, Slug and UpdatedAt
// are assigned by the server.
type GadgetRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Category    string   `json:"category"`
	ReviewURL   *string  `json:"review_url,omitempty"`
	AmazonURL   *string  `json:"amazon_url,omitempty"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// BookRecord is a books row in the remote store.
type BookRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Author      string   `json:"author"`
	Description string   `json:"description"`
	ImageURL    *string  `json:"image_url,omitempty"`
	ReviewURL   *string  `json:"review_url,omitempty"`
	AmazonURL   *string  `json:"amazon_url,omitempty"`
	ReadDate    *string  `json:"read_date,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}
