package content

import "sitefeed/internal/schema"

// Collection names, also the subdirectory names under the content root.
const (
	CollectionGadgets = "gadgets"
	CollectionBooks   = "books"
)

// GadgetSchema validates gadgets frontmatter.
var GadgetSchema = schema.NewObject(
	schema.Field{Name: "name", Rule: schema.String()},
	schema.Field{Name: "description", Rule: schema.String()},
	schema.Field{Name: "image_url", Rule: schema.Optional(schema.String())},
	schema.Field{Name: "category", Rule: schema.String()},
	schema.Field{Name: "review_url", Rule: schema.Optional(schema.String())},
	schema.Field{Name: "amazon_url", Rule: schema.Optional(schema.String())},
	schema.Field{Name: "tags", Rule: schema.Default(schema.StringList(), []string{})},
	schema.Field{Name: "created_at", Rule: schema.String()},
)

// BookSchema validates books frontmatter. rating is 1 to 5 inclusive.
var BookSchema = schema.NewObject(
	schema.Field{Name: "title", Rule: schema.String()},
	schema.Field{Name: "author", Rule: schema.String()},
	schema.Field{Name: "description", Rule: schema.String()},
	schema.Field{Name: "image_url", Rule: schema.Optional(schema.String())},
	schema.Field{Name: "review_url", Rule: schema.Optional(schema.String())},
	schema.Field{Name: "amazon_url", Rule: schema.Optional(schema.String())},
	schema.Field{Name: "read_date", Rule: schema.Optional(schema.String())},
	schema.Field{Name: "rating", Rule: schema.Optional(schema.Chain(schema.Number(), schema.Min(1), schema.Max(5)))},
	schema.Field{Name: "tags", Rule: schema.Default(schema.StringList(), []string{})},
	schema.Field{Name: "created_at", Rule: schema.String()},
)
