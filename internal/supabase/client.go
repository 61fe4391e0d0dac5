package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"sitefeed/internal/model"
)

// Table names in the remote store.
const (
	TableGadgets = "gadgets"
	TableBooks   = "books"
)

// ErrNotFound is returned when no row matches a slug.
var ErrNotFound = errors.New("supabase: not found")

// Config holds the connection settings. Both values are required.
type Config struct {
	URL     string `validate:"required,url"`
	AnonKey string `validate:"required"`
	Timeout time.Duration
}

var validate = validator.New()

// Client is a read-only typed handle to the gadgets and books tables, served
// through the store's REST interface.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New validates cfg and returns a client. A missing URL or key is reported
// immediately; there is no lazy connection to fail later.
func New(cfg Config) (*Client, error) {
	cfg.URL = strings.TrimSpace(cfg.URL)
	cfg.AnonKey = strings.TrimSpace(cfg.AnonKey)
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return nil, fmt.Errorf("supabase: invalid config: %s", strings.Join(fields, ", "))
		}
		return nil, fmt.Errorf("supabase: invalid config: %w", err)
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/") + "/rest/v1",
		apiKey:  cfg.AnonKey,
		http:    &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// ListGadgets returns every gadget, newest first.
func (c *Client) ListGadgets(ctx context.Context) ([]model.GadgetRecord, error) {
	var out []model.GadgetRecord
	if err := c.selectRows(ctx, TableGadgets, nil, &out); err != nil {
		return nil, err
	}
	return normalizeGadgets(out), nil
}

// GadgetBySlug returns the gadget with the given slug or ErrNotFound.
func (c *Client) GadgetBySlug(ctx context.Context, slug string) (model.GadgetRecord, error) {
	var out []model.GadgetRecord
	if err := c.selectRows(ctx, TableGadgets, bySlug(slug), &out); err != nil {
		return model.GadgetRecord{}, err
	}
	if len(out) == 0 {
		return model.GadgetRecord{}, fmt.Errorf("gadget %q: %w", slug, ErrNotFound)
	}
	return normalizeGadgets(out)[0], nil
}

// ListBooks returns every book, newest first.
func (c *Client) ListBooks(ctx context.Context) ([]model.BookRecord, error) {
	var out []model.BookRecord
	if err := c.selectRows(ctx, TableBooks, nil, &out); err != nil {
		return nil, err
	}
	return normalizeBooks(out), nil
}

// BookBySlug returns the book with the given slug or ErrNotFound.
func (c *Client) BookBySlug(ctx context.Context, slug string) (model.BookRecord, error) {
	var out []model.BookRecord
	if err := c.selectRows(ctx, TableBooks, bySlug(slug), &out); err != nil {
		return model.BookRecord{}, err
	}
	if len(out) == 0 {
		return model.BookRecord{}, fmt.Errorf("book %q: %w", slug, ErrNotFound)
	}
	return normalizeBooks(out)[0], nil
}

func bySlug(slug string) url.Values {
	return url.Values{
		"slug":  {"eq." + slug},
		"limit": {"1"},
	}
}

// selectRows issues GET /rest/v1/{table}?select=*&order=created_at.desc plus
// filters and decodes the JSON array into out.
func (c *Client) selectRows(ctx context.Context, table string, filters url.Values, out any) error {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "created_at.desc")
	for k, vs := range filters {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, url.PathEscape(table), q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("supabase: select %s failed: status=%d body=%s", table, resp.StatusCode, string(b))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("supabase: decode %s: %w", table, err)
	}
	return nil
}

// Tags is a non-null array column, but rows written before it had a default
// may still carry null.
func normalizeGadgets(rows []model.GadgetRecord) []model.GadgetRecord {
	for i := range rows {
		if rows[i].Tags == nil {
			rows[i].Tags = []string{}
		}
	}
	return rows
}

func normalizeBooks(rows []model.BookRecord) []model.BookRecord {
	for i := range rows {
		if rows[i].Tags == nil {
			rows[i].Tags = []string{}
		}
	}
	return rows
}
