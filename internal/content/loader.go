package content

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"

	"sitefeed/internal/markdown"
	"sitefeed/internal/model"
	"sitefeed/internal/schema"
)

// EntryError reports an entry of a collection that could not be loaded.
// Err is a *schema.Error when the frontmatter failed validation.
type EntryError struct {
	Collection string
	Entry      string
	Err        error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s/%s: %v", e.Collection, e.Entry, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// Collections holds every local content collection.
type Collections struct {
	Gadgets []model.Gadget
	Books   []model.Book
}

// Load reads both collections under root. The error joins every failing entry.
func Load(root string) (Collections, error) {
	gadgets, gerr := LoadGadgets(root)
	books, berr := LoadBooks(root)
	return Collections{Gadgets: gadgets, Books: books}, errors.Join(gerr, berr)
}

// LoadGadgets reads and validates root/gadgets/*.md.
func LoadGadgets(root string) ([]model.Gadget, error) {
	return loadCollection(root, CollectionGadgets, GadgetSchema, func(slug, body string) *model.Gadget {
		return &model.Gadget{Slug: slug, Body: body}
	})
}

// LoadBooks reads and validates root/books/*.md.
func LoadBooks(root string) ([]model.Book, error) {
	return loadCollection(root, CollectionBooks, BookSchema, func(slug, body string) *model.Book {
		return &model.Book{Slug: slug, Body: body}
	})
}

// loadCollection validates every entry. Valid entries are returned even when
// others fail, sorted by slug; failures are joined into the error.
func loadCollection[T any](root, collection string, s *schema.Object, newEntry func(slug, body string) *T) ([]T, error) {
	paths, err := entryFiles(filepath.Join(root, collection))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", collection, err)
	}
	entries := make([]T, 0, len(paths))
	var errs []error
	for _, p := range paths {
		slug := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		entry, err := loadEntry(p, slug, s, newEntry)
		if err != nil {
			errs = append(errs, &EntryError{Collection: collection, Entry: slug, Err: err})
			continue
		}
		entries = append(entries, *entry)
	}
	slog.Debug("content: collection loaded", "collection", collection, "valid", len(entries), "invalid", len(errs))
	return entries, errors.Join(errs...)
}

func loadEntry[T any](path, slug string, s *schema.Object, newEntry func(slug, body string) *T) (*T, error) {
	doc, err := markdown.ParseFile(path)
	if err != nil {
		return nil, err
	}
	fields, err := s.Validate(doc.Frontmatter)
	if err != nil {
		return nil, err
	}
	entry := newEntry(slug, doc.Body)
	if err := mapstructure.Decode(fields, entry); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return entry, nil
}

// entryFiles lists markdown files directly under dir. A missing directory is
// an empty collection.
func entryFiles(dir string) ([]string, error) {
	des, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out []string
	for _, de := range des {
		if de.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(de.Name())) {
		case ".md", ".markdown":
			out = append(out, filepath.Join(dir, de.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}
