package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitefeed/internal/schema"
)

func writeEntry(t *testing.T, root, collection, name, content string) {
	t.Helper()
	dir := filepath.Join(root, collection)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadBooks(t *testing.T) {
	root := t.TempDir()
	writeEntry(t, root, CollectionBooks, "go-programming.md", `---
title: The Go Programming Language
author: Alan Donovan
description: The gopher book.
rating: 5
read_date: "2023-08-01"
tags: [go, programming]
created_at: "2023-08-02"
---
Great read.
`)
	writeEntry(t, root, CollectionBooks, "no-tags.md", `---
title: Untagged
author: Someone
description: No tags here.
created_at: "2024-01-01"
---
`)
	writeEntry(t, root, CollectionBooks, "README.txt", "not an entry")

	books, err := LoadBooks(root)
	require.NoError(t, err)
	require.Len(t, books, 2)

	b := books[0]
	assert.Equal(t, "go-programming", b.Slug)
	assert.Equal(t, "The Go Programming Language", b.Title)
	require.NotNil(t, b.Rating)
	assert.Equal(t, 5.0, *b.Rating)
	assert.Equal(t, "2023-08-01", b.ReadDate)
	assert.Equal(t, []string{"go", "programming"}, b.Tags)
	assert.Equal(t, "Great read.\n", b.Body)

	u := books[1]
	assert.Equal(t, "no-tags", u.Slug)
	assert.Nil(t, u.Rating)
	assert.Equal(t, []string{}, u.Tags)
}

func TestLoadBooks_RatingOutOfRange(t *testing.T) {
	root := t.TempDir()
	writeEntry(t, root, CollectionBooks, "too-good.md", `---
title: Too Good
author: A
description: d
rating: 6
created_at: "2024-01-01"
---
`)
	writeEntry(t, root, CollectionBooks, "nan.md", `---
title: Not A Number
author: A
description: d
rating: .nan
created_at: "2024-01-01"
---
`)
	writeEntry(t, root, CollectionBooks, "fine.md", `---
title: Fine
author: A
description: d
rating: 1
created_at: "2024-01-01"
---
`)

	books, err := LoadBooks(root)
	require.Error(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "fine", books[0].Slug)

	var ee *EntryError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, CollectionBooks, ee.Collection)

	var se *schema.Error
	require.True(t, errors.As(err, &se))
	assert.True(t, se.Has("rating"))
	assert.Contains(t, err.Error(), "books/too-good: invalid rating")
	assert.Contains(t, err.Error(), "books/nan: invalid rating: expected number, got NaN")
}

func TestLoadBooks_UnquotedDate(t *testing.T) {
	root := t.TempDir()
	writeEntry(t, root, CollectionBooks, "dated.md", `---
title: Dated
author: A
description: d
created_at: 2024-01-01
---
`)

	books, err := LoadBooks(root)
	require.Error(t, err)
	assert.Empty(t, books)

	var se *schema.Error
	require.True(t, errors.As(err, &se))
	assert.True(t, se.Has("created_at"))
	assert.Contains(t, err.Error(), "books/dated: invalid created_at: expected string, got date (quote the value)")
}

func TestLoadGadgets(t *testing.T) {
	root := t.TempDir()
	writeEntry(t, root, CollectionGadgets, "hhkb.md", `---
name: HHKB
description: Keyboard
category: keyboard
image_url: https://example.com/hhkb.jpg
created_at: "2024-05-01"
---
`)
	writeEntry(t, root, CollectionGadgets, "broken.md", `---
name: 12
description: Missing category
tags: [ok, 3]
created_at: "2024-05-01"
---
`)

	gadgets, err := LoadGadgets(root)
	require.Len(t, gadgets, 1)
	assert.Equal(t, "hhkb", gadgets[0].Slug)
	assert.Equal(t, "https://example.com/hhkb.jpg", gadgets[0].ImageURL)
	assert.Equal(t, "", gadgets[0].ReviewURL)
	assert.Equal(t, []string{}, gadgets[0].Tags)

	var se *schema.Error
	require.True(t, errors.As(err, &se))
	assert.True(t, se.Has("name"))
	assert.True(t, se.Has("category"))
	assert.True(t, se.Has("tags"))
	assert.False(t, se.Has("description"))
}

func TestLoad_MissingDirectories(t *testing.T) {
	c, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, c.Gadgets)
	assert.Empty(t, c.Books)
}

func TestLoad_JoinsCollections(t *testing.T) {
	root := t.TempDir()
	writeEntry(t, root, CollectionGadgets, "g.md", "---\nname: g\n---\n")
	writeEntry(t, root, CollectionBooks, "b.md", "---\ntitle: b\n---\n")

	_, err := Load(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gadgets/g:")
	assert.Contains(t, err.Error(), "books/b:")
}
