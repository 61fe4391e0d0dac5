package markdown

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a content file split into YAML frontmatter and markdown body.
type Document struct {
	Frontmatter map[string]any
	Body        string
}

// ParseFile reads a content file from disk. See Parse.
func ParseFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse splits r into frontmatter and body. Frontmatter is optional and must
// open the document: a "---" line, YAML, then a closing "---" line.
// A document without frontmatter yields an empty, non-nil map.
func Parse(r io.Reader) (Document, error) {
	br := bufio.NewReader(r)
	peek, err := br.Peek(3)
	if err != nil && !errors.Is(err, io.EOF) {
		return Document{}, err
	}
	hasFM := string(peek) == "---"

	var fm strings.Builder
	if hasFM {
		if _, err := br.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
			return Document{}, err
		}
		closed := false
		for {
			l, err := br.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				return Document{}, err
			}
			if strings.TrimSpace(l) == "---" {
				closed = true
				break
			}
			fm.WriteString(l)
			if errors.Is(err, io.EOF) {
				break
			}
		}
		if !closed {
			return Document{}, errors.New("markdown: unterminated frontmatter")
		}
	}

	body, err := io.ReadAll(br)
	if err != nil {
		return Document{}, err
	}

	d := Document{
		Frontmatter: map[string]any{},
		Body:        string(body),
	}
	if hasFM {
		if err := yaml.Unmarshal([]byte(fm.String()), &d.Frontmatter); err != nil {
			return Document{}, fmt.Errorf("markdown: frontmatter: %w", err)
		}
		if d.Frontmatter == nil {
			d.Frontmatter = map[string]any{}
		}
	}
	return d, nil
}
