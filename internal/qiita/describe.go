package qiita

import "strings"

// DescriptionLimit is the number of characters kept in a derived description.
const DescriptionLimit = 100

var markdownMarks = strings.NewReplacer(
	"#", "",
	"*", "",
	"`", "",
	"[", "",
	"]", "",
)

// Describe derives a plain-text summary from a markdown body: markdown marks
// (# * ` [ ]) are dropped, newlines become spaces, the result is trimmed and cut
// to DescriptionLimit characters, with "..." appended when something was cut.
func Describe(body string) string {
	s := markdownMarks.Replace(body)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= DescriptionLimit {
		return s
	}
	return string(r[:DescriptionLimit]) + "..."
}
