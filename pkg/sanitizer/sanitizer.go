package sanitizer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// CleanText removes all HTML/XML markup from user-submitted text and
// collapses the result back to plain text. Entities introduced by the
// sanitizer are unescaped so the stored value is what the reader sees.
//
// Examples:
//   - "<b>Hay quá</b>" -> "Hay quá"
//   - "Plain text" -> "Plain text"
//   - "<script>alert(1)</script>ok" -> "ok"
func CleanText(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	// Fast path: no markup at all
	if !strings.ContainsAny(input, "<&") {
		return input
	}

	cleaned := strict.Sanitize(input)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}
