// internal/app/system/textclean/textclean.go

// Package textclean normalizes free-text input (member names, titles,
// course names) before it is stored. Roster fields are plain text, so
// any markup that arrives through forms or bulk import is stripped, not
// escaped into the data.
package textclean

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Clean strips all HTML from s and trims surrounding whitespace.
func Clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(s)))
}
