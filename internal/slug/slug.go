// Package slug derives URL-friendly identifiers for blog posts.
package slug

import (
	"regexp"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[^\w\s-]`)
	separators   = regexp.MustCompile(`[-\s]+`)
)

// Generate lowercases the title, strips everything that is not a word
// character, whitespace or hyphen, collapses runs of whitespace/hyphens into a
// single hyphen and trims leading/trailing hyphens. Applying it to its own
// output is a no-op.
func Generate(title string) string {
	s := strings.ToLower(title)
	s = invalidChars.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
