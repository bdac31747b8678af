// Package htmlsanitize strips markup from user-supplied text fields.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes every element and attribute. Policies are safe for
// concurrent use once built.
var strict = bluemonday.StrictPolicy()

// StripTags returns s as plain text: tags (and the contents of script/style
// elements) are removed and entities decoded, so "R&amp;D <b>Labs</b>"
// becomes "R&D Labs". The result must still be escaped when rendered.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// HasMarkup reports whether stripping s would change it beyond trimming.
func HasMarkup(s string) bool {
	return StripTags(s) != strings.TrimSpace(s)
}
