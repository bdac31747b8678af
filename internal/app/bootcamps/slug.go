package bootcamps

import (
	"errors"
	"strings"

	"github.com/goliatone/go-slug"
)

// Slugify derives the URL slug for a bootcamp name: lowercase ASCII words
// joined by single hyphens. Every run of characters outside [a-z0-9]
// becomes one hyphen, so "UI/UX Academy" gives "ui-ux-academy". A name
// with no ASCII letters or digits returns ErrEmptyName.
func Slugify(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}

	s, err := slug.Normalize(separate(name))
	if errors.Is(err, slug.ErrEmptySlug) {
		return "", ErrEmptyName
	}
	if err != nil {
		return "", err
	}
	return s, nil
}

// separate lowercases s and replaces each rune outside [a-z0-9] with a
// space, which slug.Normalize turns into a hyphen.
func separate(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, strings.ToLower(s))
}
