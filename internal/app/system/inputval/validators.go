// internal/app/system/inputval/validators.go
package inputval

import (
	"regexp"
	"strings"

	"github.com/dalemusser/devcamper/internal/domain/models"
)

var (
	// httpURLPattern accepts http(s) URLs with a dotted host.
	httpURLPattern = regexp.MustCompile(`^https?://(www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_+.~#?&/=]*)$`)

	// emailPattern is deliberately loose: word characters separated by
	// single dots or hyphens, with a 2–3 letter final label.
	emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
)

var allowedCareers = func() map[string]bool {
	m := make(map[string]bool, len(models.CareerTypes))
	for _, c := range models.CareerTypes {
		m[c] = true
	}
	return m
}()

// IsValidHTTPURL reports whether s is an http or https URL.
// Surrounding whitespace is ignored.
func IsValidHTTPURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return httpURLPattern.MatchString(s)
}

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return emailPattern.MatchString(s)
}

// IsValidCareer reports whether s is one of models.CareerTypes.
// Matching is exact; "web development" is not a career.
func IsValidCareer(s string) bool {
	return allowedCareers[s]
}

// AllowedCareersList returns a copy of the allowed career values in display order.
func AllowedCareersList() []string {
	out := make([]string, len(models.CareerTypes))
	copy(out, models.CareerTypes)
	return out
}
