// Package slug represents the url identifier for a content row. Slugs are
// unique per tenant only, never globally.
package slug

import (
	"fmt"
	"regexp"
)

// Slug represents a slug in the system.
type Slug struct {
	value string
}

// String returns the value of the slug.
func (s Slug) String() string {
	return s.value
}

// Equal provides support for the go-cmp package and testing.
func (s Slug) Equal(s2 Slug) bool {
	return s.value == s2.value
}

// MarshalText provides support for logging and any marshal needs.
func (s Slug) MarshalText() ([]byte, error) {
	return []byte(s.value), nil
}

// =============================================================================

// slugRegEx allows lowercase ascii words separated by single hyphens.
var slugRegEx = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Parse parses the string value and returns a slug if the value complies
// with the rules for a slug.
func Parse(value string) (Slug, error) {
	if len(value) > 100 || !slugRegEx.MatchString(value) {
		return Slug{}, fmt.Errorf("invalid slug %q", value)
	}

	return Slug{value}, nil
}

// MustParse parses the string value and returns a slug if the value
// complies with the rules for a slug. If an error occurs the function panics.
func MustParse(value string) Slug {
	slug, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return slug
}
