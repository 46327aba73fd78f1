// Package hexcolor represents a theme color in the system.
package hexcolor

import (
	"fmt"
	"regexp"
)

// Color represents a hex color in the system.
type Color struct {
	value string
}

// String returns the value of the color.
func (c Color) String() string {
	return c.value
}

// Equal provides support for the go-cmp package and testing.
func (c Color) Equal(c2 Color) bool {
	return c.value == c2.value
}

// MarshalText provides support for logging and any marshal needs.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.value), nil
}

// =============================================================================

var colorRegEx = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Parse parses the string value and returns a color if the value complies
// with the rules for a hex color.
func Parse(value string) (Color, error) {
	if !colorRegEx.MatchString(value) {
		return Color{}, fmt.Errorf("invalid hex color %q", value)
	}

	return Color{value}, nil
}

// MustParse parses the string value and returns a color if the value
// complies with the rules for a hex color. If an error occurs the function
// panics.
func MustParse(value string) Color {
	color, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return color
}
