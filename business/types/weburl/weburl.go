// Package weburl represents an optional http(s) link in the system.
package weburl

import (
	"database/sql"
	"fmt"
	"net/url"
)

// Null represents a web link that can be empty.
type Null struct {
	value string
	valid bool
}

// ToSQLNullString converts a Null value to a sql NullString.
func ToSQLNullString(n Null) sql.NullString {
	return sql.NullString{
		String: n.value,
		Valid:  n.valid,
	}
}

// String returns the value of the link.
func (n Null) String() string {
	if !n.valid {
		return "NULL"
	}

	return n.value
}

// Valid tests if the value is populated.
func (n Null) Valid() bool {
	return n.valid
}

// Equal provides support for the go-cmp package and testing.
func (n Null) Equal(n2 Null) bool {
	return n.value == n2.value && n.valid == n2.valid
}

// MarshalText provides support for logging and any marshal needs.
func (n Null) MarshalText() ([]byte, error) {
	return []byte(n.value), nil
}

// =============================================================================

// ParseNull parses the string value and returns a link if the value is an
// absolute http or https URL.
func ParseNull(value string) (Null, error) {
	if value == "" {
		return Null{}, nil
	}

	u, err := url.Parse(value)
	if err != nil {
		return Null{}, fmt.Errorf("invalid url %q: %w", value, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Null{}, fmt.Errorf("invalid url %q: must be absolute http(s)", value)
	}

	return Null{value, true}, nil
}

// MustParseNull parses the string value and returns a link if the value
// complies with the rules for a link. If an error occurs the function panics.
func MustParseNull(value string) Null {
	u, err := ParseNull(value)
	if err != nil {
		panic(err)
	}

	return u
}
