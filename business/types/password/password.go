// Package password represents a raw credential prior to hashing. The raw
// value never leaves the business layer; stores only ever see the bcrypt
// hash.
package password

import (
	"fmt"
	"unicode/utf8"
)

// Password represents a password in the system.
type Password struct {
	value string
}

// String obscures the value when printed or logged.
func (p Password) String() string {
	return "[REDACTED]"
}

// Plain returns the raw value for hashing and comparison.
func (p Password) Plain() string {
	return p.value
}

// Equal provides support for the go-cmp package and testing.
func (p Password) Equal(p2 Password) bool {
	return p.value == p2.value
}

// MarshalText provides support for logging and any marshal needs.
func (p Password) MarshalText() ([]byte, error) {
	return []byte("[REDACTED]"), nil
}

// =============================================================================

// Parse parses the string value and returns a password if the value complies
// with the rules for a password.
func Parse(value string) (Password, error) {
	n := utf8.RuneCountInString(value)
	if n < 6 || n > 72 {
		return Password{}, fmt.Errorf("password must be between 6 and 72 characters")
	}

	return Password{value}, nil
}

// MustParse parses the string value and returns a password if the value
// complies with the rules for a password. If an error occurs the function
// panics.
func MustParse(value string) Password {
	password, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return password
}
