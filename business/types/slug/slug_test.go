package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	good := []string{
		"uk",
		"study-in-canada",
		"top-10-universities-2026",
	}

	for _, value := range good {
		s, err := Parse(value)
		require.NoError(t, err, "value %q", value)
		assert.Equal(t, value, s.String())
	}
}

func TestParse_Invalid(t *testing.T) {
	bad := []string{
		"",
		"Study-In-Canada",
		"study in canada",
		"-leading",
		"trailing-",
		"double--hyphen",
		strings.Repeat("a", 101),
	}

	for _, value := range bad {
		_, err := Parse(value)
		assert.Error(t, err, "value %q", value)
	}
}
