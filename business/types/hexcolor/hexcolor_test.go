package hexcolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse("#1a2B3c")
	require.NoError(t, err)
	assert.Equal(t, "#1a2B3c", c.String())
}

func TestParse_Invalid(t *testing.T) {
	bad := []string{
		"",
		"1a2b3c",
		"#1a2b3",
		"#1a2b3cd",
		"#1a2b3g",
		"blue",
	}

	for _, value := range bad {
		_, err := Parse(value)
		assert.Error(t, err, "value %q", value)
	}
}
