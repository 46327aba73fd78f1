package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	p, err := Parse("s3cret!")
	require.NoError(t, err)
	assert.Equal(t, "s3cret!", p.Plain())
}

func TestParse_Length(t *testing.T) {
	_, err := Parse("short")
	assert.Error(t, err)

	_, err = Parse(strings.Repeat("x", 73))
	assert.Error(t, err)

	_, err = Parse(strings.Repeat("x", 72))
	assert.NoError(t, err)
}

func TestString_Redacted(t *testing.T) {
	p := MustParse("s3cret!")
	assert.Equal(t, "[REDACTED]", p.String())

	data, err := p.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "[REDACTED]", string(data))
}
