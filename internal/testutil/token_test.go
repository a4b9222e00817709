package testutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedTokenGenerator(t *testing.T) {
	g := NewFixedTokenGenerator("run-001")

	assert.Equal(t, "run-001", g.Generate())
	assert.Equal(t, "run-001", g.Generate())
}

func TestFixedTokenGeneratorDefault(t *testing.T) {
	g := NewFixedTokenGenerator("")

	assert.Equal(t, DefaultFixedToken, g.Generate())
}

func TestUUIDTokenGenerator(t *testing.T) {
	g := UUIDTokenGenerator{}

	first := g.Generate()
	second := g.Generate()

	assert.NotEqual(t, first, second)

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}
