package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParseRoundTrip(t *testing.T) {
	signed, err := Generate(42, "secret")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	userID, err := Parse(signed, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signed, err := Generate(42, "secret")
	require.NoError(t, err)

	_, err = Parse(signed, "another secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("not.a.token", "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
