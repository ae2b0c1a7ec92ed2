package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hashed, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hashed)

	assert.NoError(t, CheckPasswordHash(hashed, "s3cret-pass"))
	assert.Error(t, CheckPasswordHash(hashed, "wrong-pass"))
}

func TestPasswordHashSaltsPerCall(t *testing.T) {
	a, err := HashPassword("same-input")
	require.NoError(t, err)
	b, err := HashPassword("same-input")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
