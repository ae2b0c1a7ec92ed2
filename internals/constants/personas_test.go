package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPersona(t *testing.T) {
	for _, p := range AllPersonas {
		assert.True(t, IsValidPersona(p), p)
	}
	assert.False(t, IsValidPersona("Admin"))
	assert.False(t, IsValidPersona(""))
	assert.False(t, IsValidPersona("staff"))
}
