package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffIDs(t *testing.T) {
	toAdd, toRemove := DiffIDs([]uint{1, 2, 3}, []uint{2, 3, 4})
	assert.Equal(t, []uint{4}, toAdd)
	assert.Equal(t, []uint{1}, toRemove)
}

func TestDiffIDsIdempotent(t *testing.T) {
	// same desired set applied twice produces no net change
	toAdd, toRemove := DiffIDs([]uint{5, 6}, []uint{5, 6})
	assert.Empty(t, toAdd)
	assert.Empty(t, toRemove)
}

func TestDiffIDsEmptyDesiredRemovesAll(t *testing.T) {
	toAdd, toRemove := DiffIDs([]uint{1, 2}, nil)
	assert.Empty(t, toAdd)
	assert.ElementsMatch(t, []uint{1, 2}, toRemove)
}

func TestDiffIDsEmptyExistingAddsAll(t *testing.T) {
	toAdd, toRemove := DiffIDs(nil, []uint{7, 8})
	assert.ElementsMatch(t, []uint{7, 8}, toAdd)
	assert.Empty(t, toRemove)
}

func TestDiffIDsDedupesInput(t *testing.T) {
	toAdd, toRemove := DiffIDs([]uint{1, 1, 2}, []uint{2, 2, 3, 3})
	assert.Equal(t, []uint{3}, toAdd)
	assert.Equal(t, []uint{1}, toRemove)
}
