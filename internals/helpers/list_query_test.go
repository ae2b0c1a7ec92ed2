package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sortable = map[string]string{
	"name":       "clients.client_full_name",
	"created_at": "clients.client_created_at",
}

func TestSafeOrderClauseAllowedKey(t *testing.T) {
	clause, err := SafeOrderClause("name", "asc", sortable, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "clients.client_full_name ASC", clause)
}

func TestSafeOrderClauseDefaultsToDesc(t *testing.T) {
	clause, err := SafeOrderClause("name", "sideways", sortable, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "clients.client_full_name DESC", clause)
}

func TestSafeOrderClauseEmptyKeyFallsBack(t *testing.T) {
	clause, err := SafeOrderClause("", "desc", sortable, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "clients.client_created_at DESC", clause)
}

func TestSafeOrderClauseUnknownKey(t *testing.T) {
	_, err := SafeOrderClause("client_full_name; DROP TABLE clients", "asc", sortable, "created_at")
	assert.ErrorIs(t, err, ErrInvalidSortKey)

	// still rejected with a different direction
	_, err = SafeOrderClause("password", "desc", sortable, "created_at")
	assert.ErrorIs(t, err, ErrInvalidSortKey)
}

func TestSearchClause(t *testing.T) {
	clause, args := SearchClause("ana", []string{"clients.client_full_name", "clients.client_email"})
	assert.Equal(t, "(clients.client_full_name ILIKE ? OR clients.client_email ILIKE ?)", clause)
	assert.Equal(t, []interface{}{"%ana%", "%ana%"}, args)
}

func TestSearchClauseEmptyTerm(t *testing.T) {
	clause, args := SearchClause("   ", []string{"clients.client_full_name"})
	assert.Empty(t, clause)
	assert.Nil(t, args)
}
