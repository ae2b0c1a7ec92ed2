package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := IssueAccessToken(testSecret, 42, 9, "Staff")
	require.NoError(t, err)

	claims, err := VerifyAccessToken(testSecret, token, "Staff", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, uint(9), claims.OrgID)
	assert.Equal(t, "Staff", claims.Persona)
}

func TestAccessTokenExpired(t *testing.T) {
	// issued two hours ago with a one-hour window: valid signature,
	// expired anyway
	issuedAt := time.Now().Add(-2 * time.Hour)
	token, err := issueAccessTokenAt(testSecret, 42, 9, "User", issuedAt)
	require.NoError(t, err)

	_, err = VerifyAccessToken(testSecret, token, "User", time.Hour)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAccessTokenPersonaMismatch(t *testing.T) {
	token, err := IssueAccessToken(testSecret, 42, 9, "User")
	require.NoError(t, err)

	_, err = VerifyAccessToken(testSecret, token, "Staff", time.Hour)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	token, err := IssueAccessToken(testSecret, 42, 9, "User")
	require.NoError(t, err)

	_, err = VerifyAccessToken("other-secret", token, "User", time.Hour)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAccessTokenTampered(t *testing.T) {
	token, err := IssueAccessToken(testSecret, 42, 9, "User")
	require.NoError(t, err)

	_, err = VerifyAccessToken(testSecret, token+"x", "User", time.Hour)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestResetTokenRoundTrip(t *testing.T) {
	token, err := IssueResetToken(testSecret, 7)
	require.NoError(t, err)

	userID, err := VerifyResetToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
}

func TestResetTokenExpiresAfterMaxAge(t *testing.T) {
	issuedAt := time.Now().Add(-ResetTokenMaxAge - time.Minute)
	token, err := issueResetTokenAt(testSecret, 7, issuedAt)
	require.NoError(t, err)

	_, err = VerifyResetToken(testSecret, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestResetTokenRejectsAccessToken(t *testing.T) {
	// an access token carries no reset namespace, it must not open the
	// reset flow even with the right secret
	token, err := IssueAccessToken(testSecret, 7, 9, "User")
	require.NoError(t, err)

	_, err = VerifyResetToken(testSecret, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
