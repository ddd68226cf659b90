package checkintoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestIssueAndVerify(t *testing.T) {
	signer := NewSigner(testSecret, time.Hour)
	now := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)

	token, err := signer.Issue(42, now)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	bookingID, err := signer.Verify(token, now.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(42), bookingID)
}

func TestVerifyExpiredToken(t *testing.T) {
	signer := NewSigner(testSecret, time.Hour)
	now := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)

	token, err := signer.Issue(42, now)
	require.NoError(t, err)

	_, err = signer.Verify(token, now.Add(time.Hour+time.Second))
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	now := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)

	token, err := NewSigner(testSecret, time.Hour).Issue(42, now)
	require.NoError(t, err)

	_, err = NewSigner([]byte("other-secret"), time.Hour).Verify(token, now)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	signer := NewSigner(testSecret, time.Hour)
	now := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)

	_, err := signer.Verify("not-a-token", now)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestVerifyBeforeNotBefore(t *testing.T) {
	signer := NewSigner(testSecret, time.Hour)
	now := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)

	token, err := signer.Issue(42, now)
	require.NoError(t, err)

	_, err = signer.Verify(token, now.Add(-time.Minute))
	assert.Error(t, err)
}
