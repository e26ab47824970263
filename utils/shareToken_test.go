package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shareKey = []byte("0123456789abcdef0123456789abcdef")

func TestShareTokens_RoundTrip(t *testing.T) {
	shares, err := NewShareTokens(shareKey, time.Hour)
	require.NoError(t, err)

	token, expiresAt, err := shares.Generate("INV-000007")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "v2.local."))
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	assert.NoError(t, shares.Validate(token, "INV-000007"))
	assert.ErrorIs(t, shares.Validate(token, "INV-000008"), ErrShareTokenMismatch)
}

func TestShareTokens_Expired(t *testing.T) {
	shares, err := NewShareTokens(shareKey, time.Hour)
	require.NoError(t, err)

	issued := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	shares.now = func() time.Time { return issued }
	token, _, err := shares.Generate("INV-000007")
	require.NoError(t, err)

	shares.now = func() time.Time { return issued.Add(2 * time.Hour) }
	assert.ErrorIs(t, shares.Validate(token, "INV-000007"), ErrShareTokenExpired)
}

func TestShareTokens_RejectsForeignOrTamperedTokens(t *testing.T) {
	shares, err := NewShareTokens(shareKey, time.Hour)
	require.NoError(t, err)
	other, err := NewShareTokens([]byte("fedcba9876543210fedcba9876543210"), time.Hour)
	require.NoError(t, err)

	token, _, err := other.Generate("INV-000007")
	require.NoError(t, err)
	assert.Error(t, shares.Validate(token, "INV-000007"))
	assert.Error(t, shares.Validate("garbage", "INV-000007"))
}

func TestNewShareTokens_KeyLength(t *testing.T) {
	_, err := NewShareTokens([]byte("short"), time.Hour)
	assert.ErrorIs(t, err, ErrShareKeyLength)
}
