package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenGenerator(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		expiry time.Duration
	}{
		{
			name:   "never expiring tokens",
			secret: "test-secret-key",
			expiry: 0,
		},
		{
			name:   "bounded lifetime",
			secret: "short-secret",
			expiry: 24 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tg := NewTokenGenerator(tt.secret, tt.expiry)

			assert.NotNil(t, tg)
			assert.Equal(t, tt.secret, tg.secret)
			assert.Equal(t, tt.expiry, tg.tokenExpiry)
			assert.NotNil(t, tg.now)
		})
	}
}

func TestTokenGenerator_GenerateToken(t *testing.T) {
	secret := "b8a3c2267dc85f855dea9b46b452bf20"

	t.Run("round trip keeps identity", func(t *testing.T) {
		tg := NewTokenGenerator(secret, 0)

		token, err := tg.GenerateToken(42, "alice")
		require.NoError(t, err)
		assert.Len(t, strings.Split(token, "."), 3)

		claims, err := tg.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, "alice", claims.Username)
		assert.NotNil(t, claims.IssuedAt)
	})

	t.Run("zero expiry omits exp claim", func(t *testing.T) {
		tg := NewTokenGenerator(secret, 0)

		token, err := tg.GenerateToken(1, "alice")
		require.NoError(t, err)

		claims, err := tg.ValidateToken(token)
		require.NoError(t, err)
		assert.Nil(t, claims.ExpiresAt)
	})

	t.Run("positive expiry sets exp claim", func(t *testing.T) {
		tg := NewTokenGenerator(secret, time.Hour)
		fixed := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		tg.now = func() time.Time { return fixed }

		token, err := tg.GenerateToken(1, "alice")
		require.NoError(t, err)

		claims, err := tg.ValidateToken(token)
		require.NoError(t, err)
		require.NotNil(t, claims.ExpiresAt)
		assert.Equal(t, fixed.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	})
}

func TestTokenGenerator_ValidateToken(t *testing.T) {
	secret := "b8a3c2267dc85f855dea9b46b452bf20"
	tg := NewTokenGenerator(secret, 0)

	valid, err := tg.GenerateToken(7, "bob")
	require.NoError(t, err)

	foreign, err := NewTokenGenerator("another-secret", 0).GenerateToken(7, "bob")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 7, Username: "bob"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	zeroID, err := tg.GenerateToken(0, "ghost")
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name          string
		token         string
		expectedError error
	}{
		{name: "empty token", token: "", expectedError: ErrMissingToken},
		{name: "blank token", token: "   ", expectedError: ErrMissingToken},
		{name: "garbage", token: "not-a-jwt", expectedError: ErrInvalidToken},
		{name: "signed with another secret", token: foreign, expectedError: ErrInvalidToken},
		{name: "alg none", token: noneToken, expectedError: ErrInvalidToken},
		{name: "tampered payload", token: tampered, expectedError: ErrInvalidToken},
		{name: "missing user id", token: zeroID, expectedError: ErrInvalidToken},
		{name: "valid token", token: valid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tg.ValidateToken(tt.token)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, claims)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(7), claims.UserID)
			assert.Equal(t, "bob", claims.Username)
		})
	}
}

func TestTokenGenerator_ValidateToken_Expired(t *testing.T) {
	tg := NewTokenGenerator("secret", time.Minute)
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tg.now = func() time.Time { return issued }

	token, err := tg.GenerateToken(3, "carol")
	require.NoError(t, err)

	tg.now = func() time.Time { return issued.Add(2 * time.Minute) }

	claims, err := tg.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}
