package auth_test

import (
	"strings"
	"testing"
	"time"

	"outfitrental/internal/auth"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"too short", "12345", true},
		{"minimum", "123456", false},
		{"maximum", strings.Repeat("a", 20), false},
		{"too long", strings.Repeat("a", 21), true},
		{"two-byte characters", "ééééééé", false},
		{"astral characters count twice", strings.Repeat("😀", 10), false},
		{"too many astral characters", strings.Repeat("😀", 11), true},
		{"twenty three-byte characters", strings.Repeat("€", 20), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.ValidatePassword(tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, auth.ErrPasswordLength)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, auth.VerifyPassword("secret1", hash))
	assert.False(t, auth.VerifyPassword("wrong", hash))
	assert.False(t, auth.VerifyPassword("secret1", "not-a-bcrypt-hash"))

	again, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes must be salted")
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	manager := auth.NewTokenManager("test_jwt_secret", time.Hour)

	token, err := manager.Issue("user-123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Greater(t, claims.ExpiresAt, time.Now().Unix())

	other := auth.NewTokenManager("another_secret", time.Hour)
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = manager.Verify("invalid.token.string")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_NoExpiry(t *testing.T) {
	manager := auth.NewTokenManager("test_jwt_secret", 0)

	token, err := manager.Issue("user-123")
	require.NoError(t, err)

	claims, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Zero(t, claims.ExpiresAt)
}

func TestTokenManager_Expired(t *testing.T) {
	manager := auth.NewTokenManager("test_jwt_secret", time.Hour)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		UserID: "user-123",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	})
	signed, err := expired.SignedString([]byte("test_jwt_secret"))
	require.NoError(t, err)

	_, err = manager.Verify(signed)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_RejectsNoneAlgorithm(t *testing.T) {
	manager := auth.NewTokenManager("test_jwt_secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, auth.Claims{UserID: "user-123"})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = manager.Verify(signed)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
