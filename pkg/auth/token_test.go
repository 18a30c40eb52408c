package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Generate("user-1", "doctor@demo.com", "doctor", "Dr. Sarah Smith")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "doctor@demo.com", claims.Email)
	assert.Equal(t, "doctor", claims.Role)
	assert.Equal(t, "Dr. Sarah Smith", claims.Name)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Hour).Generate("user-1", "a@b.com", "patient", "A")
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", time.Hour).Validate(token)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	_, err := svc.Validate("not-a-token")
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	svc := NewTokenService("test-secret", time.Nanosecond)
	token, err := svc.Generate("user-1", "a@b.com", "patient", "A")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = svc.Validate(token)
	assert.Error(t, err)
}
