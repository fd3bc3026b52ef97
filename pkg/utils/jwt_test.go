package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, "acc-1", "client", "remote-token", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.AccountID)
	assert.Equal(t, "client", claims.Role)
	assert.Equal(t, "remote-token", claims.APIToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("one"), "acc-1", "admin", "", time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken([]byte("two"), token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken(secret, "acc-1", "vendor", "", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(secret, token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken([]byte("s"), "not-a-jwt")
	assert.Error(t, err)
}
