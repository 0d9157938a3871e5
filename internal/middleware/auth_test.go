package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateServiceTokenValid(t *testing.T) {
	secret := "test-secret"
	token, err := GenerateServiceToken(secret, "dialog", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateServiceToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "dialog", claims.ServiceName)
}

func TestValidateServiceTokenInvalid(t *testing.T) {
	claims, err := ValidateServiceToken("test-secret", "invalid.token")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateServiceTokenWrongSecret(t *testing.T) {
	token, err := GenerateServiceToken("secret-a", "dialog", time.Hour)
	require.NoError(t, err)

	_, err = ValidateServiceToken("secret-b", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateServiceTokenExpired(t *testing.T) {
	token, err := GenerateServiceToken("test-secret", "dialog", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateServiceToken("test-secret", token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}
