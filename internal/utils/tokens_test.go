package utils_test

import (
	"testing"
	"time"

	"github.com/fxdeck/currency_converter_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-password")

	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)
	assert.True(t, utils.CheckPasswordHash("s3cret-password", hash))
	assert.False(t, utils.CheckPasswordHash("wrong-password", hash))
}

func TestGenerateSecureRandomString(t *testing.T) {
	first, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)
	second, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)

	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)

	_, err = utils.GenerateSecureRandomString(0)
	assert.Error(t, err)
}

func TestHashRefreshToken(t *testing.T) {
	hash := utils.HashRefreshToken("raw-token")

	assert.Len(t, hash, 64)
	assert.True(t, utils.CompareRefreshTokenHash("raw-token", hash))
	assert.False(t, utils.CompareRefreshTokenHash("other-token", hash))
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "test-secret", time.Hour, "fxdeck")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "fxdeck", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "test-secret", time.Hour, "fxdeck")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "test-secret", -time.Minute, "fxdeck")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "test-secret")
	assert.Error(t, err)
}
