package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)
	assert.True(t, CheckPassword("s3cret!", hash))
	assert.False(t, CheckPassword("wrong", hash))
	assert.False(t, CheckPassword("s3cret!", "not-a-hash"))
}

func TestAdminToken(t *testing.T) {
	token, err := GenerateAdminToken("admin@example.com", "jwt-secret")
	require.NoError(t, err)

	email, err := ValidateAdminToken(token, "jwt-secret")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", email)

	_, err = ValidateAdminToken(token, "other-secret")
	assert.Error(t, err)

	_, err = ValidateAdminToken("garbage", "jwt-secret")
	assert.Error(t, err)
}

func TestAdminTokenExpired(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_email": "admin@example.com",
		"exp":         time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("jwt-secret"))
	require.NoError(t, err)

	_, err = ValidateAdminToken(token, "jwt-secret")
	assert.Error(t, err)
}

func TestAdminTokenWithoutEmail(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("jwt-secret"))
	require.NoError(t, err)

	_, err = ValidateAdminToken(token, "jwt-secret")
	assert.Error(t, err)
}
