package auth

import (
	"testing"
	"time"

	"vaulting/config"
	"vaulting/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	user := &repository.User{Id: 42, Permissions: pq.StringArray{"judge", "office"}}
	token, err := CreateToken(user)
	require.NoError(t, err)

	claims, err := ClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserId)
	assert.Equal(t, []string{"judge", "office"}, claims.Permissions)
	assert.True(t, claims.HasAny([]repository.Permission{repository.PermissionAdmin, repository.PermissionOffice}))
	assert.False(t, claims.HasAny([]repository.Permission{repository.PermissionAdmin}))
}

func TestExpiredToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":     1,
		"permissions": []string{},
		"exp":         time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(config.Env().JWTSecret))
	require.NoError(t, err)
	_, err = ClaimsFromToken(signed)
	assert.Error(t, err)
}

func TestTokenWithWrongSecret(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("another secret"))
	require.NoError(t, err)
	_, err = ClaimsFromToken(signed)
	assert.Error(t, err)
}
