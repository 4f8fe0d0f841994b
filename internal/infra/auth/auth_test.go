package auth

import (
	"testing"
	"time"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secreto123")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", hash)

	assert.True(t, hasher.Check("secreto123", hash))
	assert.False(t, hasher.Check("otro", hash))
	assert.False(t, hasher.Check("secreto123", "invalid_hash"))
}

func TestNewBcryptHasher_CostOutOfRange(t *testing.T) {
	hasher := NewBcryptHasher(100).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	hasher = NewPasswordHasher(&config.Config{}).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(&config.Config{Sandbox: &config.SandboxConfig{
		SecretKey: "test_secret",
		TokenTTL:  time.Hour,
	}})
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.TTL())

	token, err := svc.GenerateToken("u1", "CLIENT")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "CLIENT", claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_RejectsBadTokens(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newJWTService("test_secret", time.Minute, func() time.Time { return now })

	token, err := svc.GenerateToken("u1", "SHOPPER")
	require.NoError(t, err)

	other := newJWTService("other_secret", time.Minute, func() time.Time { return now })
	_, err = other.ValidateToken(token)
	require.Error(t, err)

	later := newJWTService("test_secret", time.Minute, func() time.Time { return now.Add(2 * time.Minute) })
	_, err = later.ValidateToken(token)
	require.Error(t, err)

	_, err = svc.ValidateToken("not-a-jwt")
	require.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	require.Error(t, err)
}
