package auth

import (
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)
	assert.NotEqual(t, "StrongPass123!", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.True(t, hasher.Check("StrongPass123!", hash))
	assert.False(t, hasher.Check("WrongPass123!", hash))
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 99}})

	assert.Equal(t, bcrypt.DefaultCost, hasher.(*bcryptHasher).cost)
}
