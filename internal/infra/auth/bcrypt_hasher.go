package auth

import (
	"storefront/config"
	"storefront/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher implements service.PasswordHasher with a configurable cost.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using auth.bcryptCost, or bcrypt's default.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
