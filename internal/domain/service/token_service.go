package service

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims is what a validated session token says about its bearer.
type Claims struct {
	UserID    uuid.UUID
	Role      entity.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and validates session JWTs.
type TokenService interface {
	// Issue signs a token for the user and role.
	Issue(userID uuid.UUID, role entity.Role) (token string, expiresAt time.Time, err error)

	// Validate parses a token. Expired, malformed and role-less tokens fail.
	Validate(token string) (*Claims, error)

	// TTL is the lifetime of issued tokens.
	TTL() time.Duration
}
