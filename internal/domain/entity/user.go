package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in to the storefront.
type User struct {
	ID           uuid.UUID `json:"id"`                  // Global identifier, also the JWT subject.
	FirstName    string    `json:"firstName"`           // Given name.
	LastName     string    `json:"lastName"`            // Family name.
	Email        string    `json:"email"`               // Unique, lower-cased login identifier.
	PasswordHash string    `json:"-"`                   // bcrypt hash; empty for Google-only accounts.
	GoogleID     string    `json:"-"`                   // Google 'sub' claim once linked.
	AvatarURL    string    `json:"avatarUrl,omitempty"` // Picture reported by the identity provider.
	Role         Role      `json:"role"`                // Authorization level.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Identity is what the access gate resolves a credential to.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}
