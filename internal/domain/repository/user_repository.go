// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository persists identities.
type UserRepository interface {
	// Create persists a new user and fills generated fields.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by lower-cased email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// LinkGoogle stores the Google subject and avatar on an existing user.
	LinkGoogle(ctx context.Context, id uuid.UUID, googleID, avatarURL string) error

	// UpdateRole changes a user's role.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error
}
