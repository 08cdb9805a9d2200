// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a shopper.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// CreateStaffInput seeds a staff identity from the operator CLI.
type CreateStaffInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      entity.Role
}

// --- Output DTOs ---

// AuthOutput is a signed session token and the identity it belongs to.
type AuthOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// AuthUsecase defines the identity and session operations.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GoogleLogin(ctx context.Context, idToken string) (*AuthOutput, error)
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	ChangeRole(ctx context.Context, userID uuid.UUID, role entity.Role) (*entity.User, error)
	CreateStaff(ctx context.Context, input *CreateStaffInput) (*entity.User, error)
}
