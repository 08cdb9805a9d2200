// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo          repository.UserRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	Logger            *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a shopper account and signs them in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	user, err := srv.createUser(ctx, input.FirstName, input.LastName, input.Email, input.Password, entity.RoleUser)
	if err != nil {
		return nil, err
	}

	return srv.issue(ctx, user)
}

// CreateStaff seeds an admin or manager account.
func (srv *authService) CreateStaff(ctx context.Context, input *usecase.CreateStaffInput) (*entity.User, error) {
	role := input.Role
	if role == "" {
		role = entity.RoleAdmin
	}
	if !role.IsValid() || !role.IsStaff() {
		return nil, domainerrors.ErrInvalidRole
	}

	return srv.createUser(ctx, input.FirstName, input.LastName, input.Email, input.Password, role)
}

func (srv *authService) createUser(ctx context.Context, firstName, lastName, email, password string, role entity.Role) (*entity.User, error) {
	email = normalizeEmail(email)
	srv.log(ctx).Info("Starting registration", slog.Any("role", role), slog.String("email", email))

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", role), slog.Any("userID", user.ID))

	return user, nil
}

// Login checks email and password. Every mismatch reports the same error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login for unknown email", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if user.PasswordHash == "" || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(ctx, user)
}

// GoogleLogin signs in with a Google ID token, creating the account on first use.
func (srv *authService) GoogleLogin(ctx context.Context, idToken string) (*usecase.AuthOutput, error) {
	profile, err := srv.googleAuthService.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage(err.Error())
	}
	if !profile.EmailVerified || profile.Email == "" {
		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage("google email not verified")
	}

	email := normalizeEmail(profile.Email)
	user, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		user = &entity.User{
			FirstName: profile.GivenName,
			LastName:  profile.FamilyName,
			Email:     email,
			GoogleID:  profile.Subject,
			AvatarURL: profile.Picture,
			Role:      entity.RoleUser,
		}
		if err := srv.userRepo.Create(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to create user from google profile")
		}
		srv.log(ctx).Info("Created user from google sign-in", slog.Any("userID", user.ID))
	case err != nil:
		return nil, errors.Wrap(err, "failed to find user by email")
	case user.GoogleID == "":
		if err := srv.userRepo.LinkGoogle(ctx, user.ID, profile.Subject, profile.Picture); err != nil {
			return nil, errors.Wrap(err, "failed to link google account")
		}
		user.GoogleID = profile.Subject
		user.AvatarURL = profile.Picture
	}

	return srv.issue(ctx, user)
}

func (srv *authService) issue(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.Issue(user.ID, user.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	return &usecase.AuthOutput{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Me returns the caller's account.
func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// ChangeRole sets another account's role.
func (srv *authService) ChangeRole(ctx context.Context, userID uuid.UUID, role entity.Role) (*entity.User, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidRole
	}

	if err := srv.userRepo.UpdateRole(ctx, userID, role); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update role")
	}

	srv.log(ctx).Info("Role changed", slog.Any("userID", userID), slog.Any("role", role))

	return srv.Me(ctx, userID)
}
