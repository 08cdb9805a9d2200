package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	google       *mockSvc.MockOAuthAuthService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		google:       mockSvc.NewMockOAuthAuthService(t),
	}
	fx.service = NewAuthService(AuthServiceParams{
		UserRepo:          fx.userRepo,
		Hasher:            fx.hasher,
		TokenService:      fx.tokenService,
		GoogleAuthService: fx.google,
		Logger:            newDiscardLogger(),
	})

	return fx
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	expires := time.Now().Add(time.Hour)

	fx.hasher.EXPECT().Hash("s3cret!").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "mona@example.com" && u.PasswordHash == "hashed" && u.Role == entity.RoleUser
		})).
		Run(func(_ context.Context, u *entity.User) { u.ID = uuid.New() }).
		Return(nil)
	fx.tokenService.EXPECT().Issue(mock.Anything, entity.RoleUser).Return("jwt", expires, nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		FirstName: "Mona",
		LastName:  "Ali",
		Email:     "  Mona@Example.com ",
		Password:  "s3cret!",
	})
	require.NoError(t, err)
	assert.Equal(t, "jwt", out.Token)
	assert.Equal(t, expires, out.ExpiresAt)
	assert.Equal(t, "Mona", out.User.FirstName)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@b.c", Password: "x"})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "a@b.c", PasswordHash: "hash", Role: entity.RoleManager}

	tests := []struct {
		name    string
		setup   func(fx authServiceFixtures)
		wantErr error
	}{
		{
			name: "success",
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "a@b.c").Return(user, nil)
				fx.hasher.EXPECT().Check("pw", "hash").Return(true)
				fx.tokenService.EXPECT().Issue(user.ID, entity.RoleManager).Return("jwt", time.Now(), nil)
			},
		},
		{
			name: "unknown email",
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "a@b.c").Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "a@b.c").Return(user, nil)
				fx.hasher.EXPECT().Check("pw", "hash").Return(false)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "token failure",
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "a@b.c").Return(user, nil)
				fx.hasher.EXPECT().Check("pw", "hash").Return(true)
				fx.tokenService.EXPECT().Issue(user.ID, entity.RoleManager).Return("", time.Time{}, errors.New("boom"))
			},
			wantErr: domainerrors.ErrTokenIssueFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			tt.setup(fx)

			out, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "A@B.C", Password: "pw"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "jwt", out.Token)
		})
	}
}

func TestAuthService_GoogleLogin_CreatesUserOnFirstSignIn(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.google.EXPECT().VerifyIDToken(ctx, "id-token").Return(&service.OAuthUser{
		Subject:       "google-123",
		Email:         "Lina@Example.com",
		EmailVerified: true,
		GivenName:     "Lina",
	}, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "lina@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.GoogleID == "google-123" && u.PasswordHash == "" })).
		Return(nil)
	fx.tokenService.EXPECT().Issue(mock.Anything, entity.RoleUser).Return("jwt", time.Now(), nil)

	out, err := fx.service.GoogleLogin(ctx, "id-token")
	require.NoError(t, err)
	assert.Equal(t, "lina@example.com", out.User.Email)
}

func TestAuthService_GoogleLogin_LinksExistingAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "lina@example.com", Role: entity.RoleUser}

	fx.google.EXPECT().VerifyIDToken(ctx, "id-token").Return(&service.OAuthUser{
		Subject:       "google-123",
		Email:         "lina@example.com",
		EmailVerified: true,
		Picture:       "https://img/p.png",
	}, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "lina@example.com").Return(existing, nil)
	fx.userRepo.EXPECT().LinkGoogle(ctx, existing.ID, "google-123", "https://img/p.png").Return(nil)
	fx.tokenService.EXPECT().Issue(existing.ID, entity.RoleUser).Return("jwt", time.Now(), nil)

	out, err := fx.service.GoogleLogin(ctx, "id-token")
	require.NoError(t, err)
	assert.Equal(t, "google-123", out.User.GoogleID)
}

func TestAuthService_GoogleLogin_Rejected(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.google.EXPECT().VerifyIDToken(ctx, "bad").Return(nil, errors.New("audience mismatch"))
	fx.google.EXPECT().VerifyIDToken(ctx, "unverified").Return(&service.OAuthUser{Email: "x@y.z"}, nil)

	_, err := fx.service.GoogleLogin(ctx, "bad")
	assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)

	_, err = fx.service.GoogleLogin(ctx, "unverified")
	assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
}

func TestAuthService_ChangeRole(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	id := uuid.New()

	_, err := fx.service.ChangeRole(ctx, id, entity.Role("owner"))
	require.ErrorIs(t, err, domainerrors.ErrInvalidRole)

	fx.userRepo.EXPECT().UpdateRole(ctx, id, entity.RoleManager).Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, id).Return(&entity.User{ID: id, Role: entity.RoleManager}, nil)

	user, err := fx.service.ChangeRole(ctx, id, entity.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, user.Role)
}

func TestAuthService_CreateStaff_RejectsShopperRole(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.CreateStaff(context.Background(), &usecase.CreateStaffInput{Email: "a@b.c", Password: "x", Role: entity.RoleUser})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}

func TestAuthService_Me_NotFound(t *testing.T) {
	fx := createTestAuthService(t)
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Me(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
