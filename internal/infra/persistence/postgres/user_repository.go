package postgres

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user. Emails are stored lower-cased.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.Email = userM.Email
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a single user by id.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by email, case-insensitively.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// LinkGoogle attaches a Google subject to an existing account.
func (repo *userRepository) LinkGoogle(ctx context.Context, id uuid.UUID, googleID, avatarURL string) error {
	updates := map[string]any{"google_id": googleID}
	if avatarURL != "" {
		updates["avatar_url"] = avatarURL
	}

	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to link google account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateRole changes the role of a user.
func (repo *userRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Update("role", role.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user role")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		GoogleID:     data.GoogleID,
		AvatarURL:    data.AvatarURL,
		Role:         entity.Role(data.Role),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	role := data.Role
	if role == "" {
		role = entity.RoleUser
	}

	return &model.UserModel{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        strings.ToLower(strings.TrimSpace(data.Email)),
		PasswordHash: data.PasswordHash,
		GoogleID:     data.GoogleID,
		AvatarURL:    data.AvatarURL,
		Role:         role.String(),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
