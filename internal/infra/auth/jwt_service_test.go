package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{
		SecretKey: config.SecretKeyConfig{Access: testSecret},
		Auth:      &config.AuthConfig{TokenTTL: time.Hour},
	})
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	token, expiresAt, err := svc.Issue(userID, entity.RoleManager)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleManager, claims.Role)
	assert.Equal(t, time.Hour, svc.TTL())
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
}

func TestJWTService_RejectsBadTokens(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	sign := func(claims jwt.MapClaims, secret string) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		return token
	}

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "garbage",
			token: "clearly-not-a-jwt-token-format",
		},
		{
			name: "expired",
			token: sign(jwt.MapClaims{
				"sub":  userID.String(),
				"role": "user",
				"exp":  time.Now().Add(-time.Minute).Unix(),
			}, testSecret),
		},
		{
			name: "wrong secret",
			token: sign(jwt.MapClaims{
				"sub":  userID.String(),
				"role": "user",
				"exp":  time.Now().Add(time.Hour).Unix(),
			}, "another-secret"),
		},
		{
			name: "no expiry",
			token: sign(jwt.MapClaims{
				"sub":  userID.String(),
				"role": "user",
			}, testSecret),
		},
		{
			name: "unknown role",
			token: sign(jwt.MapClaims{
				"sub":  userID.String(),
				"role": "superuser",
				"exp":  time.Now().Add(time.Hour).Unix(),
			}, testSecret),
		},
		{
			name: "subject is not an id",
			token: sign(jwt.MapClaims{
				"sub":  "42",
				"role": "user",
				"exp":  time.Now().Add(time.Hour).Unix(),
			}, testSecret),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Validate(tt.token)

			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}
