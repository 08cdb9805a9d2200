// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl implements service.OAuthAuthService with Google's public keys.
type AuthServiceImpl struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewAuthService creates a new Google AuthService
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &AuthServiceImpl{
		clientID: clientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// VerifyIDToken checks signature, audience and expiry and returns the profile.
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, token string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, errors.New("google sign-in is not configured")
	}

	payload, err := s.validate(ctx, token, s.clientID)
	if err != nil {
		s.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	user := &service.OAuthUser{
		Subject:       payload.Subject,
		Email:         claimString(payload.Claims, "email"),
		EmailVerified: claimBool(payload.Claims, "email_verified"),
		GivenName:     claimString(payload.Claims, "given_name"),
		FamilyName:    claimString(payload.Claims, "family_name"),
		Picture:       claimString(payload.Claims, "picture"),
	}

	if user.Subject == "" || user.Email == "" {
		return nil, errors.New("ID token is missing subject or email")
	}

	return user, nil
}

func claimString(claims map[string]any, key string) string {
	v, _ := claims[key].(string)

	return v
}

// claimBool accepts both JSON booleans and the "true" strings some tokens carry.
func claimBool(claims map[string]any, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
