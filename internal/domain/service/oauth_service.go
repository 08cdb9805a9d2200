package service

import (
	"context"
)

// OAuthUser is the verified profile carried by a Google ID token.
type OAuthUser struct {
	Subject       string // Google's 'sub' claim
	Email         string
	EmailVerified bool
	GivenName     string
	FamilyName    string
	Picture       string
}

// OAuthAuthService verifies ID tokens sent by the client after Google sign-in.
type OAuthAuthService interface {
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}
