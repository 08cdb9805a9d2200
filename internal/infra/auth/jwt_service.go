// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// jwtService signs HS256 session tokens carrying the identity id and role.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService builds the token service from config. An empty secret is an error.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a token for the user and role.
func (s *jwtService) Issue(userID uuid.UUID, role entity.Role) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"role": role.String(),
		"iat":  issuedAt.Unix(),
		"exp":  expiresAt.Unix(),
		"type": "access",
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return token, expiresAt, nil
}

// Validate parses a token and returns its claims.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "missing subject")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "subject is not a valid id")
	}

	roleClaim, _ := mapClaims["role"].(string)
	role := entity.Role(roleClaim)
	if !role.IsValid() {
		return nil, errors.Errorf("invalid role claim %q", roleClaim)
	}

	claims := &service.Claims{UserID: userID, Role: role}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}

// TTL is the lifetime of issued tokens.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
