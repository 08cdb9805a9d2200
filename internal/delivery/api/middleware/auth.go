// Package middleware holds the echo middlewares specific to the API server.
package middleware

import (
	"net/http"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// CredentialPolicy selects where a session token may come from.
type CredentialPolicy struct {
	AcceptHeader bool
	AcceptCookie bool
}

var (
	// HeaderOrCookie is used by the REST API.
	HeaderOrCookie = CredentialPolicy{AcceptHeader: true, AcceptCookie: true}
	// HeaderOnly is for clients that never hold the cookie.
	HeaderOnly = CredentialPolicy{AcceptHeader: true}
	// CookieOnly is for browser-only endpoints.
	CookieOnly = CredentialPolicy{AcceptCookie: true}
)

// ResolveIdentity turns the request's credential into an identity. When both
// sources are accepted and present, the Authorization header wins.
func ResolveIdentity(r *http.Request, tokens service.TokenService, policy CredentialPolicy) (*entity.Identity, error) {
	token := credential(r, policy)
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	claims, err := tokens.Validate(token)
	if err != nil || !claims.Role.IsValid() {
		return nil, domainerrors.ErrInvalidToken
	}

	return &entity.Identity{UserID: claims.UserID, Role: claims.Role}, nil
}

func credential(r *http.Request, policy CredentialPolicy) string {
	if policy.AcceptHeader {
		header := r.Header.Get(echo.HeaderAuthorization)
		if token, ok := strings.CutPrefix(header, "Bearer "); ok && strings.TrimSpace(token) != "" {
			return strings.TrimSpace(token)
		}
	}

	if policy.AcceptCookie {
		if cookie, err := r.Cookie(constants.AuthCookieName); err == nil && cookie.Value != "" {
			return cookie.Value
		}
	}

	return ""
}

// RequireRole fails with 401 without an identity and 403 when its role is not allowed.
func RequireRole(identity *entity.Identity, allowed ...entity.Role) error {
	if identity == nil {
		return domainerrors.ErrUnauthenticated
	}
	if !entity.Roles(allowed).Contains(identity.Role) {
		return domainerrors.ErrForbidden
	}

	return nil
}

// AuthMiddleware exposes the access gate as echo middleware.
type AuthMiddleware struct {
	tokens service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokens service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate stores the resolved identity on the context.
func (m *AuthMiddleware) Authenticate(policy CredentialPolicy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := ResolveIdentity(c.Request(), m.tokens, policy)
			if err != nil {
				return err
			}

			deliverycontext.SetIdentity(c, identity)

			return next(c)
		}
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, _ := deliverycontext.GetIdentity(c)
			if err := RequireRole(identity, roles...); err != nil {
				return err
			}

			return next(c)
		}
	}
}
