package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(header, cookie string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: constants.AuthCookieName, Value: cookie})
	}

	return req
}

func TestResolveIdentity(t *testing.T) {
	userID := uuid.New()
	valid := &service.Claims{UserID: userID, Role: entity.RoleManager}

	tests := []struct {
		name      string
		header    string
		cookie    string
		policy    CredentialPolicy
		setup     func(tokens *mockSvc.MockTokenService)
		wantErr   error
		wantToken string
	}{
		{
			name:   "bearer header",
			header: "Bearer header-token",
			policy: HeaderOrCookie,
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().Validate("header-token").Return(valid, nil)
			},
		},
		{
			name:   "cookie",
			cookie: "cookie-token",
			policy: HeaderOrCookie,
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().Validate("cookie-token").Return(valid, nil)
			},
		},
		{
			name:   "header wins over cookie",
			header: "Bearer header-token",
			cookie: "cookie-token",
			policy: HeaderOrCookie,
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().Validate("header-token").Return(valid, nil)
			},
		},
		{
			name:    "cookie ignored by header-only policy",
			cookie:  "cookie-token",
			policy:  HeaderOnly,
			setup:   func(*mockSvc.MockTokenService) {},
			wantErr: domainerrors.ErrUnauthenticated,
		},
		{
			name:    "header ignored by cookie-only policy",
			header:  "Bearer header-token",
			policy:  CookieOnly,
			setup:   func(*mockSvc.MockTokenService) {},
			wantErr: domainerrors.ErrUnauthenticated,
		},
		{
			name:    "non-bearer scheme",
			header:  "Basic Zm9vOmJhcg==",
			policy:  HeaderOrCookie,
			setup:   func(*mockSvc.MockTokenService) {},
			wantErr: domainerrors.ErrUnauthenticated,
		},
		{
			name:   "expired token",
			header: "Bearer stale",
			policy: HeaderOrCookie,
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().Validate("stale").Return(nil, errors.New("token is expired"))
			},
			wantErr: domainerrors.ErrInvalidToken,
		},
		{
			name:   "unknown role",
			header: "Bearer odd",
			policy: HeaderOrCookie,
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().Validate("odd").Return(&service.Claims{UserID: userID, Role: "root"}, nil)
			},
			wantErr: domainerrors.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockSvc.NewMockTokenService(t)
			tt.setup(tokens)

			identity, err := ResolveIdentity(newRequest(tt.header, tt.cookie), tokens, tt.policy)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, identity)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, &entity.Identity{UserID: userID, Role: entity.RoleManager}, identity)
		})
	}
}

func TestRequireRole(t *testing.T) {
	shopper := &entity.Identity{UserID: uuid.New(), Role: entity.RoleUser}
	admin := &entity.Identity{UserID: uuid.New(), Role: entity.RoleAdmin}

	assert.ErrorIs(t, RequireRole(nil, entity.RoleAdmin), domainerrors.ErrUnauthenticated)
	assert.ErrorIs(t, RequireRole(shopper, entity.RoleAdmin, entity.RoleManager), domainerrors.ErrForbidden)
	assert.NoError(t, RequireRole(admin, entity.RoleAdmin, entity.RoleManager))
}

func TestAuthMiddleware_Chain(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	userID := uuid.New()
	tokens.EXPECT().Validate("shopper-token").Return(&service.Claims{UserID: userID, Role: entity.RoleUser}, nil)

	m := NewAuthMiddleware(tokens)
	reached := false
	handler := m.Authenticate(HeaderOrCookie)(m.RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
		reached = true

		return nil
	}))

	e := echo.New()
	c := e.NewContext(newRequest("Bearer shopper-token", ""), httptest.NewRecorder())

	err := handler(c)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.False(t, reached)

	identity, ok := deliverycontext.GetIdentity(c)
	require.True(t, ok)
	assert.Equal(t, userID, identity.UserID)
}
