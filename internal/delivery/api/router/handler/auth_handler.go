package handler

import (
	"net/http"
	"time"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
}

// AuthHandler serves sign-up, sign-in and the caller's account.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	cookie cookieSettings
}

type cookieSettings struct {
	secure bool
	domain string
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	h := &AuthHandler{authUC: params.AuthUC}
	if params.Config.Auth != nil {
		h.cookie = cookieSettings{secure: params.Config.Auth.CookieSecure, domain: params.Config.Auth.CookieDomain}
	}

	return h
}

type registerRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type googleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type changeRoleRequest struct {
	Role entity.Role `json:"role" validate:"required"`
}

type authResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *entity.User `json:"user"`
}

// Register creates a shopper account and signs it in.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return h.signedIn(c, http.StatusCreated, output)
}

// Login signs in with email and password.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	return h.signedIn(c, http.StatusOK, output)
}

// GoogleLogin signs in with a Google ID token.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req googleLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.GoogleLogin(c.Request().Context(), req.IDToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.signedIn(c, http.StatusOK, output)
}

// Logout clears the session cookie. Bearer tokens simply expire.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", time.Unix(0, 0), -1))

	return response.Success(c, http.StatusOK, map[string]bool{"loggedOut": true})
}

// Me returns the caller's account.
func (h *AuthHandler) Me(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}

	user, err := h.authUC.Me(c.Request().Context(), caller.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

// ChangeRole sets another account's role.
func (h *AuthHandler) ChangeRole(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req changeRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authUC.ChangeRole(c.Request().Context(), userID, req.Role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *AuthHandler) signedIn(c echo.Context, status int, output *usecase.AuthOutput) error {
	c.SetCookie(h.sessionCookie(output.Token, output.ExpiresAt, 0))

	return response.Success(c, status, authResponse{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
		User:      output.User,
	})
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    value,
		Path:     "/",
		Domain:   h.cookie.domain,
		Expires:  expires,
		MaxAge:   maxAge,
		Secure:   h.cookie.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
