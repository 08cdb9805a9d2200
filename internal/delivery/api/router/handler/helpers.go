// Package handler contains the HTTP handlers of the storefront API.
package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// callerOf returns the identity stored by the access gate.
func callerOf(c echo.Context) (*entity.Identity, error) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated
	}

	return identity, nil
}

// uuidParam parses a path parameter as a uuid.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// bindAndValidate binds the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
