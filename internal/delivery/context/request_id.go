// Package context carries request-scoped values between the HTTP layer and usecases.
package context

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID stores the request id.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger stores the request-scoped logger.
	KeyLogger ContextKey = "logger"

	// KeyIdentity stores the identity resolved by the access gate.
	KeyIdentity ContextKey = "identity"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request id stored on c, or a fresh one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request id or "".
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when none is set.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetIdentity stores the caller's identity on c.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity returns the identity stored by the access gate.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(*entity.Identity)

	return identity, ok && identity != nil
}
