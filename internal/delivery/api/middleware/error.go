package middleware

import (
	"fmt"
	"log/slog"
	"strings"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= 500 {
			m.log(c).Error("Request failed", slog.String("code", appErr.ErrorCode()), slog.Any("error", err))
		}
		_ = response.AppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := "An error occurred"
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.log(c).Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("stack", stackOf(err)),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	// For 500 errors, do not expose internal error details to the client
	_ = response.Error(c, domainerrors.ErrInternalError.HTTPCode(), domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later", nil)
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

func stackOf(err error) string {
	var tracer stackTracer
	if errors.As(err, &tracer) {
		return strings.TrimSpace(fmt.Sprintf("%+v", tracer.StackTrace()))
	}

	return ""
}
