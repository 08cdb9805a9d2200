// Package response writes the JSON envelope shared by every API endpoint.
package response

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"requestId"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}
	if s, ok := details.(string); ok && s == "" {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// AppError writes appErr with its details.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
}
