package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError is an error that knows how it is presented to API clients.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // Client-facing message
	Details() string   // Optional extra context
}

// BaseError implements AppError. Copies made with WithDetails or WithMessage
// still match the original under errors.Is because matching is by error code.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError carrying the same error code.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return other.errorCode == e.errorCode
}

// WithDetails returns a copy carrying detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// WithMessage returns a copy with a different client-facing message.
func (e *BaseError) WithMessage(message string) *BaseError {
	clone := *e
	clone.message = message

	return &clone
}

func validation(code, message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, code, message, "")
}

func unauthorized(code, message string) *BaseError {
	return NewBaseError(http.StatusUnauthorized, code, message, "")
}

func notFound(code, message string) *BaseError {
	return NewBaseError(http.StatusNotFound, code, message, "")
}

func conflict(code, message string) *BaseError {
	return NewBaseError(http.StatusConflict, code, message, "")
}

func upstream(code, message string) *BaseError {
	return NewBaseError(http.StatusBadGateway, code, message, "")
}

func internal(code, message string) *BaseError {
	return NewBaseError(http.StatusInternalServerError, code, message, "")
}

// Validation errors (400)
var (
	ErrValidationFailed = validation("VALIDATION_FAILED", "validation failed")

	// Order creation, checked in this order.
	ErrNoProducts                = validation("NO_PRODUCTS", "no products provided")
	ErrInvalidOrderType          = validation("INVALID_ORDER_TYPE", "invalid order type")
	ErrScheduleRequired          = validation("SCHEDULE_REQUIRED", "schedule time required")
	ErrUserInfoRequired          = validation("USER_INFO_REQUIRED", "user info required")
	ErrShippingAddressRequired   = validation("SHIPPING_ADDRESS_REQUIRED", "shipping address required")
	ErrShippingAddressNotAllowed = validation("SHIPPING_ADDRESS_NOT_ALLOWED", "shipping address not allowed for pickup")
	ErrInvalidLineItem           = validation("INVALID_LINE_ITEM", "invalid line item")
	ErrInvalidTimeSlot           = validation("INVALID_TIME_SLOT", "invalid time slot")
	ErrInvalidTotalAmount        = validation("INVALID_TOTAL_AMOUNT", "invalid total amount")

	ErrInvalidAmount           = validation("INVALID_AMOUNT", "invalid amount")
	ErrInvalidStatusTransition = validation("INVALID_STATUS_TRANSITION", "invalid status transition")
	ErrNotPickupOrder          = validation("NOT_PICKUP_ORDER", "QR codes are only issued for pickup orders")
	ErrPaymentRejected         = validation("PAYMENT_REJECTED", "payment request rejected")

	ErrInvalidProduct       = validation("INVALID_PRODUCT", "product name, category and price are required")
	ErrInvalidDiscountPrice = validation("INVALID_DISCOUNT_PRICE", "discounted price must be lower than actual price")
	ErrProductUnavailable   = validation("PRODUCT_UNAVAILABLE", "product is not available")
	ErrInvalidQuantity      = validation("INVALID_QUANTITY", "quantity must be at least 1")

	ErrInvalidPromo  = validation("INVALID_PROMO", "discount percent must be between 1 and 90")
	ErrPromoRejected = validation("PROMO_REJECTED", "promo code rejected")

	ErrInvalidDate  = validation("INVALID_DATE", "invalid date, expected YYYY-MM-DD")
	ErrInvalidRole  = validation("INVALID_ROLE", "invalid role")
	ErrInvalidAreas = validation("INVALID_AREAS", "every area needs a name and a non-negative shipping price")
)

// Authentication errors (401)
var (
	ErrUnauthenticated    = unauthorized("UNAUTHENTICATED", "authentication required")
	ErrInvalidToken       = unauthorized("INVALID_TOKEN", "invalid or expired token")
	ErrInvalidCredentials = unauthorized("INVALID_CREDENTIALS", "invalid email or password")
	ErrOAuthTokenInvalid  = unauthorized("OAUTH_TOKEN_INVALID", "invalid Google ID token")
	ErrInvalidSignature   = unauthorized("INVALID_SIGNATURE", "invalid webhook signature")
)

// Authorization errors (403)
var (
	ErrForbidden               = NewBaseError(http.StatusForbidden, "FORBIDDEN", "insufficient role", "")
	ErrOrderOwnershipViolation = NewBaseError(http.StatusForbidden, "ORDER_OWNERSHIP_VIOLATION", "order belongs to another account", "")
)

// Not found errors (404)
var (
	ErrNotFound         = notFound("NOT_FOUND", "resource not found")
	ErrUserNotFound     = notFound("USER_NOT_FOUND", "user not found")
	ErrProductNotFound  = notFound("PRODUCT_NOT_FOUND", "product not found")
	ErrOrderNotFound    = notFound("ORDER_NOT_FOUND", "order not found")
	ErrCartItemNotFound = notFound("CART_ITEM_NOT_FOUND", "cart item not found")
	ErrCityAreaNotFound = notFound("CITY_NOT_FOUND", "city not found")
	ErrAreaNotFound     = notFound("AREA_NOT_FOUND", "area not found")
	ErrPromoNotFound    = notFound("PROMO_NOT_FOUND", "promo not found")
)

// Conflict errors (409)
var (
	ErrConflict           = conflict("CONFLICT", "resource conflict")
	ErrUserAlreadyExists  = conflict("USER_ALREADY_EXISTS", "email is already registered")
	ErrCityAlreadyExists  = conflict("CITY_ALREADY_EXISTS", "city already exists")
	ErrPromoAlreadyExists = conflict("PROMO_ALREADY_EXISTS", "promo code already exists")
	ErrDayAlreadyClosed   = conflict("DAY_ALREADY_CLOSED", "day is already closed")
)

// Upstream errors (502)
var (
	ErrPaymentGateway    = upstream("PAYMENT_GATEWAY_ERROR", "payment gateway unavailable")
	ErrImageUploadFailed = upstream("IMAGE_UPLOAD_FAILED", "image upload failed")
)

// Internal errors (500)
var (
	ErrInternalError      = internal("INTERNAL_ERROR", "internal server error")
	ErrTransactionFailed  = internal("TRANSACTION_FAILED", "transaction failed")
	ErrPasswordHashFailed = internal("PASSWORD_HASH_FAILED", "password processing failed")
	ErrTokenIssueFailed   = internal("TOKEN_ISSUE_FAILED", "could not issue token")
)

// DatabaseExecuteError is a database failure surfaced to clients as a 500.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
