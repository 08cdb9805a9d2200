// Package errors is the single import for error construction across storefront.
// It forwards matching helpers to the standard library and stack-carrying
// helpers to pkg/errors.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a plain error without a stack trace, suitable for sentinels.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap annotates err with a stack trace and message. Wrap(nil, ...) is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format specifier.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stack trace at the call site.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf formats an error that carries a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Cause returns the innermost error wrapped with pkg/errors.
//
//nolint:wrapcheck // passthrough
func Cause(err error) error {
	return pkgerrors.Cause(err)
}
