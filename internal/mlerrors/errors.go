// Package mlerrors defines the domain error taxonomy for Mercado Livre
// integration failures. Handlers map these kinds onto HTTP statuses; the
// service and gateway layers never leak raw transport errors.
package mlerrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a missing credential record or an upstream resource
// that does not exist.
var ErrNotFound = errors.New("not found")

// ErrDailyLimitReached is returned when the daily marketplace API quota has
// been exhausted before an outbound call was attempted.
var ErrDailyLimitReached = errors.New("daily API limit reached")

// AuthError indicates a failed OAuth grant (initial exchange or refresh).
// The message always carries the marketplace's stated reason.
type AuthError struct {
	Op    string // "exchange_code" or "refresh_token"
	Cause error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("oauth grant %s failed: %v", e.Op, e.Cause)
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// ServiceError indicates the marketplace rejected an item or category call
// for a non-auth-grant reason. Status and reason are forwarded from upstream.
type ServiceError struct {
	Status int
	Reason string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("mercado livre error (status %d): %s", e.Status, e.Reason)
}

// IsAuthError reports whether err is (or wraps) an AuthError.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// AsServiceError returns the wrapped ServiceError, if any.
func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	ok := errors.As(err, &se)
	return se, ok
}
