// Package service implements the application's business operations on top of
// the store interfaces.
package service

import (
	"errors"
	"fmt"
)

// Common sentinel errors surfaced by the service layer.
var (
	// ErrMemoNotFound indicates that the memo does not exist or is not owned
	// by the caller. The two cases are deliberately conflated so that one
	// user cannot probe for the existence of another user's memos.
	ErrMemoNotFound = errors.New("memo not found")

	// ErrNoFieldsSpecified indicates that a memo edit carried none of the
	// recognized editable fields.
	ErrNoFieldsSpecified = errors.New("no fields specified")

	// ErrUserNotFound indicates that the user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrResetTokenInvalid indicates that a password-reset token does not
	// match, has expired, or was already consumed.
	ErrResetTokenInvalid = errors.New("reset token invalid or expired")
)

// ServiceError wraps errors from the service layer with operation context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "create_memo", "empty_trash")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}
