// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidPassword is returned when a password doesn't meet requirements.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrNoFieldsSpecified is returned when a memo update carries none of the
	// recognized editable fields.
	ErrNoFieldsSpecified = errors.New("no fields specified")

	// ErrMemoNotTrashed is returned when a trash-only transition (restore,
	// purge) is attempted on a memo that is not in the trash.
	ErrMemoNotTrashed = errors.New("memo is not in the trash")

	// ErrMemoTrashed is returned when an active-only transition (edit, delete)
	// is attempted on a memo that is already in the trash.
	ErrMemoTrashed = errors.New("memo is in the trash")
)
