package api

import (
	"errors"
	"net/http"

	"memopad/internal/domain"
	"memopad/internal/service"
	"memopad/internal/service/auth"
	"memopad/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
//
// The status contract deliberately conflates cases: not-found and not-owned
// are both 404, and the auth-flow failures are all 400 with generic
// messages, matching the anti-enumeration design.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Not found errors; ownership failures read the same as missing rows
	case errors.Is(err, service.ErrMemoNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Auth-flow and validation failures
	case errors.Is(err, store.ErrEmailExists),
		errors.Is(err, service.ErrResetTokenInvalid),
		errors.Is(err, service.ErrNoFieldsSpecified),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Domain validation failures that slip past request-level validation
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyMemoTitle),
		errors.Is(err, domain.ErrEmptyMemoContent),
		errors.Is(err, domain.ErrInvalidAttachment),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrEmptyPassword),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrPasswordTooLong):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, service.ErrMemoNotFound):
		return "Memo not found"

	case errors.Is(err, service.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email is already registered"

	case errors.Is(err, service.ErrResetTokenInvalid):
		return "Reset link is invalid or has expired"

	case errors.Is(err, service.ErrNoFieldsSpecified):
		return "No fields specified"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, domain.ErrEmptyMemoTitle):
		return "Memo title cannot be empty"

	case errors.Is(err, domain.ErrEmptyMemoContent):
		return "Memo content cannot be empty"

	case errors.Is(err, domain.ErrInvalidAttachment):
		return "Attachment must have a URL and a name"

	case errors.Is(err, domain.ErrInvalidEmail):
		return "Invalid email format"

	case errors.Is(err, domain.ErrEmptyPassword),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrPasswordTooLong):
		return "Password does not meet the length requirements"

	default:
		return "An unexpected error occurred"
	}
}
