package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"memopad/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// It handles domain validation and password hashing internally.
	// Returns ErrEmailExists if the email is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address. The match is exact
	// and case-sensitive. Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// SetResetToken stores a pending password-reset token and its expiry on
	// the user record, replacing any previous pending token.
	// Returns ErrUserNotFound if the user does not exist.
	SetResetToken(ctx context.Context, id uuid.UUID, token string, expires time.Time) error

	// ConsumeResetToken redeems a password-reset token: in a single atomic
	// update it replaces the user's password hash and clears both reset
	// fields, but only if the stored token matches and has not expired at
	// the given instant. Returns the affected user's ID on success and
	// ErrResetTokenInvalid otherwise. Because the guard and the clear are
	// one statement, a token can never be redeemed twice, even by
	// concurrent requests.
	ConsumeResetToken(ctx context.Context, token, newHashedPassword string, now time.Time) (uuid.UUID, error)
}
