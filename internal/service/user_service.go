package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"

	"memopad/internal/domain"
	"memopad/internal/service/auth"
	"memopad/internal/store"
)

// Notifier delivers outbound notifications. Delivery is best-effort from the
// caller's perspective: reset requests succeed even when the mail bounces.
type Notifier interface {
	// SendPasswordReset emails the given reset link to the address.
	SendPasswordReset(ctx context.Context, email, resetLink string) error
}

// Profile is the authenticated user's own account summary.
type Profile struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	MemoCount int       `json:"memo_count"`
}

// UserService provides password-reset and profile operations.
type UserService interface {
	// RequestPasswordReset issues a fresh single-use reset token for the
	// account and mails a reset link. When no account matches the email the
	// call still succeeds and does nothing, so callers cannot probe which
	// addresses are registered.
	RequestPasswordReset(ctx context.Context, email string) error

	// ResetPassword redeems a reset token: it stores the new password hash
	// and clears the token in one atomic step. Returns ErrResetTokenInvalid
	// when the token does not match, has expired, or was already consumed.
	ResetPassword(ctx context.Context, token, newPassword string) error

	// GetProfile returns the account summary for the given user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userStore     store.UserStore
	memoStore     store.MemoStore
	hasher        auth.PasswordHasher
	notifier      Notifier
	resetLifetime time.Duration
	resetBaseURL  string
	timeFunc      func() time.Time // Injectable for testing
	logger        *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(
	userStore store.UserStore,
	memoStore store.MemoStore,
	hasher auth.PasswordHasher,
	notifier Notifier,
	resetLifetime time.Duration,
	resetBaseURL string,
	log *slog.Logger,
) UserService {
	if log == nil {
		log = slog.Default()
	}
	return &userServiceImpl{
		userStore:     userStore,
		memoStore:     memoStore,
		hasher:        hasher,
		notifier:      notifier,
		resetLifetime: resetLifetime,
		resetBaseURL:  resetBaseURL,
		timeFunc:      time.Now,
		logger:        log.With(slog.String("component", "user_service")),
	}
}

// RequestPasswordReset implements UserService.RequestPasswordReset
func (s *userServiceImpl) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Succeed without doing anything; the response must not reveal
			// whether the address is registered.
			s.logger.Debug("password reset requested for unknown email")
			return nil
		}
		return &ServiceError{Operation: "request_password_reset", Message: "failed to look up user", Err: err}
	}

	token, err := auth.GenerateResetToken()
	if err != nil {
		return &ServiceError{Operation: "request_password_reset", Message: "failed to generate token", Err: err}
	}

	expires := s.timeFunc().UTC().Add(s.resetLifetime)
	if err := s.userStore.SetResetToken(ctx, user.ID, token, expires); err != nil {
		return &ServiceError{Operation: "request_password_reset", Message: "failed to store token", Err: err}
	}

	resetLink := fmt.Sprintf("%s?token=%s", s.resetBaseURL, url.QueryEscape(token))
	if err := s.notifier.SendPasswordReset(ctx, user.Email, resetLink); err != nil {
		// Best-effort delivery: the token is valid either way and the
		// response must stay uniform.
		s.logger.Error("failed to send password reset mail",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
	}

	s.logger.Info("password reset requested",
		slog.String("user_id", user.ID.String()),
		slog.Time("expires", expires))
	return nil
}

// ResetPassword implements UserService.ResetPassword
func (s *userServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := domain.ValidatePassword(newPassword); err != nil {
		return err
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return &ServiceError{Operation: "reset_password", Message: "failed to hash password", Err: err}
	}

	userID, err := s.userStore.ConsumeResetToken(ctx, token, hashed, s.timeFunc().UTC())
	if err != nil {
		if errors.Is(err, store.ErrResetTokenInvalid) {
			return ErrResetTokenInvalid
		}
		return &ServiceError{Operation: "reset_password", Message: "failed to consume token", Err: err}
	}

	s.logger.Info("password reset completed",
		slog.String("user_id", userID.String()))
	return nil
}

// GetProfile implements UserService.GetProfile
func (s *userServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, &ServiceError{Operation: "get_profile", Message: "failed to load user", Err: err}
	}

	count, err := s.memoStore.CountByOwner(ctx, userID)
	if err != nil {
		return nil, &ServiceError{Operation: "get_profile", Message: "failed to count memos", Err: err}
	}

	return &Profile{
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		MemoCount: count,
	}, nil
}
