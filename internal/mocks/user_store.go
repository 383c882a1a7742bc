package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"memopad/internal/domain"
	"memopad/internal/store"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn            func(ctx context.Context, user *domain.User) error
	GetByIDFn           func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn        func(ctx context.Context, email string) (*domain.User, error)
	SetResetTokenFn     func(ctx context.Context, id uuid.UUID, token string, expires time.Time) error
	ConsumeResetTokenFn func(ctx context.Context, token, newHashedPassword string, now time.Time) (uuid.UUID, error)

	// Data for the default implementation, keyed by email.
	mu    sync.Mutex
	Users map[string]*domain.User
}

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Create implements the UserStore interface.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if err := user.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}

	// Stand-in for the real store's bcrypt hashing.
	if user.HashedPassword == "" {
		user.HashedPassword = "hashed:" + user.Password
	}
	user.Password = ""

	stored := *user
	m.Users[user.Email] = &stored
	return nil
}

// GetByID implements the UserStore interface.
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.Users {
		if user.ID == id {
			found := *user
			return &found, nil
		}
	}

	return nil, store.ErrUserNotFound
}

// GetByEmail implements the UserStore interface.
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	found := *user
	return &found, nil
}

// SetResetToken implements the UserStore interface.
func (m *MockUserStore) SetResetToken(ctx context.Context, id uuid.UUID, token string, expires time.Time) error {
	if m.SetResetTokenFn != nil {
		return m.SetResetTokenFn(ctx, id, token, expires)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.Users {
		if user.ID == id {
			user.ResetToken = token
			user.ResetTokenExpires = expires
			user.UpdatedAt = time.Now().UTC()
			return nil
		}
	}

	return store.ErrUserNotFound
}

// ConsumeResetToken implements the UserStore interface. Like the real store,
// the token match, the expiry guard, and the clear happen under one lock, so
// a token redeems at most once.
func (m *MockUserStore) ConsumeResetToken(ctx context.Context, token, newHashedPassword string, now time.Time) (uuid.UUID, error) {
	if m.ConsumeResetTokenFn != nil {
		return m.ConsumeResetTokenFn(ctx, token, newHashedPassword, now)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.Users {
		if user.ResetToken == token && user.ResetToken != "" && user.ResetTokenExpires.After(now) {
			user.HashedPassword = newHashedPassword
			user.ResetToken = ""
			user.ResetTokenExpires = time.Time{}
			user.UpdatedAt = now
			return user.ID, nil
		}
	}

	return uuid.Nil, store.ErrResetTokenInvalid
}
