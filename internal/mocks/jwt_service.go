package mocks

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"memopad/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing. The default
// implementation issues transparent "mock-token:<uid>:<email>" strings and
// validates them by parsing, so handler tests can round-trip identities
// without real signing.
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context, userID uuid.UUID, email string) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

// GenerateToken implements the JWTService interface.
func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID, email)
	}
	return fmt.Sprintf("mock-token:%s:%s", userID, email), nil
}

// ValidateToken implements the JWTService interface.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}

	parts := strings.SplitN(tokenString, ":", 3)
	if len(parts) != 3 || parts[0] != "mock-token" {
		return nil, auth.ErrInvalidToken
	}
	userID, err := uuid.Parse(parts[1])
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Claims{
		UserID:  userID,
		Email:   parts[2],
		Subject: userID.String(),
	}, nil
}
