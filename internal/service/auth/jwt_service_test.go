package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memopad/internal/config"
)

const testSigningSecret = "test-jwt-secret-that-is-32-chars-long"

// newFixedClockService builds a service whose clock the test controls.
func newFixedClockService(lifetime time.Duration, timeFunc func() time.Time) *hmacJWTService {
	return &hmacJWTService{
		signingKey:    []byte(testSigningSecret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
		clockSkew:     2 * time.Minute,
	}
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("accepts a sufficiently long secret", func(t *testing.T) {
		t.Parallel()
		svc, err := NewJWTService(config.AuthConfig{
			JWTSecret:            testSigningSecret,
			TokenLifetimeMinutes: 60,
		})
		require.NoError(t, err)
		require.NotNil(t, svc)
	})

	t.Run("rejects a short secret", func(t *testing.T) {
		t.Parallel()
		_, err := NewJWTService(config.AuthConfig{
			JWTSecret:            "too-short",
			TokenLifetimeMinutes: 60,
		})
		require.Error(t, err)
	})
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 60 * time.Minute
	userID := uuid.New()
	email := "user@example.com"

	svc := newFixedClockService(tokenLifetime, func() time.Time { return fixedTime })

	token, err := svc.GenerateToken(context.Background(), userID, email)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, email, claims.Email)
	assert.Equal(t, userID.String(), claims.Subject)
	// Compare Unix timestamps to avoid timezone issues
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(tokenLifetime).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 60 * time.Minute
	userID := uuid.New()

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		current := fixedTime
		svc := newFixedClockService(tokenLifetime, func() time.Time { return current })

		token, err := svc.GenerateToken(context.Background(), userID, "user@example.com")
		require.NoError(t, err)

		// Move past the lifetime plus the clock-skew leeway
		current = fixedTime.Add(tokenLifetime + 3*time.Minute)

		_, err = svc.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("token within clock skew still validates", func(t *testing.T) {
		t.Parallel()

		current := fixedTime
		svc := newFixedClockService(tokenLifetime, func() time.Time { return current })

		token, err := svc.GenerateToken(context.Background(), userID, "user@example.com")
		require.NoError(t, err)

		current = fixedTime.Add(tokenLifetime + time.Minute)

		_, err = svc.ValidateToken(context.Background(), token)
		assert.NoError(t, err)
	})

	t.Run("tampered token", func(t *testing.T) {
		t.Parallel()

		svc := newFixedClockService(tokenLifetime, func() time.Time { return fixedTime })

		token, err := svc.GenerateToken(context.Background(), userID, "user@example.com")
		require.NoError(t, err)

		tampered := token[:len(token)-2] + "xx"
		_, err = svc.ValidateToken(context.Background(), tampered)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with a different key", func(t *testing.T) {
		t.Parallel()

		other := &hmacJWTService{
			signingKey:    []byte("another-secret-that-is-long-enough!!"),
			tokenLifetime: tokenLifetime,
			timeFunc:      func() time.Time { return fixedTime },
			clockSkew:     2 * time.Minute,
		}
		token, err := other.GenerateToken(context.Background(), userID, "user@example.com")
		require.NoError(t, err)

		svc := newFixedClockService(tokenLifetime, func() time.Time { return fixedTime })
		_, err = svc.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("malformed token", func(t *testing.T) {
		t.Parallel()

		svc := newFixedClockService(tokenLifetime, func() time.Time { return fixedTime })
		_, err := svc.ValidateToken(context.Background(), "not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("empty token", func(t *testing.T) {
		t.Parallel()

		svc := newFixedClockService(tokenLifetime, func() time.Time { return fixedTime })
		_, err := svc.ValidateToken(context.Background(), "")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
