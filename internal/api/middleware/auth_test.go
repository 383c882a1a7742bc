package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memopad/internal/mocks"
	"memopad/internal/service/auth"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	newFixture := func(jwtService auth.JWTService) (http.Handler, *uuid.UUID) {
		var seenUserID uuid.UUID
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID, ok := GetUserID(r); ok {
				seenUserID = userID
			}
			w.WriteHeader(http.StatusOK)
		})
		return NewAuthMiddleware(jwtService).Authenticate(next), &seenUserID
	}

	t.Run("valid bearer token reaches the handler with the identity", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{}
		handler, seenUserID := newFixture(jwtService)

		userID := uuid.New()
		token, err := jwtService.GenerateToken(context.Background(), userID, "user@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/memos", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userID, *seenUserID)
	})

	t.Run("missing header is a 401", func(t *testing.T) {
		t.Parallel()

		handler, _ := newFixture(&mocks.MockJWTService{})

		req := httptest.NewRequest(http.MethodGet, "/api/memos", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-bearer scheme is a 401", func(t *testing.T) {
		t.Parallel()

		handler, _ := newFixture(&mocks.MockJWTService{})

		req := httptest.NewRequest(http.MethodGet, "/api/memos", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token is a 401", func(t *testing.T) {
		t.Parallel()

		handler, _ := newFixture(&mocks.MockJWTService{})

		req := httptest.NewRequest(http.MethodGet, "/api/memos", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token is a 401", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{
			ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
				return nil, auth.ErrExpiredToken
			},
		}
		handler, _ := newFixture(jwtService)

		req := httptest.NewRequest(http.MethodGet, "/api/memos", nil)
		req.Header.Set("Authorization", "Bearer whatever")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
