package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memopad/internal/api/shared"
	"memopad/internal/domain"
	"memopad/internal/mocks"
	"memopad/internal/service"
)

func TestGetProfileHandler(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserStore()
	memos := mocks.NewMockMemoStore()
	handler := NewUserHandler(service.NewUserService(
		users,
		memos,
		&mocks.MockPasswordVerifier{},
		&mocks.MockNotifier{},
		time.Hour,
		"https://memopad.example.com/reset-password",
		nil,
	))

	user := &domain.User{
		ID:             uuid.New(),
		Email:          "alice@example.com",
		HashedPassword: "hashed:password123",
		CreatedAt:      time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC),
	}
	users.Users[user.Email] = user

	memo, err := domain.NewMemo(user.ID, "one", "content", "", nil)
	require.NoError(t, err)
	memos.Memos[memo.ID] = memo

	get := func(t *testing.T, userID interface{}) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
		if userID != nil {
			ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
			req = req.WithContext(ctx)
		}
		w := httptest.NewRecorder()
		handler.GetProfile(w, req)
		return w
	}

	t.Run("returns the account summary", func(t *testing.T) {
		t.Parallel()

		w := get(t, user.ID)
		require.Equal(t, http.StatusOK, w.Code)

		var resp ProfileResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "alice@example.com", resp.Email)
		assert.Equal(t, user.CreatedAt, resp.CreatedAt)
		assert.Equal(t, 1, resp.MemoCount)
	})

	t.Run("missing identity is a 401", func(t *testing.T) {
		t.Parallel()

		w := get(t, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown user is a 404", func(t *testing.T) {
		t.Parallel()

		w := get(t, uuid.New())
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
