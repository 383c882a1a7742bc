package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"memopad/internal/domain"
	"memopad/internal/store"
)

// MockMemoStore implements store.MemoStore for testing. The default
// implementation keeps memos in memory and reproduces the real store's
// ordering and pagination semantics.
type MockMemoStore struct {
	// Function fields for customizable behavior
	CreateFn       func(ctx context.Context, memo *domain.Memo) error
	GetForOwnerFn  func(ctx context.Context, id, ownerID uuid.UUID) (*domain.Memo, error)
	UpdateFn       func(ctx context.Context, memo *domain.Memo) error
	ListFn         func(ctx context.Context, ownerID uuid.UUID, q store.ListQuery) ([]*domain.Memo, int, error)
	PurgeTrashFn   func(ctx context.Context, ownerID uuid.UUID) (int64, error)
	CountByOwnerFn func(ctx context.Context, ownerID uuid.UUID) (int, error)

	mu    sync.Mutex
	Memos map[uuid.UUID]*domain.Memo
}

// NewMockMemoStore creates a new mock store with initialized defaults.
func NewMockMemoStore() *MockMemoStore {
	return &MockMemoStore{
		Memos: make(map[uuid.UUID]*domain.Memo),
	}
}

// Create implements the MemoStore interface.
func (m *MockMemoStore) Create(ctx context.Context, memo *domain.Memo) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, memo)
	}

	if err := memo.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *memo
	m.Memos[memo.ID] = &stored
	return nil
}

// GetForOwner implements the MemoStore interface.
func (m *MockMemoStore) GetForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Memo, error) {
	if m.GetForOwnerFn != nil {
		return m.GetForOwnerFn(ctx, id, ownerID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	memo, exists := m.Memos[id]
	if !exists || memo.UserID != ownerID {
		return nil, store.ErrMemoNotFound
	}

	found := *memo
	return &found, nil
}

// Update implements the MemoStore interface.
func (m *MockMemoStore) Update(ctx context.Context, memo *domain.Memo) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, memo)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, exists := m.Memos[memo.ID]
	if !exists || existing.UserID != memo.UserID {
		return store.ErrMemoNotFound
	}

	stored := *memo
	m.Memos[memo.ID] = &stored
	return nil
}

// List implements the MemoStore interface with the real ordering contract:
// pinned before unpinned, not-done before done, created_at in the requested
// direction, then ID as a stable tiebreak.
func (m *MockMemoStore) List(ctx context.Context, ownerID uuid.UUID, q store.ListQuery) ([]*domain.Memo, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, ownerID, q)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []*domain.Memo
	for _, memo := range m.Memos {
		if memo.UserID != ownerID || memo.IsDeleted != q.Deleted {
			continue
		}
		if q.Category != "" && memo.Category != q.Category {
			continue
		}
		if q.Search != "" && !matchesSearch(memo, q.Search) {
			continue
		}
		found := *memo
		matched = append(matched, &found)
	}

	newestFirst := q.Sort.Normalize() == store.SortNewest
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.IsPinned != b.IsPinned {
			return a.IsPinned
		}
		if a.IsDone != b.IsDone {
			return b.IsDone
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			if newestFirst {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})

	total := len(matched)

	offset := q.Offset()
	if offset >= total {
		return []*domain.Memo{}, total, nil
	}
	end := offset + q.PageSize
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

// PurgeTrash implements the MemoStore interface.
func (m *MockMemoStore) PurgeTrash(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	if m.PurgeTrashFn != nil {
		return m.PurgeTrashFn(ctx, ownerID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int64
	for id, memo := range m.Memos {
		if memo.UserID == ownerID && memo.IsDeleted {
			delete(m.Memos, id)
			removed++
		}
	}
	return removed, nil
}

// CountByOwner implements the MemoStore interface.
func (m *MockMemoStore) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	if m.CountByOwnerFn != nil {
		return m.CountByOwnerFn(ctx, ownerID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, memo := range m.Memos {
		if memo.UserID == ownerID {
			count++
		}
	}
	return count, nil
}

func matchesSearch(memo *domain.Memo, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(memo.Title), needle) ||
		strings.Contains(strings.ToLower(memo.Content), needle)
}
