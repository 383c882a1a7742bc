package store

import (
	"context"

	"github.com/google/uuid"

	"memopad/internal/domain"
)

// SortOrder selects the created_at direction for memo listings.
type SortOrder string

const (
	// SortNewest lists the most recently created memos first (default).
	SortNewest SortOrder = "newest"
	// SortOldest lists the oldest memos first.
	SortOldest SortOrder = "oldest"
)

// Normalize maps unknown values to SortNewest.
func (s SortOrder) Normalize() SortOrder {
	if s == SortOldest {
		return SortOldest
	}
	return SortNewest
}

// ListQuery describes a memo listing request. The owner scope and the
// deleted flag are always applied; the remaining filters are optional.
type ListQuery struct {
	// Deleted selects the trash view (true) or the active view (false).
	Deleted bool

	// Category, when non-empty, exact-matches the memo category.
	Category string

	// Search, when non-empty, case-insensitively substring-matches the memo
	// title or content.
	Search string

	// Sort selects the created_at direction within the pin/done buckets.
	Sort SortOrder

	// Page is 1-based. Pages past the end yield an empty item list.
	Page int

	// PageSize is the maximum number of items per page.
	PageSize int
}

// Offset returns the row offset implied by Page and PageSize.
func (q ListQuery) Offset() int {
	page := q.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * q.PageSize
}

// MemoStore defines the interface for memo data persistence.
//
// Concurrent updates to the same memo are last-write-wins; the store carries
// no version column and callers must not assume otherwise.
type MemoStore interface {
	// Create saves a new memo to the store.
	// It handles domain validation internally.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, memo *domain.Memo) error

	// GetForOwner retrieves a memo by ID, scoped to the given owner.
	// Returns ErrMemoNotFound if the memo does not exist or belongs to a
	// different user; the two cases are indistinguishable.
	GetForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Memo, error)

	// Update persists the full current state of a memo, scoped to its owner.
	// Returns ErrMemoNotFound if no owned row matches.
	Update(ctx context.Context, memo *domain.Memo) error

	// List returns one page of the owner's memos matching the query, plus
	// the total count of matching memos before pagination. Ordering is
	// deterministic: pinned before unpinned, not-done before done, then
	// created_at in the requested direction, then ID as a stable tiebreak.
	List(ctx context.Context, ownerID uuid.UUID, q ListQuery) ([]*domain.Memo, int, error)

	// PurgeTrash permanently removes all of the owner's trashed memos in a
	// single statement and returns the number removed. Calling it with an
	// empty trash is not an error; it reports 0.
	PurgeTrash(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// CountByOwner returns the number of memos (active and trashed) owned
	// by the user.
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}
