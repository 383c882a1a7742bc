package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"memopad/internal/domain"
	"memopad/internal/store"
)

// MemoService provides the memo lifecycle operations. Every operation is
// scoped to the authenticated owner; a memo that exists but belongs to a
// different user behaves exactly like a missing one.
type MemoService interface {
	// CreateMemo creates a new active memo owned by the caller.
	CreateMemo(ctx context.Context, ownerID uuid.UUID, title, content, category string, attachments []domain.Attachment) (*domain.Memo, error)

	// GetMemo retrieves one of the caller's memos, active or trashed.
	GetMemo(ctx context.Context, ownerID, memoID uuid.UUID) (*domain.Memo, error)

	// UpdateMemo applies a partial edit to one of the caller's active memos.
	// Returns ErrNoFieldsSpecified when the update carries no fields and
	// ErrMemoNotFound when the memo is missing, foreign, or trashed.
	UpdateMemo(ctx context.Context, ownerID, memoID uuid.UUID, update domain.MemoUpdate) (*domain.Memo, error)

	// DeleteMemo moves one of the caller's active memos to the trash.
	DeleteMemo(ctx context.Context, ownerID, memoID uuid.UUID) error

	// RestoreMemo moves one of the caller's trashed memos back to active.
	RestoreMemo(ctx context.Context, ownerID, memoID uuid.UUID) (*domain.Memo, error)

	// ListMemos returns one page of the caller's memos plus the total count
	// of memos matching the filters.
	ListMemos(ctx context.Context, ownerID uuid.UUID, q store.ListQuery) ([]*domain.Memo, int, error)

	// EmptyTrash permanently removes all of the caller's trashed memos and
	// returns the number removed. Idempotent: an empty trash reports 0.
	EmptyTrash(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

// DefaultPageSize is used when a listing request does not specify a limit.
const DefaultPageSize = 10

// MaxPageSize caps caller-specified page sizes.
const MaxPageSize = 100

// memoServiceImpl implements the MemoService interface
type memoServiceImpl struct {
	memoStore store.MemoStore
	logger    *slog.Logger
}

// NewMemoService creates a new MemoService backed by the given store.
func NewMemoService(memoStore store.MemoStore, log *slog.Logger) MemoService {
	if memoStore == nil {
		panic("memoStore cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &memoServiceImpl{
		memoStore: memoStore,
		logger:    log.With(slog.String("component", "memo_service")),
	}
}

// mapMemoError translates store sentinels to service sentinels and wraps
// everything else with operation context.
func mapMemoError(operation, message string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, store.ErrMemoNotFound) {
		return ErrMemoNotFound
	}
	if errors.Is(err, domain.ErrNoFieldsSpecified) {
		return ErrNoFieldsSpecified
	}
	// A trashed memo rejects active-only transitions (and vice versa) the
	// same way a missing memo would, so the state machine never leaks
	// which of the two happened.
	if errors.Is(err, domain.ErrMemoTrashed) || errors.Is(err, domain.ErrMemoNotTrashed) {
		return ErrMemoNotFound
	}
	return &ServiceError{Operation: operation, Message: message, Err: err}
}

// CreateMemo implements MemoService.CreateMemo
func (s *memoServiceImpl) CreateMemo(
	ctx context.Context,
	ownerID uuid.UUID,
	title, content, category string,
	attachments []domain.Attachment,
) (*domain.Memo, error) {
	memo, err := domain.NewMemo(ownerID, title, content, category, attachments)
	if err != nil {
		return nil, err
	}

	if err := s.memoStore.Create(ctx, memo); err != nil {
		return nil, mapMemoError("create_memo", "failed to save memo", err)
	}

	s.logger.Debug("memo created",
		slog.String("memo_id", memo.ID.String()),
		slog.String("user_id", ownerID.String()))
	return memo, nil
}

// GetMemo implements MemoService.GetMemo
func (s *memoServiceImpl) GetMemo(ctx context.Context, ownerID, memoID uuid.UUID) (*domain.Memo, error) {
	memo, err := s.memoStore.GetForOwner(ctx, memoID, ownerID)
	if err != nil {
		return nil, mapMemoError("get_memo", "failed to load memo", err)
	}
	return memo, nil
}

// UpdateMemo implements MemoService.UpdateMemo
func (s *memoServiceImpl) UpdateMemo(
	ctx context.Context,
	ownerID, memoID uuid.UUID,
	update domain.MemoUpdate,
) (*domain.Memo, error) {
	// Reject empty edits before touching the store, so callers get the
	// validation failure even for memos they do not own.
	if update.Empty() {
		return nil, ErrNoFieldsSpecified
	}

	memo, err := s.memoStore.GetForOwner(ctx, memoID, ownerID)
	if err != nil {
		return nil, mapMemoError("update_memo", "failed to load memo", err)
	}

	if err := memo.Apply(update); err != nil {
		return nil, mapMemoError("update_memo", "failed to apply update", err)
	}

	if err := s.memoStore.Update(ctx, memo); err != nil {
		return nil, mapMemoError("update_memo", "failed to save memo", err)
	}

	return memo, nil
}

// DeleteMemo implements MemoService.DeleteMemo
func (s *memoServiceImpl) DeleteMemo(ctx context.Context, ownerID, memoID uuid.UUID) error {
	memo, err := s.memoStore.GetForOwner(ctx, memoID, ownerID)
	if err != nil {
		return mapMemoError("delete_memo", "failed to load memo", err)
	}

	if err := memo.MoveToTrash(); err != nil {
		return mapMemoError("delete_memo", "failed to trash memo", err)
	}

	if err := s.memoStore.Update(ctx, memo); err != nil {
		return mapMemoError("delete_memo", "failed to save memo", err)
	}

	s.logger.Debug("memo trashed",
		slog.String("memo_id", memoID.String()),
		slog.String("user_id", ownerID.String()))
	return nil
}

// RestoreMemo implements MemoService.RestoreMemo
func (s *memoServiceImpl) RestoreMemo(ctx context.Context, ownerID, memoID uuid.UUID) (*domain.Memo, error) {
	memo, err := s.memoStore.GetForOwner(ctx, memoID, ownerID)
	if err != nil {
		return nil, mapMemoError("restore_memo", "failed to load memo", err)
	}

	if err := memo.RestoreFromTrash(); err != nil {
		return nil, mapMemoError("restore_memo", "failed to restore memo", err)
	}

	if err := s.memoStore.Update(ctx, memo); err != nil {
		return nil, mapMemoError("restore_memo", "failed to save memo", err)
	}

	s.logger.Debug("memo restored",
		slog.String("memo_id", memoID.String()),
		slog.String("user_id", ownerID.String()))
	return memo, nil
}

// ListMemos implements MemoService.ListMemos
func (s *memoServiceImpl) ListMemos(
	ctx context.Context,
	ownerID uuid.UUID,
	q store.ListQuery,
) ([]*domain.Memo, int, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	q.Sort = q.Sort.Normalize()

	memos, total, err := s.memoStore.List(ctx, ownerID, q)
	if err != nil {
		return nil, 0, mapMemoError("list_memos", "failed to list memos", err)
	}
	return memos, total, nil
}

// EmptyTrash implements MemoService.EmptyTrash
func (s *memoServiceImpl) EmptyTrash(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	count, err := s.memoStore.PurgeTrash(ctx, ownerID)
	if err != nil {
		return 0, mapMemoError("empty_trash", "failed to purge trash", err)
	}

	s.logger.Info("trash emptied",
		slog.String("user_id", ownerID.String()),
		slog.Int64("deleted_count", count))
	return count, nil
}
