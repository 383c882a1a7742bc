package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"memopad/internal/domain"
	"memopad/internal/platform/logger"
	"memopad/internal/store"
)

// PostgreSQL error codes
const pgForeignKeyViolationCode = "23503"

// PostgresMemoStore implements the store.MemoStore interface
// using a PostgreSQL database as the storage backend.
type PostgresMemoStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresMemoStore creates a new PostgreSQL implementation of the
// MemoStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller. If logger is nil, a
// default logger will be used.
func NewPostgresMemoStore(db store.DBTX, log *slog.Logger) *PostgresMemoStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresMemoStore{
		db:     db,
		logger: log.With(slog.String("component", "memo_store")),
	}
}

// Ensure PostgresMemoStore implements store.MemoStore interface
var _ store.MemoStore = (*PostgresMemoStore)(nil)

// isForeignKeyViolation checks if the given error is a PostgreSQL foreign
// key constraint violation (e.g., a memo referencing a missing user).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolationCode
}

// Create implements store.MemoStore.Create
// It saves a new memo to the database, handling domain validation.
// Returns store.ErrInvalidEntity if the user ID doesn't exist.
func (s *PostgresMemoStore) Create(ctx context.Context, memo *domain.Memo) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := memo.Validate(); err != nil {
		log.Warn("memo validation failed during create",
			slog.String("error", err.Error()),
			slog.String("memo_id", memo.ID.String()))
		return err
	}

	attachments, err := json.Marshal(memo.Attachments)
	if err != nil {
		return fmt.Errorf("failed to marshal attachments: %w", err)
	}

	query := `
		INSERT INTO memos (id, user_id, title, content, category, is_done, is_pinned, is_deleted, attachments, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		memo.ID,
		memo.UserID,
		memo.Title,
		memo.Content,
		memo.Category,
		memo.IsDone,
		memo.IsPinned,
		memo.IsDeleted,
		attachments,
		memo.CreatedAt,
		memo.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during memo creation",
				slog.String("memo_id", memo.ID.String()),
				slog.String("user_id", memo.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, memo.UserID)
		}

		log.Error("failed to create memo",
			slog.String("error", err.Error()),
			slog.String("memo_id", memo.ID.String()),
			slog.String("user_id", memo.UserID.String()))
		return err
	}

	log.Info("memo created successfully",
		slog.String("memo_id", memo.ID.String()),
		slog.String("user_id", memo.UserID.String()))
	return nil
}

const memoColumns = "id, user_id, title, content, category, is_done, is_pinned, is_deleted, attachments, created_at, updated_at"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLikePattern neutralizes LIKE metacharacters so a search term
// matches as a literal substring rather than a pattern.
func escapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}

// GetForOwner implements store.MemoStore.GetForOwner
// The owner scope is part of the WHERE clause, so a memo owned by another
// user is indistinguishable from a missing one.
// Returns store.ErrMemoNotFound in both cases.
func (s *PostgresMemoStore) GetForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Memo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + memoColumns + `
		FROM memos
		WHERE id = $1 AND user_id = $2
	`
	memo, err := scanMemo(s.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("memo not found for owner",
				slog.String("memo_id", id.String()))
			return nil, store.ErrMemoNotFound
		}
		log.Error("failed to get memo",
			slog.String("error", err.Error()),
			slog.String("memo_id", id.String()))
		return nil, err
	}

	return memo, nil
}

// Update implements store.MemoStore.Update
// It persists the full current state of the memo, scoped to its owner.
// Returns store.ErrMemoNotFound if no owned row matches.
func (s *PostgresMemoStore) Update(ctx context.Context, memo *domain.Memo) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := memo.Validate(); err != nil {
		log.Warn("memo validation failed during update",
			slog.String("error", err.Error()),
			slog.String("memo_id", memo.ID.String()))
		return err
	}

	attachments, err := json.Marshal(memo.Attachments)
	if err != nil {
		return fmt.Errorf("failed to marshal attachments: %w", err)
	}

	query := `
		UPDATE memos
		SET title = $1, content = $2, category = $3, is_done = $4, is_pinned = $5, is_deleted = $6, attachments = $7, updated_at = $8
		WHERE id = $9 AND user_id = $10
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		memo.Title,
		memo.Content,
		memo.Category,
		memo.IsDone,
		memo.IsPinned,
		memo.IsDeleted,
		attachments,
		memo.UpdatedAt,
		memo.ID,
		memo.UserID,
	)
	if err != nil {
		log.Error("failed to update memo",
			slog.String("error", err.Error()),
			slog.String("memo_id", memo.ID.String()))
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return store.ErrMemoNotFound
	}

	log.Debug("memo updated",
		slog.String("memo_id", memo.ID.String()))
	return nil
}

// List implements store.MemoStore.List
// The same query shape serves the active and trash views; only the
// is_deleted flag differs. The total count is computed with the filters
// applied but before pagination.
func (s *PostgresMemoStore) List(ctx context.Context, ownerID uuid.UUID, q store.ListQuery) ([]*domain.Memo, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	where := []string{"user_id = $1", "is_deleted = $2"}
	args := []any{ownerID, q.Deleted}

	if q.Category != "" {
		args = append(args, q.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if q.Search != "" {
		args = append(args, "%"+escapeLikePattern(q.Search)+"%")
		n := len(args)
		where = append(where, fmt.Sprintf(`(title ILIKE $%d ESCAPE '\' OR content ILIKE $%d ESCAPE '\')`, n, n))
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM memos WHERE " + whereClause
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("failed to count memos",
			slog.String("error", err.Error()),
			slog.String("user_id", ownerID.String()))
		return nil, 0, err
	}

	direction := "DESC"
	if q.Sort.Normalize() == store.SortOldest {
		direction = "ASC"
	}

	args = append(args, q.PageSize, q.Offset())
	query := fmt.Sprintf(`
		SELECT %s
		FROM memos
		WHERE %s
		ORDER BY is_pinned DESC, is_done ASC, created_at %s, id
		LIMIT $%d OFFSET $%d
	`, memoColumns, whereClause, direction, len(args)-1, len(args))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list memos",
			slog.String("error", err.Error()),
			slog.String("user_id", ownerID.String()))
		return nil, 0, err
	}
	defer func() { _ = rows.Close() }()

	memos := make([]*domain.Memo, 0, q.PageSize)
	for rows.Next() {
		memo, err := scanMemo(rows)
		if err != nil {
			return nil, 0, err
		}
		memos = append(memos, memo)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	log.Debug("memos listed",
		slog.String("user_id", ownerID.String()),
		slog.Bool("deleted", q.Deleted),
		slog.Int("total", total),
		slog.Int("page_items", len(memos)))
	return memos, total, nil
}

// PurgeTrash implements store.MemoStore.PurgeTrash
// A single DELETE removes every trashed memo of the owner; running it
// against an empty trash reports 0 rather than failing.
func (s *PostgresMemoStore) PurgeTrash(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM memos WHERE user_id = $1 AND is_deleted = TRUE`
	result, err := s.db.ExecContext(ctx, query, ownerID)
	if err != nil {
		log.Error("failed to purge trash",
			slog.String("error", err.Error()),
			slog.String("user_id", ownerID.String()))
		return 0, err
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	log.Info("trash purged",
		slog.String("user_id", ownerID.String()),
		slog.Int64("deleted_count", count))
	return count, nil
}

// CountByOwner implements store.MemoStore.CountByOwner
func (s *PostgresMemoStore) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int
	query := `SELECT COUNT(*) FROM memos WHERE user_id = $1`
	if err := s.db.QueryRowContext(ctx, query, ownerID).Scan(&count); err != nil {
		log.Error("failed to count memos by owner",
			slog.String("error", err.Error()),
			slog.String("user_id", ownerID.String()))
		return 0, err
	}

	return count, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanMemo maps one memos row onto a domain.Memo, unmarshalling the
// attachments JSON column.
func scanMemo(row rowScanner) (*domain.Memo, error) {
	var memo domain.Memo
	var attachments []byte

	err := row.Scan(
		&memo.ID,
		&memo.UserID,
		&memo.Title,
		&memo.Content,
		&memo.Category,
		&memo.IsDone,
		&memo.IsPinned,
		&memo.IsDeleted,
		&attachments,
		&memo.CreatedAt,
		&memo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(attachments) > 0 {
		if err := json.Unmarshal(attachments, &memo.Attachments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal attachments: %w", err)
		}
	}
	if memo.Attachments == nil {
		memo.Attachments = []domain.Attachment{}
	}

	return &memo, nil
}
