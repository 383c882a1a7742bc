package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"memopad/internal/domain"
	"memopad/internal/platform/logger"
	"memopad/internal/store"
)

// PostgreSQL error codes
const pgUniqueViolationCode = "23505"

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db         store.DBTX
	bcryptCost int
	logger     *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection that should be
// initialized and managed by the caller, and the bcrypt cost used when
// hashing plaintext passwords. If logger is nil, the default logger is used.
func NewPostgresUserStore(db store.DBTX, bcryptCost int, log *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresUserStore{
		db:         db,
		bcryptCost: bcryptCost,
		logger:     log.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// isUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation, such as a duplicate email address.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode
}

// Create implements store.UserStore.Create
// It validates the user, hashes the plaintext password, and inserts the row.
// The plaintext password is never persisted or logged.
// Returns store.ErrEmailExists when the email is already registered.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	if user.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
		if err != nil {
			log.Error("failed to hash password",
				slog.String("error", err.Error()),
				slog.String("user_id", user.ID.String()))
			return err
		}
		user.HashedPassword = string(hashed)
		user.Password = ""
	}

	query := `
		INSERT INTO users (id, email, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Email,
		user.HashedPassword,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			log.Debug("duplicate email during user creation",
				slog.String("user_id", user.ID.String()))
			return store.ErrEmailExists
		}

		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	log.Info("user created successfully",
		slog.String("user_id", user.ID.String()))
	return nil
}

// GetByID implements store.UserStore.GetByID
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, email, hashed_password, reset_token, reset_token_expires, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return s.scanUser(ctx, log, s.db.QueryRowContext(ctx, query, id))
}

// GetByEmail implements store.UserStore.GetByEmail
// The email match is exact and case-sensitive.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, email, hashed_password, reset_token, reset_token_expires, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	return s.scanUser(ctx, log, s.db.QueryRowContext(ctx, query, email))
}

// scanUser maps one users row onto a domain.User, translating the nullable
// reset columns to their zero-value "no pending reset" form.
func (s *PostgresUserStore) scanUser(ctx context.Context, log *slog.Logger, row *sql.Row) (*domain.User, error) {
	var user domain.User
	var resetToken sql.NullString
	var resetExpires sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.HashedPassword,
		&resetToken,
		&resetExpires,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user",
			slog.String("error", err.Error()))
		return nil, err
	}

	if resetToken.Valid {
		user.ResetToken = resetToken.String
	}
	if resetExpires.Valid {
		user.ResetTokenExpires = resetExpires.Time
	}

	return &user, nil
}

// SetResetToken implements store.UserStore.SetResetToken
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) SetResetToken(ctx context.Context, id uuid.UUID, token string, expires time.Time) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE users
		SET reset_token = $1, reset_token_expires = $2, updated_at = $3
		WHERE id = $4
	`
	result, err := s.db.ExecContext(ctx, query, token, expires, time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to set reset token",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return store.ErrUserNotFound
	}

	log.Info("reset token set",
		slog.String("user_id", id.String()),
		slog.Time("expires", expires))
	return nil
}

// ConsumeResetToken implements store.UserStore.ConsumeResetToken
// The guard (token matches and is unexpired) and the effect (new password
// hash, reset fields cleared) are a single UPDATE, so a token can be
// redeemed at most once even under concurrent requests.
// Returns store.ErrResetTokenInvalid when no row matches.
func (s *PostgresUserStore) ConsumeResetToken(ctx context.Context, token, newHashedPassword string, now time.Time) (uuid.UUID, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE users
		SET hashed_password = $1, reset_token = NULL, reset_token_expires = NULL, updated_at = $2
		WHERE reset_token = $3 AND reset_token_expires > $4
		RETURNING id
	`
	var id uuid.UUID
	err := s.db.QueryRowContext(ctx, query, newHashedPassword, now, token, now).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("reset token rejected")
			return uuid.Nil, store.ErrResetTokenInvalid
		}
		log.Error("failed to consume reset token",
			slog.String("error", err.Error()))
		return uuid.Nil, err
	}

	log.Info("password reset consumed",
		slog.String("user_id", id.String()))
	return id, nil
}
