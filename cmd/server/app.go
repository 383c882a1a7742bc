package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"memopad/internal/config"
	"memopad/internal/platform/blob"
	"memopad/internal/platform/mail"
	"memopad/internal/platform/postgres"
	"memopad/internal/service"
	"memopad/internal/service/auth"
	"memopad/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore store.UserStore
	memoStore store.MemoStore

	// Service interfaces
	jwtService       auth.JWTService
	passwordVerifier *auth.BcryptVerifier
	memoService      service.MemoService
	userService      service.UserService

	// External collaborators
	blobStore *blob.Store
	mailer    *mail.Mailer
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier(bcrypt.DefaultCost)

	app.userStore = postgres.NewPostgresUserStore(db, bcrypt.DefaultCost, logger)
	app.memoStore = postgres.NewPostgresMemoStore(db, logger)

	app.blobStore = blob.NewStore(cfg.Blob, logger)
	app.mailer = mail.NewMailer(cfg.Mail, logger)

	app.memoService = service.NewMemoService(app.memoStore, logger)
	app.userService = service.NewUserService(
		app.userStore,
		app.memoStore,
		app.passwordVerifier,
		app.mailer,
		time.Duration(cfg.Auth.ResetTokenLifetimeMinutes)*time.Minute,
		cfg.Auth.ResetBaseURL,
		logger,
	)

	return app, nil
}
