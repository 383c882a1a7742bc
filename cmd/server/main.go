// Package main implements the entry point for the memopad API server,
// which stores users' memos behind credential-based authentication.
package main

import (
	"context"
	"fmt"
	"log"

	"memopad/internal/config"
	"memopad/internal/platform/logger"
)

// main is the entry point for the memopad server. It loads configuration,
// sets up logging, connects to the database, runs migrations, wires the
// application dependencies, and serves HTTP until shutdown.
func main() {
	if err := run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := openDatabase(ctx, cfg.Database, appLogger)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := runMigrations(db, appLogger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return serve(ctx, cfg.Server, app.setupRouter(), appLogger)
}
