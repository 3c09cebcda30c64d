package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/agenda-api/internal/config"
	"github.com/phrazzld/agenda-api/internal/platform/postgres"
	"github.com/pressly/goose/v3"
)

// Supported values for the -migrate flag.
const (
	migrateUp      = "up"
	migrateDown    = "down"
	migrateStatus  = "status"
	migrateVersion = "version"
)

// slogGooseLogger forwards goose output to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf implements goose.Logger.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf implements goose.Logger. It logs at error level and does NOT exit;
// the failing goose call returns an error that main reports.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// runMigrations opens the configured database, runs one goose command and closes it.
func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger, command string) error {
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("migrations require the %q driver, configured driver is %q",
			config.DriverPostgres, cfg.Database.Driver)
	}
	if err := validateMigrationCommand(command); err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("Error closing database connection", "error", closeErr)
		}
	}()

	return migrateDB(ctx, db, logger, command)
}

// migrateDB runs command against db using the embedded migrations.
func migrateDB(ctx context.Context, db *sql.DB, logger *slog.Logger, command string) error {
	if err := validateMigrationCommand(command); err != nil {
		return err
	}

	migrationLogger := logger.With("component", "migrations", "command", command)
	start := time.Now()

	goose.SetBaseFS(postgres.Migrations)
	goose.SetLogger(&slogGooseLogger{logger: migrationLogger})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	var err error
	switch command {
	case migrateUp:
		err = goose.UpContext(ctx, db, postgres.MigrationsDir)
	case migrateDown:
		err = goose.DownContext(ctx, db, postgres.MigrationsDir)
	case migrateStatus:
		err = goose.StatusContext(ctx, db, postgres.MigrationsDir)
	case migrateVersion:
		err = goose.VersionContext(ctx, db, postgres.MigrationsDir)
	}
	if err != nil {
		migrationLogger.Error("Migration failed", "error", err)
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	migrationLogger.Info("Migration completed", "duration_ms", time.Since(start).Milliseconds())
	return nil
}

func validateMigrationCommand(command string) error {
	switch command {
	case migrateUp, migrateDown, migrateStatus, migrateVersion:
		return nil
	default:
		return fmt.Errorf("unknown migration command %q (want up, down, status or version)", command)
	}
}
