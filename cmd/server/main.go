// Package main implements the entry point for the Agenda API server, which
// stores contacts and to-do tasks and exposes them over a JSON HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
)

// main parses flags and hands off to run. With -migrate it applies the
// requested goose command and exits; otherwise it serves HTTP until a
// shutdown signal arrives.
func main() {
	migrateCmd := flag.String(
		"migrate",
		"",
		"Run a database migration command (up, down, status, version) and exit",
	)
	flag.Parse()

	if err := run(context.Background(), *migrateCmd); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run(ctx context.Context, migrateCmd string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		return runMigrations(ctx, cfg, logger, migrateCmd)
	}

	app, err := newApplication(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
