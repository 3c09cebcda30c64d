package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/agenda-api/internal/config"
	"github.com/phrazzld/agenda-api/internal/platform/memory"
	"github.com/phrazzld/agenda-api/internal/platform/postgres"
	"github.com/phrazzld/agenda-api/internal/service"
	"github.com/phrazzld/agenda-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil for the memory driver
	db *sql.DB

	contactStore store.ContactStore
	taskStore    store.TaskStore

	contactService service.ContactService
	taskService    service.TaskService
}

// newApplication creates a new application instance with all dependencies initialized.
// The configured database driver decides which store implementations back the services.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	if err := app.setupStores(ctx); err != nil {
		return nil, err
	}

	var err error
	app.contactService, err = service.NewContactService(app.contactStore, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create contact service: %w", err)
	}

	app.taskService, err = service.NewTaskService(app.taskStore, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully", "database_driver", cfg.Database.Driver)
	return app, nil
}

func (app *application) setupStores(ctx context.Context) error {
	switch app.config.Database.Driver {
	case config.DriverMemory:
		app.contactStore = memory.NewContactStore(app.logger)
		app.taskStore = memory.NewTaskStore(app.logger)
		app.logger.Warn("Using in-memory storage; data is lost on restart")
		return nil

	case config.DriverPostgres:
		db, err := setupAppDatabase(ctx, app.config, app.logger)
		if err != nil {
			return err
		}
		app.db = db

		if app.config.Database.AutoMigrate {
			if err := migrateDB(ctx, db, app.logger, "up"); err != nil {
				app.cleanup()
				return fmt.Errorf("failed to apply migrations: %w", err)
			}
		}

		app.contactStore = postgres.NewPostgresContactStore(db, app.logger)
		app.taskStore = postgres.NewPostgresTaskStore(db, app.logger)
		return nil

	default:
		return fmt.Errorf("unsupported database driver %q", app.config.Database.Driver)
	}
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
		app.db = nil
	}

	app.logger.Info("Application shutdown completed")
}
