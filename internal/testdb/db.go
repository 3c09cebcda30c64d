//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/agenda-api/internal/ciutil"
	"github.com/phrazzld/agenda-api/internal/platform/postgres"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// migrateOnce guards schema setup; goose keeps global state.
var migrateOnce sync.Once

// GetTestDatabaseURL returns the database URL for tests.
// It checks AGENDA_TEST_DB_URL and DATABASE_URL in that order.
func GetTestDatabaseURL() string {
	return ciutil.TestDatabaseURL(nil)
}

// GetTestDBWithT returns a migrated database connection for testing.
// Without a database URL it skips the test locally and fails it in CI.
// The connection is closed when the test finishes.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		if ciutil.IsCI() {
			t.Fatal("AGENDA_TEST_DB_URL or DATABASE_URL must be set in CI")
		}
		t.Skip("AGENDA_TEST_DB_URL or DATABASE_URL not set - skipping integration test")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "Failed to open database connection")

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "Database ping failed")

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close database connection: %v", err)
		}
	})

	SetupTestDatabaseSchema(t, db)
	return db
}

// SetupTestDatabaseSchema applies the embedded migrations once per test binary.
func SetupTestDatabaseSchema(t *testing.T, db *sql.DB) {
	t.Helper()

	var migrateErr error
	migrateOnce.Do(func() {
		goose.SetLogger(&testGooseLogger{t: t})
		goose.SetBaseFS(postgres.Migrations)
		if err := goose.SetDialect("postgres"); err != nil {
			migrateErr = fmt.Errorf("failed to set goose dialect: %w", err)
			return
		}
		migrateErr = goose.Up(db, postgres.MigrationsDir)
	})
	require.NoError(t, migrateErr, "Failed to run migrations")
}

// WithTx executes fn within a transaction that is always rolled back,
// so each test sees a clean schema.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		// sql.ErrTxDone is expected if fn already finished the transaction
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}

// testGooseLogger routes goose output to the test log.
type testGooseLogger struct {
	t *testing.T
}

func (l *testGooseLogger) Printf(format string, v ...interface{}) {
	l.t.Log("Goose: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *testGooseLogger) Fatalf(format string, v ...interface{}) {
	l.t.Fatal("Goose fatal error: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}
