//go:build integration

// Package testdb provides utilities for PostgreSQL integration tests.
//
// Each test runs in its own transaction, which is rolled back when the test
// completes, so tests can share tables and run in parallel:
//
//	func TestContactStore_Create(t *testing.T) {
//	    t.Parallel()
//
//	    db := testdb.GetTestDBWithT(t)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        contacts := postgres.NewPostgresContactStore(tx, nil)
//	        // ...
//	    })
//	}
//
// The connection string is read from AGENDA_TEST_DB_URL, falling back to
// DATABASE_URL. Without either, tests are skipped locally and fail in CI.
package testdb
