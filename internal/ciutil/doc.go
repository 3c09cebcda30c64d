// Package ciutil detects CI environments and reads the environment variables
// that configure test runs.
//
// Integration tests use it to decide whether a missing test database should
// skip the test (local runs) or fail it (CI, where the database is expected).
package ciutil
