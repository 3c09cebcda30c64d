package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/agenda-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		SchemaName:     "public",
		TableName:      "contacts",
		ColumnName:     "name",
		ConstraintName: "contacts_name_phone_key",
	}
}

// mockResult implements sql.Result for testing
type mockResult struct {
	rowsAffected int64
	err          error
}

func (m mockResult) LastInsertId() (int64, error) {
	return 0, m.err
}

func (m mockResult) RowsAffected() (int64, error) {
	return m.rowsAffected, m.err
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "non-postgres error", err: errors.New("generic error"), expected: false},
		{name: "unique violation", err: newPgError(uniqueViolationCode), expected: true},
		{
			name:     "wrapped unique violation",
			err:      fmt.Errorf("insert: %w", newPgError(uniqueViolationCode)),
			expected: true,
		},
		{name: "foreign key violation", err: newPgError("23503"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, IsUniqueViolation(tt.err))
		})
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		target error
	}{
		{name: "no rows", err: sql.ErrNoRows, target: store.ErrNotFound},
		{name: "unique violation", err: newPgError(uniqueViolationCode), target: store.ErrDuplicate},
		{name: "check violation", err: newPgError(checkViolationCode), target: store.ErrInvalidEntity},
		{name: "not null violation", err: newPgError(notNullViolationCode), target: store.ErrInvalidEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mapped := MapError(tt.err)
			assert.ErrorIs(t, mapped, tt.target)
		})
	}

	t.Run("nil passes through", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, MapError(nil))
	})

	t.Run("unknown error returned unchanged", func(t *testing.T) {
		t.Parallel()
		err := errors.New("connection reset")
		assert.Same(t, err, MapError(err))
	})
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	t.Run("rows affected", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, CheckRowsAffected(mockResult{rowsAffected: 1}, store.ErrContactNotFound))
	})

	t.Run("no rows returns the given error", func(t *testing.T) {
		t.Parallel()
		err := CheckRowsAffected(mockResult{}, store.ErrTaskNotFound)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("no rows without specific error", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, CheckRowsAffected(mockResult{}, nil), store.ErrNotFound)
	})

	t.Run("result error", func(t *testing.T) {
		t.Parallel()
		resultErr := errors.New("driver failure")
		err := CheckRowsAffected(mockResult{err: resultErr}, store.ErrTaskNotFound)
		require.Error(t, err)
		assert.ErrorIs(t, err, resultErr)
		assert.NotErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("nil result", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, CheckRowsAffected(nil, store.ErrTaskNotFound))
	})
}

func TestContainsPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fragment string
		expected string
	}{
		{fragment: "bruce", expected: "%bruce%"},
		{fragment: "", expected: "%%"},
		{fragment: "50%", expected: `%50\%%`},
		{fragment: "a_b", expected: `%a\_b%`},
		{fragment: `c:\dir`, expected: `%c:\\dir%`},
	}

	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, containsPattern(tt.fragment))
		})
	}
}
