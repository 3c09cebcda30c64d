package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/agenda-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingDB rejects every statement with err.
type failingDB struct {
	err error
}

func (f failingDB) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, f.err
}

func (f failingDB) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, f.err
}

func (f failingDB) QueryRowContext(context.Context, string, ...any) *sql.Row {
	return nil
}

func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestPostgresTaskStore_ErrorLogsUseTypedAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	taskStore := NewPostgresTaskStore(failingDB{err: errors.New("connection refused")}, log)

	task := &domain.Task{ID: uuid.New(), Title: "Buy milk"}
	require.Error(t, taskStore.Create(context.Background(), task))
	_, err := taskStore.List(context.Background())
	require.Error(t, err)

	entries := logEntries(t, &buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "failed to save task", entries[0]["msg"])
	assert.Equal(t, task.ID.String(), entries[0]["task_id"])
	assert.Equal(t, "connection refused", entries[0]["error"])

	assert.Equal(t, "failed to query tasks", entries[1]["msg"])
	assert.Equal(t, "connection refused", entries[1]["error"])

	for _, entry := range entries {
		assert.Equal(t, taskStoreComponent, entry["component"])
	}
}
