// Package logger_test contains tests for the logger package
package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/phrazzld/agenda-api/internal/config"
	"github.com/phrazzld/agenda-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := logger.ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestSetupWithWriter verifies JSON output and level filtering.
func TestSetupWithWriter(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	var buf bytes.Buffer
	l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "warn"}, &buf)
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Info("filtered out")
	l.Warn("kept", "contact_id", "abc")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "exactly one JSON line expected")
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "abc", entry["contact_id"])

	// Installed as the process default
	assert.Same(t, l, slog.Default())
}

func TestFromContext(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	scoped := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	t.Run("empty context uses fallback", func(t *testing.T) {
		assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
	})

	t.Run("context logger wins", func(t *testing.T) {
		ctx := logger.WithLogger(context.Background(), scoped)
		assert.Same(t, scoped, logger.FromContextOrDefault(ctx, fallback))
		assert.Same(t, scoped, logger.FromContext(ctx))
	})

	t.Run("nil fallback uses default", func(t *testing.T) {
		assert.Same(t, slog.Default(), logger.FromContextOrDefault(context.Background(), nil))
	})
}

func TestForComponent(t *testing.T) {
	var reqBuf, baseBuf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&baseBuf, nil))
	scoped := slog.New(slog.NewJSONHandler(&reqBuf, nil)).With("trace_id", "t-1")

	t.Run("request logger gains the component", func(t *testing.T) {
		ctx := logger.WithLogger(context.Background(), scoped)
		logger.ForComponent(ctx, base, "contact_store").Info("stored")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(reqBuf.Bytes(), &entry))
		assert.Equal(t, "t-1", entry["trace_id"])
		assert.Equal(t, "contact_store", entry["component"])
		assert.Zero(t, baseBuf.Len())
	})

	t.Run("fallback gains the component", func(t *testing.T) {
		logger.ForComponent(context.Background(), base, "task_store").Info("stored")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(baseBuf.Bytes(), &entry))
		assert.Equal(t, "task_store", entry["component"])
	})
}
