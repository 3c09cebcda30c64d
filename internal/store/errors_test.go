package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"generic error", errors.New("some error"), false},
		{"ErrNotFound", ErrNotFound, true},
		{"wrapped ErrNotFound", fmt.Errorf("failed to do something: %w", ErrNotFound), true},
		{"ErrContactNotFound", ErrContactNotFound, true},
		{"wrapped ErrTaskNotFound", fmt.Errorf("failed to find task: %w", ErrTaskNotFound), true},
		{"ErrContactExists", ErrContactExists, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"ErrDuplicate", ErrDuplicate, true},
		{"ErrContactExists", ErrContactExists, true},
		{"wrapped ErrContactExists", fmt.Errorf("insert: %w", ErrContactExists), true},
		{"ErrContactNotFound", ErrContactNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDuplicateError(tt.err))
		})
	}
}

func TestEntitySpecificErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrContactNotFound, ErrTaskNotFound))
	assert.False(t, errors.Is(ErrTaskNotFound, ErrContactNotFound))
	assert.Equal(t, "entity not found: task", ErrTaskNotFound.Error())
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection reset")

	err := NewStoreError("contact", "create", "insert failed", cause)
	assert.Equal(t, "create operation on contact failed: insert failed: connection reset", err.Error())
	assert.True(t, errors.Is(err, cause))

	bare := NewStoreError("task", "delete", "nothing removed", nil)
	assert.Equal(t, "delete operation on task failed: nothing removed", bare.Error())
	assert.Nil(t, bare.Unwrap())

	var target *StoreError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &target))
	assert.Equal(t, "contact", target.Entity)
}
