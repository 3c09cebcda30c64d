package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceID(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))

	ctx := SetTraceID(context.Background())
	first := GetTraceID(ctx)
	assert.Len(t, first, TraceIDLength*2)

	second := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, first, second)

	assert.Equal(t, "abc", GetTraceID(WithTraceID(context.Background(), "abc")))
}
