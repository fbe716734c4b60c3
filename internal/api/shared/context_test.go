package shared

import (
	"context"
	"testing"

	"github.com/phrazzld/studious/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx), "Expected empty trace ID in original context")

	ctxWithTrace := SetTraceID(ctx)
	traceID := GetTraceID(ctxWithTrace)
	assert.Len(t, traceID, 32, "Expected trace ID length to be 32 hex characters (16 bytes)")

	assert.NotEqual(t, traceID, GetTraceID(SetTraceID(ctx)), "trace IDs must be unique")
	assert.Empty(t, GetTraceID(ctx), "Expected original context to remain unchanged")
}

func TestGetTraceIDWithInvalidContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDKey, 123)
	assert.Empty(t, GetTraceID(ctx))
}

func TestGenerateFallbackTraceID(t *testing.T) {
	assert.Len(t, generateFallbackTraceID(), 32)
}

func TestSession(t *testing.T) {
	_, ok := GetSession(context.Background())
	assert.False(t, ok)

	_, ok = GetSession(WithSession(context.Background(), nil))
	assert.False(t, ok)

	claims := &auth.Claims{Username: "user"}
	got, ok := GetSession(WithSession(context.Background(), claims))
	require.True(t, ok)
	assert.Same(t, claims, got)
}
