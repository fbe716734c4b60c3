package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/phrazzld/studious/internal/service/auth"
)

// ContextKey is the type of request-scoped values set by the API layer.
type ContextKey string

// Context keys for various values
const (
	// SessionContextKey is the context key for the authenticated session claims
	SessionContextKey ContextKey = "session"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of bytes used to generate the trace ID
	TraceIDLength = 16 // 32 hex characters
)

// SetTraceID adds a fresh trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// WithSession returns a copy of ctx carrying the session claims.
func WithSession(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, SessionContextKey, claims)
}

// GetSession returns the session claims stored by the auth middleware.
func GetSession(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(SessionContextKey).(*auth.Claims)
	return claims, ok && claims != nil
}

// generateTraceID creates a random 32-character hex trace ID. If crypto/rand
// fails it falls back to a time-based ID rather than a static value.
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	n, err := rand.Read(b)
	if err != nil || n != TraceIDLength {
		slog.Error("failed to generate secure random trace ID",
			"error", err,
			"bytes_read", n,
			"fallback", "time-based generation")
		return generateFallbackTraceID()
	}

	return hex.EncodeToString(b)
}

func generateFallbackTraceID() string {
	fallbackID := make([]byte, TraceIDLength)
	now := time.Now()
	binary.BigEndian.PutUint64(fallbackID[:8], uint64(now.UnixNano()))
	binary.BigEndian.PutUint64(fallbackID[8:], uint64(now.Nanosecond())<<32|uint64(now.Unix()&0xffffffff))
	return hex.EncodeToString(fallbackID)
}
