package core

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

type invocationIDKey struct{}

// WithInvocationID attaches an invocation id to the context.
func WithInvocationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, invocationIDKey{}, id)
}

// InvocationID returns the invocation id if present.
func InvocationID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(invocationIDKey{}).(string)
	return id, ok
}

// EnsureInvocationID ensures an invocation id exists in the context.
func EnsureInvocationID(ctx context.Context) (context.Context, string) {
	if id, ok := InvocationID(ctx); ok {
		return ctx, id
	}
	id := newInvocationID()
	return WithInvocationID(ctx, id), id
}

func newInvocationID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "inv-unknown"
	}
	return "inv-" + hex.EncodeToString(buf)
}
