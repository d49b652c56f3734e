package idempotency

import "context"

type contextKey string

const contextKeyIdempotency contextKey = "idempotencyKey"

// WithKey stores the idempotency key on the context.
func WithKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, contextKeyIdempotency, key)
}

// FromContext returns the idempotency key previously stored with
// WithKey. The second return value is false when no non-empty key is
// present.
func FromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(contextKeyIdempotency).(string)

	return key, ok && key != ""
}
