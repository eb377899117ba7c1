package formguard

import "context"

// ContextKey is a key for context values.
// It should be created as a package-level variable.
type ContextKey struct{ name string }

// NewContextKey creates a new context key.
//
// Example:
//
//	var tenantKey = formguard.NewContextKey("tenant")
func NewContextKey(name string) *ContextKey {
	return &ContextKey{name}
}

func (k *ContextKey) String() string {
	return "formguard context key " + k.name
}

// RequestIDKey holds the request ID attached to diagnostic log records.
var RequestIDKey = NewContextKey("request_id")

// WithRequestID stores id in ctx. Diagnostics reported by a Guard while
// validating with that context carry it as the "request_id" attribute.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the request ID stored by WithRequestID.
func RequestID(ctx context.Context) string {
	return ContextValue[string](ctx, RequestIDKey)
}

// ContextValue retrieves a typed value from the context.
// Returns the zero value of T if the key is not present or has a different type.
func ContextValue[T any](ctx context.Context, key any) T {
	val, _ := ctx.Value(key).(T)
	return val
}
