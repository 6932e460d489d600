package telemetry

import "context"

// taskIDKey is the context key type used to store a task ID.
type taskIDKey struct{}

// WithTaskID returns a child context that carries the provided task ID.
// If ctx is nil, context.Background() is used.
func WithTaskID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, taskIDKey{}, id)
}

// TaskIDFromContext returns the task ID from ctx, if present.
// Returns "", false if the value is missing or not a non-empty string.
func TaskIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	v := ctx.Value(taskIDKey{})
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
