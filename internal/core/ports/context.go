package ports

import "context"

type ctxKey int

const sidKey ctxKey = iota

// ContextWithSessionID tags a request context with the dashboard session id
// so that storage-backed lookups (notably the gateway token source) can find
// the current session without touching handler state.
func ContextWithSessionID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, sidKey, sid)
}

// SessionIDFromContext returns the session id set by the session middleware.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	sid, ok := ctx.Value(sidKey).(string)
	return sid, ok && sid != ""
}
