package gateway

import (
	"context"

	"github.com/gymtech/dashboard/internal/core/ports"
)

// StoreTokenSource resolves the bearer credential for the current request by
// reading the session store keyed by the session id in the context. Because
// it goes to storage rather than handler state, every outgoing call gets the
// token regardless of where in the request lifecycle it is issued.
type StoreTokenSource struct {
	Store ports.SessionStore
}

func (s StoreTokenSource) Token(ctx context.Context) (string, bool) {
	sid, ok := ports.SessionIDFromContext(ctx)
	if !ok {
		return "", false
	}
	rec, ok, err := s.Store.Get(ctx, sid)
	if err != nil || !ok || rec.Token == "" {
		return "", false
	}
	return rec.Token, true
}
