package ports

import (
	"context"
	"time"

	"github.com/gymtech/dashboard/internal/core/domain"
)

// SessionRecord is the persisted shape of one dashboard session. Token is
// the upstream bearer credential; User is the serialized Session JSON. Both
// must be present for the record to count as logged in.
type SessionRecord struct {
	Token string
	User  string
}

// SessionStore persists session records keyed by an opaque session id.
type SessionStore interface {
	Save(ctx context.Context, sid string, rec SessionRecord, ttl time.Duration) error
	// Get returns the record and whether a complete one exists.
	Get(ctx context.Context, sid string) (SessionRecord, bool, error)
	// Delete removes the record. Deleting an absent record is a no-op.
	Delete(ctx context.Context, sid string) error
}

// ChatHistoryStore persists ordered chat transcripts, one per role+id pair.
// Histories for the same numeric id under different roles never mix.
type ChatHistoryStore interface {
	List(ctx context.Context, role domain.Role, userID int) ([]domain.ChatMessage, error)
	Append(ctx context.Context, role domain.Role, userID int, msgs ...domain.ChatMessage) error
}

// SessionService is the session lifecycle consumed by the HTTP layer.
type SessionService interface {
	// Login exchanges credentials upstream and returns the session plus the
	// signed cookie value. State is left unchanged on failure.
	Login(ctx context.Context, username, password string) (domain.Session, string, error)
	// Restore rehydrates a session from a cookie value. Corrupt or partial
	// persisted data yields ok=false and clears the stored record; Restore
	// never returns an error to the caller for bad data.
	Restore(ctx context.Context, cookie string) (sess domain.Session, sid string, ok bool)
	// Logout destroys the persisted session. Idempotent.
	Logout(ctx context.Context, cookie string)
}
