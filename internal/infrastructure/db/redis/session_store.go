package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gymtech/dashboard/internal/core/ports"
)

const (
	fieldToken = "token"
	fieldUser  = "user"
)

// SessionStore persists dashboard sessions as Redis hashes.
// Key format: session:<sid>, fields: token (upstream bearer credential) and
// user (serialized session JSON). A record missing either field is treated
// as absent — the both-or-neither invariant lives here as well as in the
// service.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Save(ctx context.Context, sid string, rec ports.SessionRecord, ttl time.Duration) error {
	key := s.key(sid)
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, fieldToken, rec.Token, fieldUser, rec.User)
	if ttl > 0 {
		pipe.Expire(ctx, key, ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, sid string) (ports.SessionRecord, bool, error) {
	vals, err := s.client.HGetAll(ctx, s.key(sid)).Result()
	if err != nil {
		return ports.SessionRecord{}, false, fmt.Errorf("session get: %w", err)
	}
	rec := ports.SessionRecord{Token: vals[fieldToken], User: vals[fieldUser]}
	if rec.Token == "" || rec.User == "" {
		return ports.SessionRecord{}, false, nil
	}
	return rec, true, nil
}

func (s *SessionStore) Delete(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, s.key(sid)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *SessionStore) key(sid string) string {
	return "session:" + sid
}
