package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gymtech/dashboard/internal/core/domain"
	"github.com/gymtech/dashboard/internal/core/ports"
)

// SessionService owns the session lifecycle: login delegates the credential
// exchange to the gym API, restore rehydrates from the session store, logout
// destroys the persisted record. The browser only ever holds a signed cookie
// carrying the session id; the upstream bearer token never leaves the store.
type SessionService struct {
	auth   ports.AuthAPI
	store  ports.SessionStore
	secret []byte
	ttl    time.Duration
	log    zerolog.Logger
}

func NewSessionService(auth ports.AuthAPI, store ports.SessionStore, secret string, ttl time.Duration, log zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{auth: auth, store: store, secret: []byte(secret), ttl: ttl, log: log}
}

// Login exchanges credentials upstream and persists the resulting session.
// Fail-closed: on any failure nothing is persisted and the error propagates.
func (s *SessionService) Login(ctx context.Context, username, password string) (domain.Session, string, error) {
	if username == "" || password == "" {
		return domain.Session{}, "", domain.ErrInvalidCredentials
	}

	result, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return domain.Session{}, "", err
	}
	if result.AccessToken == "" {
		return domain.Session{}, "", domain.ErrInvalidCredentials
	}

	userJSON, err := json.Marshal(result.User)
	if err != nil {
		return domain.Session{}, "", err
	}

	sid := uuid.NewString()
	rec := ports.SessionRecord{Token: result.AccessToken, User: string(userJSON)}
	if err := s.store.Save(ctx, sid, rec, s.ttl); err != nil {
		return domain.Session{}, "", err
	}

	cookie, err := s.signCookie(sid)
	if err != nil {
		_ = s.store.Delete(ctx, sid)
		return domain.Session{}, "", err
	}

	s.log.Info().Int("user_id", result.User.ID).Str("role", result.User.Role.String()).Msg("session created")
	return result.User, cookie, nil
}

// Restore rehydrates a session from the signed cookie. Any defect — bad
// signature, missing record, partial record, corrupt user JSON — clears the
// stored state and yields logged-out. It never surfaces an error for bad
// data.
func (s *SessionService) Restore(ctx context.Context, cookie string) (domain.Session, string, bool) {
	sid, err := s.parseCookie(cookie)
	if err != nil {
		return domain.Session{}, "", false
	}

	rec, ok, err := s.store.Get(ctx, sid)
	if err != nil {
		s.log.Warn().Err(err).Msg("session store read failed")
		return domain.Session{}, "", false
	}
	// Both-or-neither: a user record without a token (or vice versa) is the
	// logged-out state.
	if !ok || rec.Token == "" || rec.User == "" {
		_ = s.store.Delete(ctx, sid)
		return domain.Session{}, "", false
	}

	var sess domain.Session
	if err := json.Unmarshal([]byte(rec.User), &sess); err != nil {
		s.log.Warn().Err(err).Msg("corrupt persisted session, forcing logout")
		_ = s.store.Delete(ctx, sid)
		return domain.Session{}, "", false
	}

	return sess, sid, true
}

// Logout destroys the persisted session. Calling it with no live session is
// a no-op.
func (s *SessionService) Logout(ctx context.Context, cookie string) {
	sid, err := s.parseCookie(cookie)
	if err != nil {
		return
	}
	if err := s.store.Delete(ctx, sid); err != nil {
		s.log.Warn().Err(err).Msg("session delete failed")
	}
}

func (s *SessionService) signCookie(sid string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *SessionService) parseCookie(cookie string) (string, error) {
	if cookie == "" {
		return "", domain.ErrSessionNotFound
	}
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(cookie, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrSessionNotFound
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", domain.ErrSessionNotFound
	}
	return sid, nil
}
