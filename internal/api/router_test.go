package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gymtech/dashboard/internal/core/domain"
	"github.com/gymtech/dashboard/internal/core/ports"
	"github.com/gymtech/dashboard/internal/core/service"
	"github.com/gymtech/dashboard/internal/gateway"
)

type memSessionStore struct {
	mu   sync.Mutex
	recs map[string]ports.SessionRecord
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{recs: make(map[string]ports.SessionRecord)}
}

func (m *memSessionStore) Save(_ context.Context, sid string, rec ports.SessionRecord, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs[sid] = rec
	return nil
}

func (m *memSessionStore) Get(_ context.Context, sid string) (ports.SessionRecord, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.recs[sid]
	if !ok || rec.Token == "" || rec.User == "" {
		return ports.SessionRecord{}, false, nil
	}
	return rec, true, nil
}

func (m *memSessionStore) Delete(_ context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.recs, sid)
	return nil
}

type memChatStore struct{}

func (m *memChatStore) List(_ context.Context, role domain.Role, id int) ([]domain.ChatMessage, error) {
	return nil, nil
}

func (m *memChatStore) Append(_ context.Context, role domain.Role, id int, msgs ...domain.ChatMessage) error {
	return nil
}

// upstreamStub fakes the gym API for the routes the walkthrough touches.
func upstreamStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "password" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"invalid credentials"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "upstream-token",
			"user":         map[string]any{"id": 3, "name": "Sam Lee", "role": "Employee"},
		})
	})
	mux.HandleFunc("GET /employee/equipment", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer upstream-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"missing token"}`))
			return
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"asset_id": 1, "asset_name": "Treadmill Alpha", "purchase_date": "2024-01-15", "status": "Operational"},
		})
	})
	return httptest.NewServer(mux)
}

func TestRouter_RoleGatedNavigation(t *testing.T) {
	upstream := upstreamStub(t)
	defer upstream.Close()

	store := newMemSessionStore()
	tokens := &gateway.StoreTokenSource{Store: store}
	gw := gateway.New(upstream.URL, 5*time.Second, tokens, zerolog.Nop())
	sessions := service.NewSessionService(gw.Auth, store, "test-secret", time.Hour, zerolog.Nop())

	e, err := NewRouter(Deps{
		Sessions:   sessions,
		Gateway:    gw,
		Chats:      &memChatStore{},
		Redis:      redis.NewClient(&redis.Options{}),
		SessionTTL: time.Hour,
		Log:        zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("router: %v", err)
	}
	srv := httptest.NewServer(e)
	defer srv.Close()

	client := srv.Client()
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	// Anonymous visitors bounce to the login screen.
	resp, err := client.Get(srv.URL + "/dashboard")
	if err != nil {
		t.Fatalf("get dashboard: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/login" {
		t.Fatalf("expected anonymous redirect to /login, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	// The JSON surface answers anonymous callers with a 401 envelope, not a
	// redirect.
	resp, err = client.Post(srv.URL+"/api/chat", "application/json", strings.NewReader(`{"message":"hi","session_id":"sess_x"}`))
	if err != nil {
		t.Fatalf("post chat: %v", err)
	}
	chatBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read chat body: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 from /api/chat, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(chatBody), `"error":"authentication required"`) {
		t.Fatalf("expected error envelope, got %s", chatBody)
	}

	// Sign in as an employee.
	form := strings.NewReader("username=trainer1&password=password")
	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/login", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("post login: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected login redirect, got %d", resp.StatusCode)
	}
	var sessionCookie *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "gymdash_session" {
			sessionCookie = cookie
		}
	}
	if sessionCookie == nil {
		t.Fatalf("session cookie not issued")
	}

	// Manager-only screens are off limits for an employee.
	req, _ = http.NewRequest(http.MethodGet, srv.URL+"/manager/staff", nil)
	req.AddCookie(sessionCookie)
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("get staff: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/login" {
		t.Fatalf("expected role denial redirect, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	// The employee's own screens render, with the bearer token attached on
	// the upstream call.
	req, _ = http.NewRequest(http.MethodGet, srv.URL+"/employee/equipment", nil)
	req.AddCookie(sessionCookie)
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("get equipment: %v", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "Treadmill Alpha") {
		t.Fatalf("equipment page missing upstream data")
	}
}
