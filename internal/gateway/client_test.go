package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/gymtech/dashboard/internal/core/ports"
)

func testClient(t *testing.T, handler http.HandlerFunc, tokens TokenSource) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, tokens, zerolog.Nop()), srv
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]any{})
	}, StaticToken("tok-123"))

	if _, err := c.Class.Available(context.Background()); err != nil {
		t.Fatalf("Available returned error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var hasAuth bool
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		_ = json.NewEncoder(w).Encode(ports.LoginResult{AccessToken: "t"})
	}, NoToken{})

	if _, err := c.Auth.Login(context.Background(), "member1", "password"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if hasAuth {
		t.Fatalf("login must not carry an Authorization header")
	}
}

func TestClient_NormalizesDetailError(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"detail":"class is full"}`))
	}, NoToken{})

	err := c.Booking.Create(context.Background(), 1, 2)
	if err == nil {
		t.Fatalf("expected error")
	}
	ae, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if ae.Status != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", ae.Status)
	}
	if ae.Detail != "class is full" {
		t.Fatalf("expected upstream detail verbatim, got %q", ae.Detail)
	}
}

func TestClient_FallsBackToStatusText(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("not json at all"))
	}, NoToken{})

	_, err := c.Inventory.All(context.Background())
	ae, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if ae.Detail != http.StatusText(http.StatusBadGateway) {
		t.Fatalf("expected status text fallback, got %q", ae.Detail)
	}
}

func TestClient_TransportFailureIsNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL, time.Second, NoToken{}, zerolog.Nop())
	_, err := c.Employee.Suppliers(context.Background())
	ae, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if ae.Status != 0 {
		t.Fatalf("transport failures carry no status, got %d", ae.Status)
	}
	if ae.Detail == "" {
		t.Fatalf("expected a transport message")
	}
}

func TestClient_NoRetries(t *testing.T) {
	calls := 0
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"boom"}`))
	}, NoToken{})

	_, _ = c.Manager.Analytics(context.Background())
	if calls != 1 {
		t.Fatalf("expected exactly one attempt, got %d", calls)
	}
}

func TestChat_SessionIDPassthrough(t *testing.T) {
	var got ports.ChatInput
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"answer":"**hi**"}`))
	}, StaticToken("tok"))

	in := ports.ChatInput{Message: "hello", UserID: 7, Role: "Member", SessionID: "sess_abc123"}
	answer, err := c.Chat.Send(context.Background(), in)
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if answer != "**hi**" {
		t.Fatalf("unexpected answer %q", answer)
	}
	if got.SessionID != "sess_abc123" {
		t.Fatalf("session id must pass through verbatim, got %q", got.SessionID)
	}
	if got.UserID != 7 || got.Role != "Member" {
		t.Fatalf("unexpected chat payload: %+v", got)
	}
}

func TestBooking_AttendanceQueryParam(t *testing.T) {
	var gotQuery string
	var gotMethod string
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotMethod = r.Method
	}, StaticToken("tok"))

	if err := c.Booking.MarkAttendance(context.Background(), 42, true); err != nil {
		t.Fatalf("MarkAttendance returned error: %v", err)
	}
	if gotMethod != http.MethodPatch {
		t.Fatalf("expected PATCH, got %s", gotMethod)
	}
	if gotQuery != "attended=true" {
		t.Fatalf("expected attended flag in query, got %q", gotQuery)
	}
}
