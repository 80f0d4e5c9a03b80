package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gymtech/dashboard/internal/api/view"
	"github.com/gymtech/dashboard/internal/core/domain"
)

type stubSessions struct {
	sess       domain.Session
	cookie     string
	loginErr   error
	logoutSeen string
}

func (s *stubSessions) Login(_ context.Context, username, password string) (domain.Session, string, error) {
	if s.loginErr != nil {
		return domain.Session{}, "", s.loginErr
	}
	return s.sess, s.cookie, nil
}

func (s *stubSessions) Restore(context.Context, string) (domain.Session, string, bool) {
	return domain.Session{}, "", false
}

func (s *stubSessions) Logout(_ context.Context, cookie string) {
	s.logoutSeen = cookie
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	renderer, err := view.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e.Renderer = renderer
	e.Validator = NewValidator()
	return e
}

func postForm(e *echo.Echo, path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLogin_SuccessSetsCookieAndRedirects(t *testing.T) {
	e := newTestEcho(t)
	sessions := &stubSessions{
		sess:   domain.Session{ID: 1, Name: "Jane Doe", Role: domain.RoleMember},
		cookie: "signed-cookie",
	}
	h := NewAuthHandler(sessions, 24*time.Hour, zerolog.Nop())

	c, rec := postForm(e, "/login", url.Values{"username": {"member1"}, "password": {"password"}})
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", loc)
	}

	var found bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "gymdash_session" {
			found = true
			if cookie.Value != "signed-cookie" {
				t.Fatalf("unexpected cookie value %q", cookie.Value)
			}
			if !cookie.HttpOnly {
				t.Fatalf("session cookie must be http-only")
			}
		}
	}
	if !found {
		t.Fatalf("session cookie not set")
	}
}

func TestLogin_FailureRerendersWithoutCookie(t *testing.T) {
	e := newTestEcho(t)
	sessions := &stubSessions{loginErr: domain.ErrInvalidCredentials}
	h := NewAuthHandler(sessions, 24*time.Hour, zerolog.Nop())

	c, rec := postForm(e, "/login", url.Values{"username": {"member1"}, "password": {"wrong"}})
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Invalid username or password") {
		t.Fatalf("error message missing from body")
	}
	if !strings.Contains(body, `value="member1"`) {
		t.Fatalf("username should be kept in the form")
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("no cookie should be set on failure")
	}
}

func TestLogout_ClearsCookieAndRedirects(t *testing.T) {
	e := newTestEcho(t)
	sessions := &stubSessions{}
	h := NewAuthHandler(sessions, 24*time.Hour, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "gymdash_session", Value: "signed-cookie"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if sessions.logoutSeen != "signed-cookie" {
		t.Fatalf("logout did not reach the session service")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	var cleared bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "gymdash_session" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("session cookie not expired")
	}
}

func TestLogout_WithoutSessionIsIdempotent(t *testing.T) {
	e := newTestEcho(t)
	h := NewAuthHandler(&stubSessions{}, 24*time.Hour, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
}
