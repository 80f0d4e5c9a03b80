package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gymtech/dashboard/internal/core/domain"
	"github.com/gymtech/dashboard/internal/core/ports"
)

type stubSessionService struct {
	sess domain.Session
	sid  string
	ok   bool
}

func (s *stubSessionService) Login(context.Context, string, string) (domain.Session, string, error) {
	return domain.Session{}, "", nil
}

func (s *stubSessionService) Restore(_ context.Context, cookie string) (domain.Session, string, bool) {
	return s.sess, s.sid, s.ok
}

func (s *stubSessionService) Logout(context.Context, string) {}

func TestSession_RestoresFromCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "signed"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	svc := &stubSessionService{
		sess: domain.Session{ID: 7, Name: "Jane Doe", Role: domain.RoleMember},
		sid:  "sid-1",
		ok:   true,
	}

	handler := Session(svc)(func(c echo.Context) error {
		sess, ok := SessionFrom(c)
		if !ok {
			t.Fatalf("session not set")
		}
		if sess.ID != 7 || sess.Role != domain.RoleMember {
			t.Fatalf("unexpected session: %+v", sess)
		}
		sid, ok := ports.SessionIDFromContext(c.Request().Context())
		if !ok || sid != "sid-1" {
			t.Fatalf("sid not propagated to request context, got %q", sid)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestSession_AnonymousPassesThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Session(&stubSessionService{})(func(c echo.Context) error {
		called = true
		if _, ok := SessionFrom(c); ok {
			t.Fatalf("session should not be set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestSession_UnrecoverableCookiePassesThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "forged"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(&stubSessionService{ok: false})(func(c echo.Context) error {
		if _, ok := SessionFrom(c); ok {
			t.Fatalf("session should not be set for a bad cookie")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
