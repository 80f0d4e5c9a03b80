package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/gymtech/dashboard/internal/core/domain"
	"github.com/gymtech/dashboard/internal/core/ports"
)

// CookieName is the session cookie issued at login.
const CookieName = "gymdash_session"

const (
	ctxSession = "session"
	ctxSID     = "sid"
)

// Session restores the session from the request cookie and injects it into
// context. It never blocks a request: anonymous or unrecoverable sessions
// simply pass through without a session set, and the guards decide.
func Session(svc ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			sess, sid, ok := svc.Restore(c.Request().Context(), cookie.Value)
			if !ok {
				return next(c)
			}

			c.Set(ctxSession, sess)
			c.Set(ctxSID, sid)
			req := c.Request()
			c.SetRequest(req.WithContext(ports.ContextWithSessionID(req.Context(), sid)))

			return next(c)
		}
	}
}

// SessionFrom returns the restored session, if any.
func SessionFrom(c echo.Context) (domain.Session, bool) {
	sess, ok := c.Get(ctxSession).(domain.Session)
	return sess, ok
}

// SetSession is a test hook for handler tests that bypass the middleware.
func SetSession(c echo.Context, sess domain.Session, sid string) {
	c.Set(ctxSession, sess)
	c.Set(ctxSID, sid)
	req := c.Request()
	c.SetRequest(req.WithContext(ports.ContextWithSessionID(req.Context(), sid)))
}
