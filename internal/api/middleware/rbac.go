package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gymtech/dashboard/internal/core/domain"
)

// RequireRole guards an HTML page behind a set of roles. Anonymous visitors
// and wrong-role sessions are both bounced to the login screen rather than
// shown an error page.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := SessionFrom(c)
			if !ok {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			if _, ok := allowed[sess.Role]; !ok {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			return next(c)
		}
	}
}

// RequireSession guards an HTML page that any signed-in role may see.
func RequireSession() echo.MiddlewareFunc {
	return RequireRole(domain.RoleMember, domain.RoleEmployee, domain.RoleManager)
}

// RequireSessionJSON guards a JSON endpoint: unauthenticated callers get a
// 401 envelope (via the central error handler) instead of a redirect.
func RequireSessionJSON() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := SessionFrom(c); !ok {
				return domain.ErrUnauthenticated
			}
			return next(c)
		}
	}
}
