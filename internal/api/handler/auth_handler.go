package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gymtech/dashboard/internal/api/metrics"
	"github.com/gymtech/dashboard/internal/api/middleware"
	"github.com/gymtech/dashboard/internal/core/domain"
	"github.com/gymtech/dashboard/internal/core/ports"
)

type AuthHandler struct {
	sessions ports.SessionService
	ttl      time.Duration
	log      zerolog.Logger
}

func NewAuthHandler(sessions ports.SessionService, ttl time.Duration, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{sessions: sessions, ttl: ttl, log: log}
}

type loginPage struct {
	Username string
	Error    string
}

// ShowLogin renders the sign-in screen. Already signed-in visitors go
// straight to their dashboard.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	if _, ok := middleware.SessionFrom(c); ok {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	return c.Render(http.StatusOK, "login.html", loginPage{})
}

// Login exchanges the submitted credentials upstream and issues the session
// cookie. On any failure nothing is stored and the form is re-rendered with
// the username kept and the password dropped.
func (h *AuthHandler) Login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	_, cookieValue, err := h.sessions.Login(c.Request().Context(), username, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		msg := detailOf(err)
		if errors.Is(err, domain.ErrInvalidCredentials) {
			msg = "Invalid username or password"
		}
		h.log.Warn().Err(err).Str("username", username).Msg("login rejected")
		return c.Render(http.StatusUnauthorized, "login.html", loginPage{Username: username, Error: msg})
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    cookieValue,
		Path:     "/",
		MaxAge:   int(h.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout destroys the server-side session and expires the cookie. Safe to
// call without a session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.CookieName); err == nil && cookie.Value != "" {
		h.sessions.Logout(c.Request().Context(), cookie.Value)
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, "/login")
}
