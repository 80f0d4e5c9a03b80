package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gymtech/dashboard/internal/api/view"
	"github.com/gymtech/dashboard/internal/core/domain"
	"github.com/gymtech/dashboard/internal/core/ports"
)

// chatCookieName pins one assistant conversation per browser. The id is
// opaque to the dashboard and forwarded to the upstream assistant verbatim.
const chatCookieName = "gymdash_chat"

// Pages carries the plumbing every HTML page handler shares: the chat
// transcript store feeding the assistant widget and the logger.
type Pages struct {
	chats ports.ChatHistoryStore
	log   zerolog.Logger
}

func NewPages(chats ports.ChatHistoryStore, log zerolog.Logger) *Pages {
	return &Pages{chats: chats, log: log}
}

// render wraps a page-specific view model in the layout envelope. A failed
// transcript load degrades to an empty widget instead of failing the page.
func (p *Pages) render(c echo.Context, status int, tmpl, title string, sess domain.Session, content any, pageErr string) error {
	data := view.Data{
		Title:         title,
		Path:          c.Request().URL.Path,
		Session:       &sess,
		Menu:          view.Menu(sess.Role),
		Error:         pageErr,
		Flash:         c.QueryParam("flash"),
		ChatSessionID: p.chatSessionID(c),
		Content:       content,
	}
	if p.chats != nil {
		history, err := p.chats.List(c.Request().Context(), sess.Role, sess.ID)
		if err != nil {
			p.log.Warn().Err(err).Int("user_id", sess.ID).Msg("chat history unavailable")
		} else {
			data.ChatHistory = history
		}
	}
	return c.Render(status, tmpl, data)
}

func (p *Pages) chatSessionID(c echo.Context) string {
	if cookie, err := c.Cookie(chatCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	id := "sess_" + uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     chatCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
