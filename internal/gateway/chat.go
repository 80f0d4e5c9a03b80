package gateway

import (
	"context"
	"net/http"

	"github.com/gymtech/dashboard/internal/core/ports"
)

// ChatGroup forwards conversational turns to the upstream assistant. The
// session_id is a client-generated correlation value included verbatim so
// the backend can thread a multi-turn conversation; the dashboard never
// interprets it.
type ChatGroup struct {
	c *Client
}

type chatResponse struct {
	Answer string `json:"answer"`
}

func (g *ChatGroup) Send(ctx context.Context, in ports.ChatInput) (string, error) {
	var out chatResponse
	if err := g.c.do(ctx, "chat", http.MethodPost, "/api/chat", nil, in, &out); err != nil {
		return "", err
	}
	return out.Answer, nil
}
