package gateway

import (
	"context"
	"net/http"

	"github.com/gymtech/dashboard/internal/core/ports"
)

// AuthGroup handles the credential exchange. Login is the only gateway call
// issued without a bearer token.
type AuthGroup struct {
	c *Client
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (g *AuthGroup) Login(ctx context.Context, username, password string) (ports.LoginResult, error) {
	var out ports.LoginResult
	err := g.c.do(ctx, "auth", http.MethodPost, "/login", nil, loginRequest{Username: username, Password: password}, &out)
	return out, err
}
