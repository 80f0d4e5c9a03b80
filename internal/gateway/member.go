package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gymtech/dashboard/internal/core/domain"
	"github.com/gymtech/dashboard/internal/core/ports"
)

type MemberGroup struct {
	c *Client
}

func (g *MemberGroup) Profile(ctx context.Context, id int) (domain.Member, error) {
	var out domain.Member
	err := g.c.do(ctx, "member", http.MethodGet, fmt.Sprintf("/member/%d/profile", id), nil, nil, &out)
	return out, err
}

func (g *MemberGroup) UpdateProfile(ctx context.Context, id int, in ports.ProfileUpdateInput) error {
	return g.c.do(ctx, "member", http.MethodPut, fmt.Sprintf("/member/%d/profile", id), nil, in, nil)
}

func (g *MemberGroup) ActivityLogs(ctx context.Context, id int) ([]domain.ActivityLog, error) {
	var out []domain.ActivityLog
	err := g.c.do(ctx, "member", http.MethodGet, fmt.Sprintf("/member/%d/calendar", id), nil, nil, &out)
	return out, err
}

func (g *MemberGroup) Subscriptions(ctx context.Context, id int) ([]domain.Enrollment, error) {
	var out []domain.Enrollment
	err := g.c.do(ctx, "member", http.MethodGet, fmt.Sprintf("/member/%d/subscriptions", id), nil, nil, &out)
	return out, err
}

func (g *MemberGroup) Purchases(ctx context.Context, id int) ([]domain.Purchase, error) {
	var out []domain.Purchase
	err := g.c.do(ctx, "member", http.MethodGet, fmt.Sprintf("/member/%d/purchases", id), nil, nil, &out)
	return out, err
}
