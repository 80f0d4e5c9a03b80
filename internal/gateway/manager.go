package gateway

import (
	"context"
	"net/http"

	"github.com/gymtech/dashboard/internal/core/domain"
)

type ManagerGroup struct {
	c *Client
}

func (g *ManagerGroup) Analytics(ctx context.Context) (domain.Analytics, error) {
	var out domain.Analytics
	err := g.c.do(ctx, "manager", http.MethodGet, "/manager/analytics", nil, nil, &out)
	return out, err
}

func (g *ManagerGroup) Staff(ctx context.Context) ([]domain.Employee, error) {
	var out []domain.Employee
	err := g.c.do(ctx, "manager", http.MethodGet, "/manager/staff", nil, nil, &out)
	return out, err
}

type SubscriptionGroup struct {
	c *Client
}

func (g *SubscriptionGroup) Plans(ctx context.Context) ([]domain.SubscriptionPlan, error) {
	var out []domain.SubscriptionPlan
	err := g.c.do(ctx, "subscription", http.MethodGet, "/plans", nil, nil, &out)
	return out, err
}
