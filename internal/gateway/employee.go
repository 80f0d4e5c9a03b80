package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gymtech/dashboard/internal/core/domain"
	"github.com/gymtech/dashboard/internal/core/ports"
)

type EmployeeGroup struct {
	c *Client
}

func (g *EmployeeGroup) Profile(ctx context.Context, id int) (domain.Employee, error) {
	var out domain.Employee
	err := g.c.do(ctx, "employee", http.MethodGet, fmt.Sprintf("/employee/%d/profile", id), nil, nil, &out)
	return out, err
}

func (g *EmployeeGroup) AddMember(ctx context.Context, in ports.AddMemberInput) (domain.Member, error) {
	var out domain.Member
	err := g.c.do(ctx, "employee", http.MethodPost, "/employee/add-member", nil, in, &out)
	return out, err
}

func (g *EmployeeGroup) AllMembers(ctx context.Context) ([]domain.Member, error) {
	var out []domain.Member
	err := g.c.do(ctx, "employee", http.MethodGet, "/members/all", nil, nil, &out)
	return out, err
}

func (g *EmployeeGroup) LogActivity(ctx context.Context, in ports.LogActivityInput) error {
	return g.c.do(ctx, "employee", http.MethodPost, "/employee/log-activity", nil, in, nil)
}

func (g *EmployeeGroup) All(ctx context.Context) ([]domain.Employee, error) {
	var out []domain.Employee
	err := g.c.do(ctx, "employee", http.MethodGet, "/api/employees", nil, nil, &out)
	return out, err
}

func (g *EmployeeGroup) Update(ctx context.Context, id int, in ports.UpdateEmployeeInput) (domain.Employee, error) {
	var out domain.Employee
	err := g.c.do(ctx, "employee", http.MethodPatch, fmt.Sprintf("/api/employees/%d", id), nil, in, &out)
	return out, err
}

func (g *EmployeeGroup) Suppliers(ctx context.Context) ([]domain.Supplier, error) {
	var out []domain.Supplier
	err := g.c.do(ctx, "employee", http.MethodGet, "/suppliers", nil, nil, &out)
	return out, err
}
