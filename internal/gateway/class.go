package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gymtech/dashboard/internal/core/domain"
	"github.com/gymtech/dashboard/internal/core/ports"
)

type ClassGroup struct {
	c *Client
}

func (g *ClassGroup) Available(ctx context.Context) ([]domain.Class, error) {
	var out []domain.Class
	err := g.c.do(ctx, "class", http.MethodGet, "/classes/available", nil, nil, &out)
	return out, err
}

func (g *ClassGroup) All(ctx context.Context) ([]domain.Class, error) {
	var out []domain.Class
	err := g.c.do(ctx, "class", http.MethodGet, "/classes/all", nil, nil, &out)
	return out, err
}

func (g *ClassGroup) Create(ctx context.Context, in ports.CreateClassInput) (domain.Class, error) {
	var out domain.Class
	err := g.c.do(ctx, "class", http.MethodPost, "/api/classes", nil, in, &out)
	return out, err
}

func (g *ClassGroup) TrainerSchedule(ctx context.Context, trainerID int) ([]domain.Class, error) {
	var out []domain.Class
	err := g.c.do(ctx, "class", http.MethodGet, fmt.Sprintf("/employee/%d/classes", trainerID), nil, nil, &out)
	return out, err
}

func (g *ClassGroup) Attendees(ctx context.Context, scheduleID int) ([]domain.Attendee, error) {
	var out []domain.Attendee
	err := g.c.do(ctx, "class", http.MethodGet, fmt.Sprintf("/classes/%d/attendees", scheduleID), nil, nil, &out)
	return out, err
}
