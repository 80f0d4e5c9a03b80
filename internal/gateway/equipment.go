package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gymtech/dashboard/internal/core/domain"
	"github.com/gymtech/dashboard/internal/core/ports"
)

type EquipmentGroup struct {
	c *Client
}

type equipmentStatusRequest struct {
	Status string `json:"status"`
}

func (g *EquipmentGroup) Status(ctx context.Context) (domain.EquipmentStatus, error) {
	var out domain.EquipmentStatus
	err := g.c.do(ctx, "equipment", http.MethodGet, "/equipment/status", nil, nil, &out)
	return out, err
}

func (g *EquipmentGroup) All(ctx context.Context) ([]domain.EquipmentAsset, error) {
	var out []domain.EquipmentAsset
	err := g.c.do(ctx, "equipment", http.MethodGet, "/employee/equipment", nil, nil, &out)
	return out, err
}

func (g *EquipmentGroup) UpdateStatus(ctx context.Context, id int, status string) (domain.EquipmentAsset, error) {
	var out domain.EquipmentAsset
	err := g.c.do(ctx, "equipment", http.MethodPatch, fmt.Sprintf("/equipment/%d", id), nil, equipmentStatusRequest{Status: status}, &out)
	return out, err
}

func (g *EquipmentGroup) MaintenanceLogs(ctx context.Context) ([]domain.MaintenanceLog, error) {
	var out []domain.MaintenanceLog
	err := g.c.do(ctx, "equipment", http.MethodGet, "/maintenance/logs", nil, nil, &out)
	return out, err
}

func (g *EquipmentGroup) AddMaintenanceLog(ctx context.Context, in ports.AddMaintenanceLogInput) (domain.MaintenanceLog, error) {
	var out domain.MaintenanceLog
	err := g.c.do(ctx, "equipment", http.MethodPost, "/maintenance/logs", nil, in, &out)
	return out, err
}
