package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gymtech/dashboard/internal/core/domain"
	"github.com/gymtech/dashboard/internal/core/ports"
)

type InventoryGroup struct {
	c *Client
}

type purchaseRequest struct {
	MemberID int `json:"member_id"`
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

func (g *InventoryGroup) All(ctx context.Context) ([]domain.InventoryItem, error) {
	var out []domain.InventoryItem
	err := g.c.do(ctx, "inventory", http.MethodGet, "/inventory/all", nil, nil, &out)
	return out, err
}

func (g *InventoryGroup) Update(ctx context.Context, id int, in ports.InventoryUpdateInput) (domain.InventoryItem, error) {
	var out domain.InventoryItem
	err := g.c.do(ctx, "inventory", http.MethodPatch, fmt.Sprintf("/inventory/%d", id), nil, in, &out)
	return out, err
}

func (g *InventoryGroup) Purchase(ctx context.Context, memberID, itemID, quantity int) (domain.Purchase, error) {
	var out domain.Purchase
	err := g.c.do(ctx, "inventory", http.MethodPost, "/member/purchase", nil, purchaseRequest{MemberID: memberID, ItemID: itemID, Quantity: quantity}, &out)
	return out, err
}
