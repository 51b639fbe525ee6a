package api

import (
	"context"
	"net/http"

	"storefront/models"
)

type orderEnvelope struct {
	Order models.Order `json:"order"`
}

func (c *client) PlaceOrder(ctx context.Context, address models.Address, paymentMethod string) (*models.Order, error) {
	req := map[string]any{"shippingAddress": address, "paymentMethod": paymentMethod}
	out := new(orderEnvelope)
	if err := c.do(ctx, http.MethodPost, c.apipath("orders"), req, out); err != nil {
		return nil, err
	}
	return &out.Order, nil
}

func (c *client) ListOrders(ctx context.Context) ([]models.Order, error) {
	out := new(struct {
		Orders []models.Order `json:"orders"`
	})
	if err := c.do(ctx, http.MethodGet, c.apipath("orders"), nil, out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

func (c *client) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	out := new(orderEnvelope)
	if err := c.do(ctx, http.MethodGet, c.apipath("orders", orderID), nil, out); err != nil {
		return nil, err
	}
	return &out.Order, nil
}
