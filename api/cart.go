package api

import (
	"context"
	"net/http"

	"storefront/models"
)

// cartEnvelope wraps every cart endpoint response. Message is only populated
// by the coupon endpoints.
type cartEnvelope struct {
	Cart    models.Cart `json:"cart"`
	Message string      `json:"message,omitempty"`
}

func (c *client) GetCart(ctx context.Context) (*models.Cart, error) {
	out := new(cartEnvelope)
	if err := c.do(ctx, http.MethodGet, c.apipath("cart"), nil, out); err != nil {
		return nil, err
	}
	return &out.Cart, nil
}

func (c *client) AddToCart(ctx context.Context, productID string, quantity int) (*models.Cart, error) {
	req := map[string]any{"productId": productID, "quantity": quantity}
	out := new(cartEnvelope)
	if err := c.do(ctx, http.MethodPost, c.apipath("cart", "add"), req, out); err != nil {
		return nil, err
	}
	return &out.Cart, nil
}

func (c *client) UpdateCartItem(ctx context.Context, productID string, quantity int) (*models.Cart, error) {
	req := map[string]any{"productId": productID, "quantity": quantity}
	out := new(cartEnvelope)
	if err := c.do(ctx, http.MethodPut, c.apipath("cart", "update"), req, out); err != nil {
		return nil, err
	}
	return &out.Cart, nil
}

func (c *client) RemoveCartItem(ctx context.Context, productID string) (*models.Cart, error) {
	out := new(cartEnvelope)
	if err := c.do(ctx, http.MethodDelete, c.apipath("cart", "remove", productID), nil, out); err != nil {
		return nil, err
	}
	return &out.Cart, nil
}

func (c *client) ClearCart(ctx context.Context) (*models.Cart, error) {
	out := new(cartEnvelope)
	if err := c.do(ctx, http.MethodDelete, c.apipath("cart", "clear"), nil, out); err != nil {
		return nil, err
	}
	return &out.Cart, nil
}

// ApplyCoupon returns the updated cart plus the backend's confirmation
// message for display.
func (c *client) ApplyCoupon(ctx context.Context, code string) (*models.Cart, string, error) {
	req := map[string]string{"code": code}
	out := new(cartEnvelope)
	if err := c.do(ctx, http.MethodPost, c.apipath("cart", "apply-coupon"), req, out); err != nil {
		return nil, "", err
	}
	return &out.Cart, out.Message, nil
}

func (c *client) RemoveCoupon(ctx context.Context) (*models.Cart, error) {
	out := new(cartEnvelope)
	if err := c.do(ctx, http.MethodDelete, c.apipath("cart", "remove-coupon"), nil, out); err != nil {
		return nil, err
	}
	return &out.Cart, nil
}
