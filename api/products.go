package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"storefront/models"
)

func (c *client) ListProducts(ctx context.Context, query models.ProductQuery) (*models.ProductPage, error) {
	q := url.Values{}
	if query.Search != "" {
		q.Set("search", query.Search)
	}
	if query.Category != "" {
		q.Set("category", query.Category)
	}
	if query.Page > 0 {
		q.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		q.Set("limit", strconv.Itoa(query.Limit))
	}

	path := c.apipath("products")
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	out := new(models.ProductPage)
	if err := c.do(ctx, http.MethodGet, path, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	out := new(struct {
		Product models.Product `json:"product"`
	})
	if err := c.do(ctx, http.MethodGet, c.apipath("products", productID), nil, out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}
