package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"storefront/models"
)

// TokenSource supplies the bearer token for outgoing requests. Implemented by
// the auth session; Invalidate is called when the backend answers 401 so the
// stored token is dropped without the client reaching into session state.
type TokenSource interface {
	Token() string
	Invalidate()
}

// Client is the full REST surface the storefront consumes. The backend owns
// all business logic; every method is a thin, typed call.
type Client interface {
	// Registration
	RegisterInit(ctx context.Context, req models.RegisterInitRequest) (*models.RegisterInitResponse, error)
	VerifyEmailOTP(ctx context.Context, registrationID, otp string) (*models.VerifyEmailResponse, error)
	ResendEmailOTP(ctx context.Context, registrationID string) error
	VerifyPhoneOTP(ctx context.Context, registrationID, otp string) (*models.AuthResponse, error)
	ResendPhoneOTP(ctx context.Context, registrationID string) error

	// Authentication
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Logout(ctx context.Context) error

	// Cart
	GetCart(ctx context.Context) (*models.Cart, error)
	AddToCart(ctx context.Context, productID string, quantity int) (*models.Cart, error)
	UpdateCartItem(ctx context.Context, productID string, quantity int) (*models.Cart, error)
	RemoveCartItem(ctx context.Context, productID string) (*models.Cart, error)
	ClearCart(ctx context.Context) (*models.Cart, error)
	ApplyCoupon(ctx context.Context, code string) (*models.Cart, string, error)
	RemoveCoupon(ctx context.Context) (*models.Cart, error)

	// Catalog
	ListProducts(ctx context.Context, query models.ProductQuery) (*models.ProductPage, error)
	GetProduct(ctx context.Context, productID string) (*models.Product, error)

	// Orders
	PlaceOrder(ctx context.Context, address models.Address, paymentMethod string) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)
}

type client struct {
	httpclient *http.Client
	base       string
	tokens     TokenSource
}

// NewClient builds a Client rooted at baseURL. tokens may be nil for a client
// that only ever calls unauthenticated endpoints.
func NewClient(baseURL string, httpclient *http.Client, tokens TokenSource) Client {
	if httpclient == nil {
		httpclient = new(http.Client)
	}
	return &client{
		httpclient: httpclient,
		base:       strings.TrimSuffix(baseURL, "/"),
		tokens:     tokens,
	}
}

// build URL with path
func (c *client) apipath(path ...string) string {
	parts := make([]string, 0, len(path)+1)
	parts = append(parts, c.base)
	for _, p := range path {
		parts = append(parts, strings.TrimPrefix(strings.TrimSuffix(p, "/"), "/"))
	}
	return strings.Join(parts, "/")
}

// do sends a request with optional JSON body and decodes the response into
// out (when out is non-nil) via unmarshalJSONResponse.
func (c *client) do(ctx context.Context, method, url string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpclient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && c.tokens != nil {
		// Drop the stored token; controllers react to the resulting
		// authentication transition, not to the 401 itself.
		c.tokens.Invalidate()
	}

	return unmarshalJSONResponse(resp, out)
}
