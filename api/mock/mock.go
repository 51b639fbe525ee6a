package mock

import (
	"context"
	"sync"
	"testing"

	"storefront/api"
	"storefront/models"
)

// New returns a mock api.Client. Tests install behaviour via Impl and assert
// recorded arguments via Calls; calling a method with no Impl fails the test.
func New(t *testing.T) *Client {
	return &Client{t: t}
}

type VerifyOTPArgs struct {
	RegistrationID string
	OTP            string
}

type QuantityArgs struct {
	ProductID string
	Quantity  int
}

type LoginArgs struct {
	Email    string
	Password string
}

type PlaceOrderArgs struct {
	Address       models.Address
	PaymentMethod string
}

type Client struct {
	t  *testing.T
	mu sync.Mutex

	Impl struct {
		RegisterInit   func(ctx context.Context, req models.RegisterInitRequest) (*models.RegisterInitResponse, error)
		VerifyEmailOTP func(ctx context.Context, registrationID, otp string) (*models.VerifyEmailResponse, error)
		ResendEmailOTP func(ctx context.Context, registrationID string) error
		VerifyPhoneOTP func(ctx context.Context, registrationID, otp string) (*models.AuthResponse, error)
		ResendPhoneOTP func(ctx context.Context, registrationID string) error
		Login          func(ctx context.Context, email, password string) (*models.AuthResponse, error)
		Logout         func(ctx context.Context) error
		GetCart        func(ctx context.Context) (*models.Cart, error)
		AddToCart      func(ctx context.Context, productID string, quantity int) (*models.Cart, error)
		UpdateCartItem func(ctx context.Context, productID string, quantity int) (*models.Cart, error)
		RemoveCartItem func(ctx context.Context, productID string) (*models.Cart, error)
		ClearCart      func(ctx context.Context) (*models.Cart, error)
		ApplyCoupon    func(ctx context.Context, code string) (*models.Cart, string, error)
		RemoveCoupon   func(ctx context.Context) (*models.Cart, error)
		ListProducts   func(ctx context.Context, query models.ProductQuery) (*models.ProductPage, error)
		GetProduct     func(ctx context.Context, productID string) (*models.Product, error)
		PlaceOrder     func(ctx context.Context, address models.Address, paymentMethod string) (*models.Order, error)
		ListOrders     func(ctx context.Context) ([]models.Order, error)
		GetOrder       func(ctx context.Context, orderID string) (*models.Order, error)
	}

	Calls struct {
		RegisterInit   []models.RegisterInitRequest
		VerifyEmailOTP []VerifyOTPArgs
		ResendEmailOTP []string
		VerifyPhoneOTP []VerifyOTPArgs
		ResendPhoneOTP []string
		Login          []LoginArgs
		Logout         int
		GetCart        int
		AddToCart      []QuantityArgs
		UpdateCartItem []QuantityArgs
		RemoveCartItem []string
		ClearCart      int
		ApplyCoupon    []string
		RemoveCoupon   int
		ListProducts   []models.ProductQuery
		GetProduct     []string
		PlaceOrder     []PlaceOrderArgs
		ListOrders     int
		GetOrder       []string
	}
}

var _ api.Client = &Client{}

func (m *Client) RegisterInit(ctx context.Context, req models.RegisterInitRequest) (*models.RegisterInitResponse, error) {
	m.t.Helper()
	m.mu.Lock()
	m.Calls.RegisterInit = append(m.Calls.RegisterInit, req)
	m.mu.Unlock()
	if m.Impl.RegisterInit == nil {
		m.t.Fatal("RegisterInit is not ready to be called")
	}
	return m.Impl.RegisterInit(ctx, req)
}

func (m *Client) VerifyEmailOTP(ctx context.Context, registrationID, otp string) (*models.VerifyEmailResponse, error) {
	m.t.Helper()
	m.mu.Lock()
	m.Calls.VerifyEmailOTP = append(m.Calls.VerifyEmailOTP, VerifyOTPArgs{registrationID, otp})
	m.mu.Unlock()
	if m.Impl.VerifyEmailOTP == nil {
		m.t.Fatal("VerifyEmailOTP is not ready to be called")
	}
	return m.Impl.VerifyEmailOTP(ctx, registrationID, otp)
}

func (m *Client) ResendEmailOTP(ctx context.Context, registrationID string) error {
	m.t.Helper()
	m.mu.Lock()
	m.Calls.ResendEmailOTP = append(m.Calls.ResendEmailOTP, registrationID)
	m.mu.Unlock()
	if m.Impl.ResendEmailOTP == nil {
		m.t.Fatal("ResendEmailOTP is not ready to be called")
	}
	return m.Impl.ResendEmailOTP(ctx, registrationID)
}

func (m *Client) VerifyPhoneOTP(ctx context.Context, registrationID, otp string) (*models.AuthResponse, error) {
	m.t.Helper()
	m.mu.Lock()
	m.Calls.VerifyPhoneOTP = append(m.Calls.VerifyPhoneOTP, VerifyOTPArgs{registrationID, otp})
	m.mu.Unlock()
	if m.Impl.VerifyPhoneOTP == nil {
		m.t.Fatal("VerifyPhoneOTP is not ready to be called")
	}
	return m.Impl.VerifyPhoneOTP(ctx, registrationID, otp)
}

func (m *Client) ResendPhoneOTP(ctx context.Context, registrationID string) error {
	m.t.Helper()
	m.mu.Lock()
	m.Calls.ResendPhoneOTP = append(m.Calls.ResendPhoneOTP, registrationID)
	m.mu.Unlock()
	if m.Impl.ResendPhoneOTP == nil {
		m.t.Fatal("ResendPhoneOTP is not ready to be called")
	}
	return m.Impl.ResendPhoneOTP(ctx, registrationID)
}

func (m *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	m.t.Helper()
	m.mu.Lock()
	m.Calls.Login = append(m.Calls.Login, LoginArgs{email, password})
	m.mu.Unlock()
	if m.Impl.Login == nil {
		m.t.Fatal("Login is not ready to be called")
	}
	return m.Impl.Login(ctx, email, password)
}

func (m *Client) Logout(ctx context.Context) error {
	m.t.Helper()
	m.mu.Lock()
	m.Calls.Logout++
	m.mu.Unlock()
	if m.Impl.Logout == nil {
		m.t.Fatal("Logout is not ready to be called")
	}
	return m.Impl.Logout(ctx)
}

func (m *Client) GetCart(ctx context.Context) (*models.Cart, error) {
	m.t.Helper()
	m.mu.Lock()
	m.Calls.GetCart++
	m.mu.Unlock()
	if m.Impl.GetCart == nil {
		m.t.Fatal("GetCart is not ready to be called")
	}
	return m.Impl.GetCart(ctx)
}

func (m *Client) AddToCart(ctx context.Context, productID string, quantity int) (*models.Cart, error) {
	m.t.Helper()
	m.mu.Lock()
	m.Calls.AddToCart = append(m.Calls.AddToCart, QuantityArgs{productID, quantity})
	m.mu.Unlock()
	if m.Impl.AddToCart == nil {
		m.t.Fatal("AddToCart is not ready to be called")
	}
	return m.Impl.AddToCart(ctx, productID, quantity)
}

func (m *Client) UpdateCartItem(ctx context.Context, productID string, quantity int) (*models.Cart, error) {
	m.t.Helper()
	m.mu.Lock()
	m.Calls.UpdateCartItem = append(m.Calls.UpdateCartItem, QuantityArgs{productID, quantity})
	m.mu.Unlock()
	if m.Impl.UpdateCartItem == nil {
		m.t.Fatal("UpdateCartItem is not ready to be called")
	}
	return m.Impl.UpdateCartItem(ctx, productID, quantity)
}

func (m *Client) RemoveCartItem(ctx context.Context, productID string) (*models.Cart, error) {
	m.t.Helper()
	m.mu.Lock()
	m.Calls.RemoveCartItem = append(m.Calls.RemoveCartItem, productID)
	m.mu.Unlock()
	if m.Impl.RemoveCartItem == nil {
		m.t.Fatal("RemoveCartItem is not ready to be called")
	}
	return m.Impl.RemoveCartItem(ctx, productID)
}

func (m *Client) ClearCart(ctx context.Context) (*models.Cart, error) {
	m.t.Helper()
	m.mu.Lock()
	m.Calls.ClearCart++
	m.mu.Unlock()
	if m.Impl.ClearCart == nil {
		m.t.Fatal("ClearCart is not ready to be called")
	}
	return m.Impl.ClearCart(ctx)
}

func (m *Client) ApplyCoupon(ctx context.Context, code string) (*models.Cart, string, error) {
	m.t.Helper()
	m.mu.Lock()
	m.Calls.ApplyCoupon = append(m.Calls.ApplyCoupon, code)
	m.mu.Unlock()
	if m.Impl.ApplyCoupon == nil {
		m.t.Fatal("ApplyCoupon is not ready to be called")
	}
	return m.Impl.ApplyCoupon(ctx, code)
}

func (m *Client) RemoveCoupon(ctx context.Context) (*models.Cart, error) {
	m.t.Helper()
	m.mu.Lock()
	m.Calls.RemoveCoupon++
	m.mu.Unlock()
	if m.Impl.RemoveCoupon == nil {
		m.t.Fatal("RemoveCoupon is not ready to be called")
	}
	return m.Impl.RemoveCoupon(ctx)
}

func (m *Client) ListProducts(ctx context.Context, query models.ProductQuery) (*models.ProductPage, error) {
	m.t.Helper()
	m.mu.Lock()
	m.Calls.ListProducts = append(m.Calls.ListProducts, query)
	m.mu.Unlock()
	if m.Impl.ListProducts == nil {
		m.t.Fatal("ListProducts is not ready to be called")
	}
	return m.Impl.ListProducts(ctx, query)
}

func (m *Client) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	m.t.Helper()
	m.mu.Lock()
	m.Calls.GetProduct = append(m.Calls.GetProduct, productID)
	m.mu.Unlock()
	if m.Impl.GetProduct == nil {
		m.t.Fatal("GetProduct is not ready to be called")
	}
	return m.Impl.GetProduct(ctx, productID)
}

func (m *Client) PlaceOrder(ctx context.Context, address models.Address, paymentMethod string) (*models.Order, error) {
	m.t.Helper()
	m.mu.Lock()
	m.Calls.PlaceOrder = append(m.Calls.PlaceOrder, PlaceOrderArgs{address, paymentMethod})
	m.mu.Unlock()
	if m.Impl.PlaceOrder == nil {
		m.t.Fatal("PlaceOrder is not ready to be called")
	}
	return m.Impl.PlaceOrder(ctx, address, paymentMethod)
}

func (m *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	m.t.Helper()
	m.mu.Lock()
	m.Calls.ListOrders++
	m.mu.Unlock()
	if m.Impl.ListOrders == nil {
		m.t.Fatal("ListOrders is not ready to be called")
	}
	return m.Impl.ListOrders(ctx)
}

func (m *Client) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	m.t.Helper()
	m.mu.Lock()
	m.Calls.GetOrder = append(m.Calls.GetOrder, orderID)
	m.mu.Unlock()
	if m.Impl.GetOrder == nil {
		m.t.Fatal("GetOrder is not ready to be called")
	}
	return m.Impl.GetOrder(ctx, orderID)
}
