package cart

import (
	"context"
	"sync"

	"storefront/api"
	"storefront/models"
	"storefront/session"
	"storefront/utils"

	"go.uber.org/zap"
)

// Controller is the single source of truth for the signed-in user's cart.
// The cart is never mutated locally: every operation sends the request and
// replaces the local copy wholesale with the backend's response.
//
// Rapid repeated mutations are not queued or deduplicated, but each request
// carries a sequence number and a response is applied only when its sequence
// is above everything applied so far. A slow response resolving after a newer
// one is dropped (its error, if any, is still surfaced), so the rendered cart
// always reflects the newest applied server state.
type Controller struct {
	mu         sync.Mutex
	backend    api.Client
	session    *session.Session
	cart       *models.Cart
	nextSeq    uint64
	appliedSeq uint64
	onChange   func()
}

// NewController builds a cart controller bound to sess. It subscribes to
// authentication transitions: signing in triggers one fetch, signing out
// clears the local cart without a network call.
func NewController(backend api.Client, sess *session.Session, onChange func()) *Controller {
	c := &Controller{
		backend:  backend,
		session:  sess,
		onChange: onChange,
	}
	sess.Subscribe(func(authenticated bool) {
		if authenticated {
			if err := c.Fetch(context.Background()); err != nil {
				utils.GetLogger().Warn("cart: fetch after sign-in failed", zap.Error(err))
			}
			return
		}
		c.Reset()
	})
	return c
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}

// mutate runs one backend call under the sequence guard and replaces the
// local cart with its response. Errors are returned as-is with the local cart
// untouched.
func (c *Controller) mutate(call func() (*models.Cart, error)) error {
	if !c.session.IsAuthenticated() {
		return utils.ErrUnauthenticated
	}

	c.mu.Lock()
	c.nextSeq++
	seq := c.nextSeq
	c.mu.Unlock()

	cart, err := call()
	if err != nil {
		return err
	}

	c.mu.Lock()
	if seq <= c.appliedSeq {
		c.mu.Unlock()
		utils.GetLogger().Debug("cart: dropping stale response", zap.Uint64("seq", seq))
		return nil
	}
	c.appliedSeq = seq
	c.cart = cart
	c.mu.Unlock()

	c.notify()
	return nil
}

// Fetch replaces the local cart with the backend's current one.
func (c *Controller) Fetch(ctx context.Context) error {
	return c.mutate(func() (*models.Cart, error) {
		return c.backend.GetCart(ctx)
	})
}

// AddItem requests the backend to add quantity of a product.
func (c *Controller) AddItem(ctx context.Context, productID string, quantity int) error {
	if quantity == 0 {
		quantity = 1
	}
	return c.mutate(func() (*models.Cart, error) {
		return c.backend.AddToCart(ctx, productID, quantity)
	})
}

// SetQuantity sets the quantity of a cart line. Callers gate quantity >= 1;
// the controller passes the value through without clamping.
func (c *Controller) SetQuantity(ctx context.Context, productID string, quantity int) error {
	return c.mutate(func() (*models.Cart, error) {
		return c.backend.UpdateCartItem(ctx, productID, quantity)
	})
}

// RemoveItem removes a product line from the cart.
func (c *Controller) RemoveItem(ctx context.Context, productID string) error {
	return c.mutate(func() (*models.Cart, error) {
		return c.backend.RemoveCartItem(ctx, productID)
	})
}

// Clear empties the server-side cart.
func (c *Controller) Clear(ctx context.Context) error {
	return c.mutate(func() (*models.Cart, error) {
		return c.backend.ClearCart(ctx)
	})
}

// ApplyCoupon attaches a coupon code. On failure the backend's reason is
// returned verbatim and the existing coupon state is left untouched.
func (c *Controller) ApplyCoupon(ctx context.Context, code string) (string, error) {
	var message string
	err := c.mutate(func() (*models.Cart, error) {
		cart, msg, err := c.backend.ApplyCoupon(ctx, code)
		message = msg
		return cart, err
	})
	return message, err
}

// RemoveCoupon detaches the current coupon.
func (c *Controller) RemoveCoupon(ctx context.Context) error {
	return c.mutate(func() (*models.Cart, error) {
		return c.backend.RemoveCoupon(ctx)
	})
}

// Cart returns a copy of the local cart, or nil while unauthenticated or not
// yet fetched.
func (c *Controller) Cart() *models.Cart {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cart == nil {
		return nil
	}
	copied := *c.cart
	copied.Items = append([]models.CartItem{}, c.cart.Items...)
	if c.cart.Coupon != nil {
		coupon := *c.cart.Coupon
		copied.Coupon = &coupon
	}
	return &copied
}

// Reset drops the local cart without a network call and raises the sequence
// barrier so responses still in flight cannot resurrect it. Used on sign-out
// and after order placement.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.cart = nil
	c.appliedSeq = c.nextSeq
	c.mu.Unlock()
	c.notify()
}
