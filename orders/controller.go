package orders

import (
	"context"

	"storefront/api"
	"storefront/cart"
	"storefront/models"
	"storefront/session"
	"storefront/utils"
)

// Controller places orders and reads order history. It holds no state of its
// own; the backend owns every order, and the only client-side effect of a
// placement is dropping the local cart copy.
type Controller struct {
	backend api.Client
	session *session.Session
	cart    *cart.Controller
}

func NewController(backend api.Client, sess *session.Session, cartCtrl *cart.Controller) *Controller {
	return &Controller{backend: backend, session: sess, cart: cartCtrl}
}

// Place submits the checkout. The backend prices and empties the server-side
// cart; on success the local cart copy is dropped to match.
func (c *Controller) Place(ctx context.Context, address models.Address, paymentMethod string) (*models.Order, error) {
	if !c.session.IsAuthenticated() {
		return nil, utils.ErrUnauthenticated
	}
	order, err := c.backend.PlaceOrder(ctx, address, paymentMethod)
	if err != nil {
		return nil, err
	}
	if c.cart != nil {
		c.cart.Reset()
	}
	return order, nil
}

// History lists the user's past orders.
func (c *Controller) History(ctx context.Context) ([]models.Order, error) {
	if !c.session.IsAuthenticated() {
		return nil, utils.ErrUnauthenticated
	}
	return c.backend.ListOrders(ctx)
}

// Track fetches the current state of one order.
func (c *Controller) Track(ctx context.Context, orderID string) (*models.Order, error) {
	if !c.session.IsAuthenticated() {
		return nil, utils.ErrUnauthenticated
	}
	return c.backend.GetOrder(ctx, orderID)
}
