package orders

import (
	"context"
	"testing"

	"storefront/api/mock"
	"storefront/cart"
	"storefront/models"
	"storefront/session"
	"storefront/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrders(t *testing.T) (*Controller, *cart.Controller, *mock.Client, *session.Session) {
	t.Helper()
	backend := mock.New(t)
	sess := session.New("")
	backend.Impl.GetCart = func(ctx context.Context) (*models.Cart, error) {
		return &models.Cart{Items: []models.CartItem{
			{Product: models.Product{ID: "p1", Price: 100}, Quantity: 2},
		}}, nil
	}
	cartCtrl := cart.NewController(backend, sess, nil)
	return NewController(backend, sess, cartCtrl), cartCtrl, backend, sess
}

func TestPlaceRequiresSession(t *testing.T) {
	ctrl, _, backend, _ := newTestOrders(t)

	_, err := ctrl.Place(context.Background(), models.Address{}, "cod")

	assert.ErrorIs(t, err, utils.ErrUnauthenticated)
	assert.Empty(t, backend.Calls.PlaceOrder)
}

func TestPlaceDropsLocalCart(t *testing.T) {
	ctrl, cartCtrl, backend, sess := newTestOrders(t)
	require.NoError(t, sess.SetAuth(models.AuthResponse{Token: "tok-1", User: models.User{ID: "u1"}}))
	require.NotNil(t, cartCtrl.Cart())

	backend.Impl.PlaceOrder = func(ctx context.Context, address models.Address, paymentMethod string) (*models.Order, error) {
		return &models.Order{ID: "o1", Status: "pending", Total: 240}, nil
	}

	order, err := ctrl.Place(context.Background(), models.Address{
		Line1: "12 MG Road", City: "Bengaluru", State: "KA", Pincode: "560001",
	}, "cod")

	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
	assert.Nil(t, cartCtrl.Cart(), "local cart dropped after placement")
	require.Len(t, backend.Calls.PlaceOrder, 1)
	assert.Equal(t, "cod", backend.Calls.PlaceOrder[0].PaymentMethod)
}

func TestPlaceFailureKeepsCart(t *testing.T) {
	ctrl, cartCtrl, backend, sess := newTestOrders(t)
	require.NoError(t, sess.SetAuth(models.AuthResponse{Token: "tok-1", User: models.User{ID: "u1"}}))

	backend.Impl.PlaceOrder = func(ctx context.Context, address models.Address, paymentMethod string) (*models.Order, error) {
		return nil, &utils.RequestError{Status: 409, Message: "Insufficient stock for p1"}
	}

	_, err := ctrl.Place(context.Background(), models.Address{}, "cod")

	require.Error(t, err)
	assert.Equal(t, "Insufficient stock for p1", utils.DisplayMessage(err))
	assert.NotNil(t, cartCtrl.Cart(), "cart untouched when placement fails")
}

func TestHistoryAndTrack(t *testing.T) {
	ctrl, _, backend, sess := newTestOrders(t)
	require.NoError(t, sess.SetAuth(models.AuthResponse{Token: "tok-1", User: models.User{ID: "u1"}}))

	backend.Impl.ListOrders = func(ctx context.Context) ([]models.Order, error) {
		return []models.Order{{ID: "o1"}, {ID: "o2"}}, nil
	}
	backend.Impl.GetOrder = func(ctx context.Context, orderID string) (*models.Order, error) {
		return &models.Order{ID: orderID, Status: "shipped"}, nil
	}

	history, err := ctrl.History(context.Background())
	require.NoError(t, err)
	assert.Len(t, history, 2)

	order, err := ctrl.Track(context.Background(), "o2")
	require.NoError(t, err)
	assert.Equal(t, "shipped", order.Status)
	assert.Equal(t, []string{"o2"}, backend.Calls.GetOrder)
}
