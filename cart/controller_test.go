package cart

import (
	"context"
	"testing"

	"storefront/api/mock"
	"storefront/models"
	"storefront/session"
	"storefront/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signIn(t *testing.T, sess *session.Session) {
	t.Helper()
	require.NoError(t, sess.SetAuth(models.AuthResponse{
		Token: "tok-1",
		User:  models.User{ID: "u1", Email: "asha@example.com"},
	}))
}

func cartWith(items ...models.CartItem) *models.Cart {
	return &models.Cart{Items: items}
}

func item(productID string, price float64, quantity int) models.CartItem {
	return models.CartItem{
		Product:  models.Product{ID: productID, Price: price},
		Quantity: quantity,
	}
}

func TestFetchRequiresSession(t *testing.T) {
	backend := mock.New(t)
	sess := session.New("")
	ctrl := NewController(backend, sess, nil)

	err := ctrl.Fetch(context.Background())

	assert.ErrorIs(t, err, utils.ErrUnauthenticated)
	assert.Zero(t, backend.Calls.GetCart, "no network call without a session")
	assert.Nil(t, ctrl.Cart())
}

func TestSignInTriggersExactlyOneFetch(t *testing.T) {
	backend := mock.New(t)
	sess := session.New("")
	backend.Impl.GetCart = func(ctx context.Context) (*models.Cart, error) {
		return cartWith(item("p1", 100, 2)), nil
	}
	ctrl := NewController(backend, sess, nil)

	signIn(t, sess)

	assert.Equal(t, 1, backend.Calls.GetCart)
	require.NotNil(t, ctrl.Cart())
	assert.Len(t, ctrl.Cart().Items, 1)
}

func TestSignOutClearsCartWithoutNetwork(t *testing.T) {
	backend := mock.New(t)
	sess := session.New("")
	backend.Impl.GetCart = func(ctx context.Context) (*models.Cart, error) {
		return cartWith(item("p1", 100, 2)), nil
	}
	ctrl := NewController(backend, sess, nil)
	signIn(t, sess)
	require.NotNil(t, ctrl.Cart())

	sess.Clear()

	assert.Nil(t, ctrl.Cart())
	assert.Equal(t, 1, backend.Calls.GetCart, "sign-out fetches nothing")
}

func TestAddItemReplacesCartWholesale(t *testing.T) {
	backend := mock.New(t)
	sess := session.New("")
	backend.Impl.GetCart = func(ctx context.Context) (*models.Cart, error) {
		return cartWith(), nil
	}
	ctrl := NewController(backend, sess, nil)
	signIn(t, sess)

	backend.Impl.AddToCart = func(ctx context.Context, productID string, quantity int) (*models.Cart, error) {
		return cartWith(item(productID, 250, quantity)), nil
	}

	require.NoError(t, ctrl.AddItem(context.Background(), "p1", 0))

	require.Len(t, backend.Calls.AddToCart, 1)
	assert.Equal(t, 1, backend.Calls.AddToCart[0].Quantity, "quantity defaults to 1")
	assert.Equal(t, 1, ctrl.ItemsCount())
	assert.InDelta(t, 250.0, ctrl.Subtotal(), 1e-9)
}

func TestMutationFailureLeavesCartUntouched(t *testing.T) {
	backend := mock.New(t)
	sess := session.New("")
	backend.Impl.GetCart = func(ctx context.Context) (*models.Cart, error) {
		return cartWith(item("p1", 100, 1)), nil
	}
	ctrl := NewController(backend, sess, nil)
	signIn(t, sess)

	backend.Impl.RemoveCartItem = func(ctx context.Context, productID string) (*models.Cart, error) {
		return nil, &utils.RequestError{Status: 500, Message: "Something broke"}
	}

	err := ctrl.RemoveItem(context.Background(), "p1")

	require.Error(t, err)
	assert.Equal(t, "Something broke", utils.DisplayMessage(err))
	require.NotNil(t, ctrl.Cart())
	assert.Len(t, ctrl.Cart().Items, 1, "local cart unchanged on failure")
}

func TestApplyCouponFailurePreservesCouponState(t *testing.T) {
	backend := mock.New(t)
	sess := session.New("")
	applied := &models.Coupon{Code: "SAVE10", DiscountType: "percentage", DiscountValue: 10}
	backend.Impl.GetCart = func(ctx context.Context) (*models.Cart, error) {
		c := cartWith(item("p1", 100, 1))
		c.Coupon = applied
		c.Discount = 10
		return c, nil
	}
	ctrl := NewController(backend, sess, nil)
	signIn(t, sess)

	backend.Impl.ApplyCoupon = func(ctx context.Context, code string) (*models.Cart, string, error) {
		return nil, "", &utils.RequestError{Status: 400, Message: "Coupon expired"}
	}

	_, err := ctrl.ApplyCoupon(context.Background(), "DEAD10")

	require.Error(t, err)
	require.NotNil(t, ctrl.Cart().Coupon)
	assert.Equal(t, "SAVE10", ctrl.Cart().Coupon.Code, "existing coupon untouched")
	assert.InDelta(t, 10.0, ctrl.Cart().Discount, 1e-9)
}

func TestOutOfOrderResponsesNewestSequenceWins(t *testing.T) {
	backend := mock.New(t)
	sess := session.New("")
	backend.Impl.GetCart = func(ctx context.Context) (*models.Cart, error) {
		return cartWith(), nil
	}
	ctrl := NewController(backend, sess, nil)
	signIn(t, sess)

	slowStarted := make(chan struct{})
	slowRelease := make(chan struct{})
	backend.Impl.AddToCart = func(ctx context.Context, productID string, quantity int) (*models.Cart, error) {
		close(slowStarted)
		<-slowRelease
		return cartWith(item("p1", 100, 1)), nil
	}
	backend.Impl.UpdateCartItem = func(ctx context.Context, productID string, quantity int) (*models.Cart, error) {
		return cartWith(item("p1", 100, quantity)), nil
	}

	done := make(chan error, 1)
	go func() {
		done <- ctrl.AddItem(context.Background(), "p1", 1)
	}()
	<-slowStarted

	// A newer request resolves while the first is still in flight.
	require.NoError(t, ctrl.SetQuantity(context.Background(), "p1", 5))
	require.Equal(t, 5, ctrl.Cart().Items[0].Quantity)

	close(slowRelease)
	require.NoError(t, <-done)

	assert.Equal(t, 5, ctrl.Cart().Items[0].Quantity,
		"stale response dropped; newest applied state wins")
}

func TestInFlightResponseDroppedAfterSignOut(t *testing.T) {
	backend := mock.New(t)
	sess := session.New("")
	backend.Impl.GetCart = func(ctx context.Context) (*models.Cart, error) {
		return cartWith(), nil
	}
	ctrl := NewController(backend, sess, nil)
	signIn(t, sess)

	started := make(chan struct{})
	release := make(chan struct{})
	backend.Impl.AddToCart = func(ctx context.Context, productID string, quantity int) (*models.Cart, error) {
		close(started)
		<-release
		return cartWith(item("p1", 100, 1)), nil
	}

	done := make(chan error, 1)
	go func() {
		done <- ctrl.AddItem(context.Background(), "p1", 1)
	}()
	<-started

	sess.Clear()
	close(release)
	require.NoError(t, <-done)

	assert.Nil(t, ctrl.Cart(), "response from before sign-out must not resurrect the cart")
}

func TestAddItemScenarioFromEmptyCart(t *testing.T) {
	backend := mock.New(t)
	sess := session.New("")
	backend.Impl.GetCart = func(ctx context.Context) (*models.Cart, error) {
		return cartWith(), nil
	}
	ctrl := NewController(backend, sess, nil)
	signIn(t, sess)
	assert.Zero(t, ctrl.ItemsCount())

	backend.Impl.AddToCart = func(ctx context.Context, productID string, quantity int) (*models.Cart, error) {
		return cartWith(item("p1", 199.5, 1)), nil
	}

	require.NoError(t, ctrl.AddItem(context.Background(), "p1", 1))

	assert.Equal(t, 1, ctrl.ItemsCount())
	assert.InDelta(t, 199.5, ctrl.Subtotal(), 1e-9)
}
