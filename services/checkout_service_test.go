package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-09/slooze-restaurant/entity"
	"github.com/abdul-09/slooze-restaurant/pkg/apperr"
	"github.com/abdul-09/slooze-restaurant/pkg/paypal"
)

func seedCartLine(t *testing.T, f *fixture, customerID uint, price string, qty int) *entity.MenuItem {
	t.Helper()
	rest := seedRestaurant(t, f.db, "Tandoor House", entity.RegionIndia)
	cat := seedCategory(t, f.db, "Main Course")
	item := seedMenuItem(t, f.db, rest, cat, "Butter Chicken", price)
	_, err := f.cart.AddItem(customerID, item.ID, qty, "")
	require.NoError(t, err)
	return item
}

func TestCheckoutComputesTotal(t *testing.T) {
	f := newFixture(t, stubGateway{})
	u := seedUser(t, f.db, "mgr@example.com", entity.RoleManager, entity.RegionIndia)
	seedCartLine(t, f, u.ID, "1.99", 2)

	order, err := f.checkout.Checkout(u.ID, entity.PaymentCash, "")
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPending, order.Status)
	assert.Equal(t, entity.PaymentCash, order.PaymentMethod)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("3.98")), "total = %s", order.TotalAmount)
	assert.NotEmpty(t, order.Reference)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.True(t, order.Items[0].Price.Equal(decimal.RequireFromString("1.99")))

	view, err := f.cart.Get(u.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestCheckoutAppliesDiscount(t *testing.T) {
	f := newFixture(t, stubGateway{})
	u := seedUser(t, f.db, "mgr@example.com", entity.RoleManager, entity.RegionIndia)
	seedCartLine(t, f, u.ID, "1.99", 2)

	order, err := f.checkout.CheckoutWithDiscount(u.ID, entity.PaymentCard, "", decimal.NewFromInt(10))
	require.NoError(t, err)

	// 3.98 * 0.90 = 3.582, rounded half up to 2 places.
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("3.58")), "total = %s", order.TotalAmount)

	// The line snapshot keeps the undiscounted unit price.
	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].Price.Equal(decimal.RequireFromString("1.99")))
}

func TestCheckoutValidation(t *testing.T) {
	f := newFixture(t, stubGateway{})
	u := seedUser(t, f.db, "mgr@example.com", entity.RoleManager, entity.RegionIndia)
	seedCartLine(t, f, u.ID, "5.00", 1)

	_, err := f.checkout.Checkout(u.ID, "bitcoin", "")
	assert.True(t, apperr.IsKind(err, apperr.InvalidArgument))

	_, err = f.checkout.CheckoutWithDiscount(u.ID, entity.PaymentCash, "", decimal.NewFromInt(-1))
	assert.True(t, apperr.IsKind(err, apperr.InvalidArgument))

	_, err = f.checkout.CheckoutWithDiscount(u.ID, entity.PaymentCash, "", decimal.NewFromInt(101))
	assert.True(t, apperr.IsKind(err, apperr.InvalidArgument))

	// Nothing above touched the cart.
	view, err := f.cart.Get(u.ID)
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newFixture(t, stubGateway{})
	u := seedUser(t, f.db, "mgr@example.com", entity.RoleManager, entity.RegionIndia)

	_, err := f.checkout.Checkout(u.ID, entity.PaymentCash, "")
	assert.True(t, apperr.IsKind(err, apperr.FailedPrecondition))
}

func TestCheckoutTwiceDrainsCartOnce(t *testing.T) {
	f := newFixture(t, stubGateway{})
	u := seedUser(t, f.db, "mgr@example.com", entity.RoleManager, entity.RegionIndia)
	seedCartLine(t, f, u.ID, "4.00", 3)

	_, err := f.checkout.Checkout(u.ID, entity.PaymentCash, "")
	require.NoError(t, err)

	_, err = f.checkout.Checkout(u.ID, entity.PaymentCash, "")
	assert.True(t, apperr.IsKind(err, apperr.FailedPrecondition))

	var count int64
	require.NoError(t, f.db.Model(&entity.Order{}).Where("customer_id = ?", u.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCheckoutLeavesCartReusable(t *testing.T) {
	f := newFixture(t, stubGateway{})
	u := seedUser(t, f.db, "mgr@example.com", entity.RoleManager, entity.RegionIndia)
	item := seedCartLine(t, f, u.ID, "4.00", 1)

	_, err := f.checkout.Checkout(u.ID, entity.PaymentCash, "")
	require.NoError(t, err)

	// Same cart, same menu item: the cleared lines must not block re-adding.
	view, err := f.cart.AddItem(u.ID, item.ID, 2, "")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)

	order, err := f.checkout.Checkout(u.ID, entity.PaymentCash, "")
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("8.00")))
}

func TestCheckoutConcurrentSingleOrder(t *testing.T) {
	f := newFixture(t, stubGateway{})
	u := seedUser(t, f.db, "mgr@example.com", entity.RoleManager, entity.RegionIndia)
	seedCartLine(t, f, u.ID, "4.00", 3)

	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := f.checkout.Checkout(u.ID, entity.PaymentCash, "")
			errs <- err
		}()
	}

	var failed, succeeded int
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			assert.True(t, apperr.IsKind(err, apperr.FailedPrecondition), "unexpected error: %v", err)
			failed++
		} else {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, failed)

	var orders int64
	require.NoError(t, f.db.Model(&entity.Order{}).Where("customer_id = ?", u.ID).Count(&orders).Error)
	assert.EqualValues(t, 1, orders)

	view, err := f.cart.Get(u.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestCheckoutRollsBackWhenMenuItemGone(t *testing.T) {
	f := newFixture(t, stubGateway{})
	u := seedUser(t, f.db, "mgr@example.com", entity.RoleManager, entity.RegionIndia)
	item := seedCartLine(t, f, u.ID, "7.00", 1)

	// Catalog removal between add and checkout: the order must not survive
	// in any partial form.
	require.NoError(t, f.db.Delete(&entity.MenuItem{}, item.ID).Error)

	_, err := f.checkout.Checkout(u.ID, entity.PaymentCash, "")
	assert.True(t, apperr.IsKind(err, apperr.NotFound))

	var orders, orderItems, cartLines int64
	require.NoError(t, f.db.Model(&entity.Order{}).Count(&orders).Error)
	require.NoError(t, f.db.Model(&entity.OrderItem{}).Count(&orderItems).Error)
	require.NoError(t, f.db.Model(&entity.CartItem{}).Count(&cartLines).Error)
	assert.Zero(t, orders)
	assert.Zero(t, orderItems)
	assert.EqualValues(t, 1, cartLines)
}

func TestCompletePaymentConfirmsOrder(t *testing.T) {
	gw := stubGateway{order: &paypal.GatewayOrder{
		ID:       "PAY-123",
		Status:   "COMPLETED",
		Amount:   decimal.RequireFromString("19.00"),
		Currency: "USD",
	}}
	f := newFixture(t, gw)
	u := seedUser(t, f.db, "mgr@example.com", entity.RoleManager, entity.RegionIndia)
	seedCartLine(t, f, u.ID, "9.50", 2)

	order, err := f.checkout.CompletePayment(context.Background(), u.ID, "PAY-123")
	require.NoError(t, err)

	assert.Equal(t, entity.StatusConfirmed, order.Status)
	assert.Equal(t, entity.PaymentPayPal, order.PaymentMethod)
	assert.Equal(t, "PAY-123", order.Reference)
	assert.NotNil(t, order.PlacedAt)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("19.00")))

	view, err := f.cart.Get(u.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestCompletePaymentAmountMismatch(t *testing.T) {
	gw := stubGateway{order: &paypal.GatewayOrder{
		ID:     "PAY-456",
		Status: "COMPLETED",
		Amount: decimal.RequireFromString("1.00"),
	}}
	f := newFixture(t, gw)
	u := seedUser(t, f.db, "mgr@example.com", entity.RoleManager, entity.RegionIndia)
	seedCartLine(t, f, u.ID, "9.50", 2)

	_, err := f.checkout.CompletePayment(context.Background(), u.ID, "PAY-456")
	assert.True(t, apperr.IsKind(err, apperr.PaymentMismatch))

	// Nothing persisted, the cart is intact.
	var orders int64
	require.NoError(t, f.db.Model(&entity.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)

	view, err := f.cart.Get(u.ID)
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)
}

func TestCompletePaymentRequiresCapturedStatus(t *testing.T) {
	gw := stubGateway{order: &paypal.GatewayOrder{
		ID:     "PAY-654",
		Status: "CREATED",
		Amount: decimal.RequireFromString("19.00"),
	}}
	f := newFixture(t, gw)
	u := seedUser(t, f.db, "mgr@example.com", entity.RoleManager, entity.RegionIndia)
	seedCartLine(t, f, u.ID, "9.50", 2)

	// Right amount, but the gateway never captured the payment.
	_, err := f.checkout.CompletePayment(context.Background(), u.ID, "PAY-654")
	assert.True(t, apperr.IsKind(err, apperr.FailedPrecondition))

	var orders int64
	require.NoError(t, f.db.Model(&entity.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)
}

func TestCompletePaymentGatewayFailure(t *testing.T) {
	f := newFixture(t, stubGateway{err: context.DeadlineExceeded})
	u := seedUser(t, f.db, "mgr@example.com", entity.RoleManager, entity.RegionIndia)
	seedCartLine(t, f, u.ID, "9.50", 1)

	_, err := f.checkout.CompletePayment(context.Background(), u.ID, "PAY-789")
	assert.True(t, apperr.IsKind(err, apperr.Internal))

	_, err = f.checkout.CompletePayment(context.Background(), u.ID, "")
	assert.True(t, apperr.IsKind(err, apperr.InvalidArgument))
}
