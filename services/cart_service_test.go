package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-09/slooze-restaurant/entity"
	"github.com/abdul-09/slooze-restaurant/pkg/apperr"
)

func TestCartGetCreatesOnce(t *testing.T) {
	f := newFixture(t, stubGateway{})
	u := seedUser(t, f.db, "m@example.com", entity.RoleMember, entity.RegionIndia)

	first, err := f.cart.Get(u.ID)
	require.NoError(t, err)
	second, err := f.cart.Get(u.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Empty(t, second.Items)
	assert.True(t, second.Total.IsZero())

	var count int64
	require.NoError(t, f.db.Model(&entity.Cart{}).Where("customer_id = ?", u.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCartAddItemMergesDuplicates(t *testing.T) {
	f := newFixture(t, stubGateway{})
	u := seedUser(t, f.db, "m@example.com", entity.RoleMember, entity.RegionIndia)
	rest := seedRestaurant(t, f.db, "Tandoor House", entity.RegionIndia)
	cat := seedCategory(t, f.db, "Main Course")
	item := seedMenuItem(t, f.db, rest, cat, "Butter Chicken", "9.50")

	_, err := f.cart.AddItem(u.ID, item.ID, 2, "")
	require.NoError(t, err)
	view, err := f.cart.AddItem(u.ID, item.ID, 3, "extra spicy")
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)
	assert.Equal(t, "extra spicy", view.Items[0].SpecialInstructions)
	assert.True(t, view.Total.Equal(decimal.RequireFromString("47.50")), "total = %s", view.Total)
}

func TestCartAddItemValidation(t *testing.T) {
	f := newFixture(t, stubGateway{})
	u := seedUser(t, f.db, "m@example.com", entity.RoleMember, entity.RegionIndia)
	rest := seedRestaurant(t, f.db, "Tandoor House", entity.RegionIndia)
	cat := seedCategory(t, f.db, "Main Course")
	item := seedMenuItem(t, f.db, rest, cat, "Butter Chicken", "9.50")

	_, err := f.cart.AddItem(u.ID, item.ID, 0, "")
	assert.True(t, apperr.IsKind(err, apperr.InvalidArgument))

	_, err = f.cart.AddItem(u.ID, item.ID, -1, "")
	assert.True(t, apperr.IsKind(err, apperr.InvalidArgument))

	_, err = f.cart.AddItem(u.ID, 9999, 1, "")
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestCartUpdateQuantity(t *testing.T) {
	f := newFixture(t, stubGateway{})
	u := seedUser(t, f.db, "m@example.com", entity.RoleMember, entity.RegionIndia)
	rest := seedRestaurant(t, f.db, "Tandoor House", entity.RegionIndia)
	cat := seedCategory(t, f.db, "Main Course")
	item := seedMenuItem(t, f.db, rest, cat, "Dal Makhani", "6.25")

	view, err := f.cart.AddItem(u.ID, item.ID, 1, "")
	require.NoError(t, err)
	lineID := view.Items[0].ID

	view, err = f.cart.UpdateQuantity(u.ID, lineID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, view.Items[0].Quantity)
	assert.True(t, view.Total.Equal(decimal.RequireFromString("25.00")))

	_, err = f.cart.UpdateQuantity(u.ID, lineID, 0)
	assert.True(t, apperr.IsKind(err, apperr.InvalidArgument))

	_, err = f.cart.UpdateQuantity(u.ID, 9999, 2)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestCartRemoveItem(t *testing.T) {
	f := newFixture(t, stubGateway{})
	u := seedUser(t, f.db, "m@example.com", entity.RoleMember, entity.RegionIndia)
	rest := seedRestaurant(t, f.db, "Tandoor House", entity.RegionIndia)
	cat := seedCategory(t, f.db, "Main Course")
	a := seedMenuItem(t, f.db, rest, cat, "Naan", "1.50")
	b := seedMenuItem(t, f.db, rest, cat, "Raita", "2.00")

	_, err := f.cart.AddItem(u.ID, a.ID, 2, "")
	require.NoError(t, err)
	view, err := f.cart.AddItem(u.ID, b.ID, 1, "")
	require.NoError(t, err)
	require.Len(t, view.Items, 2)

	var naanLine uint
	for _, it := range view.Items {
		if it.MenuItemID == a.ID {
			naanLine = it.ID
		}
	}

	view, err = f.cart.RemoveItem(u.ID, naanLine)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, b.ID, view.Items[0].MenuItemID)
	assert.True(t, view.Total.Equal(decimal.RequireFromString("2.00")))

	_, err = f.cart.RemoveItem(u.ID, naanLine)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestCartReaddAfterRemove(t *testing.T) {
	f := newFixture(t, stubGateway{})
	u := seedUser(t, f.db, "m@example.com", entity.RoleMember, entity.RegionIndia)
	rest := seedRestaurant(t, f.db, "Tandoor House", entity.RegionIndia)
	cat := seedCategory(t, f.db, "Main Course")
	item := seedMenuItem(t, f.db, rest, cat, "Samosa", "3.00")

	view, err := f.cart.AddItem(u.ID, item.ID, 2, "")
	require.NoError(t, err)
	_, err = f.cart.RemoveItem(u.ID, view.Items[0].ID)
	require.NoError(t, err)

	// The removed line must not linger in the unique index.
	view, err = f.cart.AddItem(u.ID, item.ID, 1, "")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Quantity)
}

func TestCartTotalTracksCurrentPrices(t *testing.T) {
	f := newFixture(t, stubGateway{})
	u := seedUser(t, f.db, "m@example.com", entity.RoleMember, entity.RegionIndia)
	rest := seedRestaurant(t, f.db, "Tandoor House", entity.RegionIndia)
	cat := seedCategory(t, f.db, "Main Course")
	item := seedMenuItem(t, f.db, rest, cat, "Biryani", "8.00")

	_, err := f.cart.AddItem(u.ID, item.ID, 2, "")
	require.NoError(t, err)

	// Cart lines carry no price; a catalog change is reflected on read.
	require.NoError(t, f.db.Model(&entity.MenuItem{}).Where("id = ?", item.ID).
		Update("price", decimal.RequireFromString("10.00")).Error)

	view, err := f.cart.Get(u.ID)
	require.NoError(t, err)
	assert.True(t, view.Total.Equal(decimal.RequireFromString("20.00")), "total = %s", view.Total)
}
