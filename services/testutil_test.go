package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/abdul-09/slooze-restaurant/entity"
	"github.com/abdul-09/slooze-restaurant/pkg/paypal"
	"github.com/abdul-09/slooze-restaurant/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// one connection: keeps the in-memory database alive and serializes
	// access the way a single sqlite file would
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.Category{}, &entity.MenuItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role, region string) *entity.User {
	t.Helper()
	u := &entity.User{
		Email:    email,
		Password: "x",
		Role:     role,
		Region:   region,
		IsActive: true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedRestaurant(t *testing.T, db *gorm.DB, name, region string) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{Name: name, Region: region, IsActive: true}
	require.NoError(t, db.Create(r).Error)
	return r
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *entity.Category {
	t.Helper()
	c := &entity.Category{Name: name}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedMenuItem(t *testing.T, db *gorm.DB, rest *entity.Restaurant, cat *entity.Category, name, price string) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{
		RestaurantID: rest.ID,
		CategoryID:   cat.ID,
		Name:         name,
		Price:        decimal.RequireFromString(price),
		IsAvailable:  true,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

// stubGateway substitutes the payment collaborator in tests.
type stubGateway struct {
	order *paypal.GatewayOrder
	err   error
}

func (s stubGateway) GetOrder(ctx context.Context, id string) (*paypal.GatewayOrder, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.order, nil
}

type fixture struct {
	db       *gorm.DB
	cart     *CartService
	checkout *CheckoutService
	orders   *OrderService
}

func newFixture(t *testing.T, gateway paypal.Gateway) *fixture {
	t.Helper()
	db := newTestDB(t)
	cartRepo := repository.NewCartRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)

	return &fixture{
		db:       db,
		cart:     NewCartService(db, cartRepo, menuRepo),
		checkout: NewCheckoutService(db, cartRepo, orderRepo, userRepo, gateway, nil),
		orders:   NewOrderService(db, orderRepo, restRepo),
	}
}
