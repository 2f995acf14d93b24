package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/abdul-09/slooze-restaurant/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// revenueStatuses are the states that count toward revenue: everything a
// customer has committed to and not cancelled.
var revenueStatuses = []string{
	entity.StatusConfirmed, entity.StatusPreparing, entity.StatusReady, entity.StatusDelivered,
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Order("id").Find(&items).Error
	return items, err
}

// List returns orders newest first. customerID scopes to one customer,
// region scopes through the order's restaurant; zero values mean unscoped.
func (r *OrderRepository) List(customerID uint, region string, limit int) ([]entity.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := r.DB.Model(&entity.Order{})
	if customerID != 0 {
		q = q.Where("orders.customer_id = ?", customerID)
	}
	if region != "" {
		q = q.Joins("JOIN restaurants r ON r.id = orders.restaurant_id").
			Where("r.region = ?", region)
	}
	var out []entity.Order
	err := q.Order("orders.created_at DESC, orders.id DESC").Limit(limit).Find(&out).Error
	return out, err
}

// UpdateStatusGuard is a compare-and-swap on the current status; zero rows
// affected means the order moved (or never was) out from under the caller.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// CancelGuard cancels iff the current status is still one of from, stamping
// cancelled_at in the same statement.
func (r *OrderRepository) CancelGuard(tx *gorm.DB, orderID uint, from []string, now time.Time) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status IN ?", orderID, from).
		Updates(map[string]any{"status": entity.StatusCancelled, "cancelled_at": now})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) UpdatePaymentMethod(orderID uint, method string) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("payment_method", method).Error
}

func (r *OrderRepository) Delete(orderID uint) error {
	return r.DB.Select("Items").Delete(&entity.Order{Model: gorm.Model{ID: orderID}}).Error
}

// ---------------- Dashboard aggregates ----------------

func (r *OrderRepository) CountOrders(customerID uint, region string) (int64, error) {
	var n int64
	err := r.scoped(customerID, region).Count(&n).Error
	return n, err
}

func (r *OrderRepository) SumRevenue(customerID uint, region string) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.scoped(customerID, region).
		Where("orders.status IN ?", revenueStatuses).
		Select("SUM(orders.total_amount)").
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

type OrderSummary struct {
	ID             uint            `json:"id"`
	CustomerName   string          `json:"customerName"`
	RestaurantName string          `json:"restaurantName"`
	Status         string          `json:"status"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func (r *OrderRepository) RecentOrders(customerID uint, region string, limit int) ([]OrderSummary, error) {
	var out []OrderSummary
	err := r.scoped(customerID, region).
		Select("orders.id, u.first_name AS customer_name, rest.name AS restaurant_name, orders.status, orders.total_amount, orders.created_at").
		Joins("JOIN users u ON u.id = orders.customer_id").
		Joins("JOIN restaurants rest ON rest.id = orders.restaurant_id").
		Order("orders.created_at DESC, orders.id DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

type RestaurantOrderCount struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	OrderCount int64  `json:"orderCount"`
}

func (r *OrderRepository) TopRestaurants(customerID uint, region string, limit int) ([]RestaurantOrderCount, error) {
	var out []RestaurantOrderCount
	err := r.scoped(customerID, region).
		Select("rest.id, rest.name, COUNT(orders.id) AS order_count").
		Joins("JOIN restaurants rest ON rest.id = orders.restaurant_id").
		Group("rest.id, rest.name").
		Order("order_count DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) scoped(customerID uint, region string) *gorm.DB {
	q := r.DB.Model(&entity.Order{})
	if customerID != 0 {
		q = q.Where("orders.customer_id = ?", customerID)
	}
	if region != "" {
		q = q.Joins("JOIN restaurants reg ON reg.id = orders.restaurant_id").
			Where("reg.region = ?", region)
	}
	return q
}
