package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/abdul-09/slooze-restaurant/entity"
	"github.com/abdul-09/slooze-restaurant/pkg/apperr"
	"github.com/abdul-09/slooze-restaurant/pkg/mailer"
	"github.com/abdul-09/slooze-restaurant/pkg/paypal"
	"github.com/abdul-09/slooze-restaurant/repository"
)

var oneHundred = decimal.NewFromInt(100)

type CheckoutService struct {
	DB        *gorm.DB
	CartRepo  *repository.CartRepository
	OrderRepo *repository.OrderRepository
	UserRepo  *repository.UserRepository
	Gateway   paypal.Gateway
	Mail      mailer.Sender
}

func NewCheckoutService(
	db *gorm.DB,
	cartRepo *repository.CartRepository,
	orderRepo *repository.OrderRepository,
	userRepo *repository.UserRepository,
	gateway paypal.Gateway,
	mail mailer.Sender,
) *CheckoutService {
	return &CheckoutService{
		DB: db, CartRepo: cartRepo, OrderRepo: orderRepo, UserRepo: userRepo,
		Gateway: gateway, Mail: mail,
	}
}

// Checkout converts the customer's cart into a pending order at current
// catalog prices, with no discount applied.
func (s *CheckoutService) Checkout(customerID uint, paymentMethod, instructions string) (*entity.Order, error) {
	return s.CheckoutWithDiscount(customerID, paymentMethod, instructions, decimal.Zero)
}

// CheckoutWithDiscount is the discounted variant: total = subtotal scaled by
// (100 - discountPercent) / 100, rounded to cents.
func (s *CheckoutService) CheckoutWithDiscount(customerID uint, paymentMethod, instructions string, discountPercent decimal.Decimal) (*entity.Order, error) {
	if !entity.ValidPaymentMethod(paymentMethod) {
		return nil, apperr.Newf(apperr.InvalidArgument, "unknown payment method %q", paymentMethod)
	}
	if discountPercent.IsNegative() || discountPercent.GreaterThan(oneHundred) {
		return nil, apperr.New(apperr.InvalidArgument, "discount must be between 0 and 100")
	}

	cart, err := s.CartRepo.GetOrCreate(customerID)
	if err != nil {
		return nil, err
	}

	var order *entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		items, err := s.CartRepo.ItemsForUpdate(tx, cart.ID)
		if err != nil {
			return err
		}
		// Re-checked under the row lock: a concurrent checkout that already
		// drained this cart makes the second attempt fail here.
		if len(items) == 0 {
			return apperr.New(apperr.FailedPrecondition, "cart is empty")
		}

		subtotal := lineSubtotal(items)
		total := subtotal.Mul(oneHundred.Sub(discountPercent)).Div(oneHundred).Round(2)

		order, err = s.createOrderFromCart(tx, cart.ID, customerID, items, orderParams{
			total:         total,
			status:        entity.StatusPending,
			paymentMethod: paymentMethod,
			instructions:  instructions,
			reference:     uuid.NewString(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notify(customerID, order)
	return order, nil
}

// CompletePayment is the gateway-completion entry: the authoritative total is
// what the gateway reports, but it must agree with the independently
// recomputed cart subtotal before anything persists.
func (s *CheckoutService) CompletePayment(ctx context.Context, customerID uint, gatewayOrderID string) (*entity.Order, error) {
	if gatewayOrderID == "" {
		return nil, apperr.New(apperr.InvalidArgument, "gateway order id is required")
	}

	gw, err := s.Gateway.GetOrder(ctx, gatewayOrderID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "payment gateway lookup failed", err)
	}
	if gw.Status != paypal.StatusCompleted {
		return nil, apperr.Newf(apperr.FailedPrecondition, "gateway order is %s, not completed", gw.Status)
	}

	cart, err := s.CartRepo.GetOrCreate(customerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var order *entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		items, err := s.CartRepo.ItemsForUpdate(tx, cart.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return apperr.New(apperr.FailedPrecondition, "cart is empty")
		}

		subtotal := lineSubtotal(items)
		if !gw.Amount.Equal(subtotal) {
			return apperr.Newf(apperr.PaymentMismatch,
				"gateway reported %s but cart total is %s", gw.Amount.StringFixed(2), subtotal.StringFixed(2))
		}

		order, err = s.createOrderFromCart(tx, cart.ID, customerID, items, orderParams{
			total:         gw.Amount,
			status:        entity.StatusConfirmed,
			paymentMethod: entity.PaymentPayPal,
			reference:     gatewayOrderID,
			placedAt:      &now,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notify(customerID, order)
	return order, nil
}

type orderParams struct {
	total         decimal.Decimal
	status        string
	paymentMethod string
	instructions  string
	reference     string
	placedAt      *time.Time
}

// createOrderFromCart is the single order-creation routine shared by both
// entry points: order row, line-item snapshot at current prices, cart lines
// cleared — all or nothing within the caller's transaction.
func (s *CheckoutService) createOrderFromCart(tx *gorm.DB, cartID, customerID uint, items []entity.CartItem, p orderParams) (*entity.Order, error) {
	// Single-restaurant-per-order: the cart's first line fixes the restaurant.
	restaurantID := items[0].MenuItem.RestaurantID

	order := &entity.Order{
		CustomerID:          customerID,
		RestaurantID:        restaurantID,
		Status:              p.status,
		PaymentMethod:       p.paymentMethod,
		TotalAmount:         p.total,
		SpecialInstructions: p.instructions,
		Reference:           p.reference,
		PlacedAt:            p.placedAt,
	}
	if err := s.OrderRepo.Create(tx, order); err != nil {
		return nil, err
	}

	for _, it := range items {
		// A menu item deleted between validation and copy aborts the whole
		// transaction; no partial order is ever visible.
		if it.MenuItem.ID == 0 {
			return nil, apperr.New(apperr.NotFound, "menu item no longer available")
		}
		oi := entity.OrderItem{
			OrderID:             order.ID,
			MenuItemID:          it.MenuItemID,
			Quantity:            it.Quantity,
			Price:               it.MenuItem.Price,
			SpecialInstructions: it.SpecialInstructions,
		}
		if err := s.OrderRepo.CreateItem(tx, &oi); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, oi)
	}

	if err := s.CartRepo.ClearItems(tx, cartID); err != nil {
		return nil, err
	}
	return order, nil
}

func lineSubtotal(items []entity.CartItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Subtotal())
	}
	return subtotal
}

// notify sends the confirmation mail outside the transaction, best effort.
func (s *CheckoutService) notify(customerID uint, order *entity.Order) {
	if s.Mail == nil || order == nil {
		return
	}
	user, err := s.UserRepo.FindByID(customerID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("order mail: lookup user %d: %v", customerID, err)
		}
		return
	}
	go func() {
		subject := fmt.Sprintf("Order #%d %s", order.ID, order.Status)
		body := fmt.Sprintf("Your order #%d (%s) totals %s.", order.ID, order.Reference, order.TotalAmount.StringFixed(2))
		if err := s.Mail.Send(user.Email, subject, body); err != nil {
			log.Printf("order mail: send to %s: %v", user.Email, err)
		}
	}()
}
