package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

const (
	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentPayPal = "paypal"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCash, PaymentCard, PaymentPayPal:
		return true
	}
	return false
}

// Order is created only through checkout or payment completion. Its items are
// a price snapshot taken at that moment; status is the only lifecycle field
// that moves afterwards (plus payment method and the two timestamps).
type Order struct {
	gorm.Model
	Status              string          `gorm:"index;not null;default:pending" json:"status"`
	PaymentMethod       string          `gorm:"not null" json:"paymentMethod"`
	TotalAmount         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	SpecialInstructions string          `json:"specialInstructions"`
	Reference           string          `gorm:"uniqueIndex;not null" json:"reference"`

	CustomerID uint `gorm:"index;not null" json:"customerId"`
	Customer   User `json:"-"`

	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	PlacedAt    *time.Time `json:"placedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

func (o *Order) Terminal() bool {
	return o.Status == StatusDelivered || o.Status == StatusCancelled
}
