package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart is the single active cart of one customer, created lazily.
// The row survives checkout; only its items are cleared.
type Cart struct {
	gorm.Model
	CustomerID uint `gorm:"uniqueIndex;not null" json:"customerId"`
	Customer   User `json:"-"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// Total is derived on read, never persisted.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}
