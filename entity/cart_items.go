package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `gorm:"uniqueIndex:idx_cart_menu_item;not null" json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_menu_item;not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity            int    `gorm:"not null" json:"quantity"`
	SpecialInstructions string `json:"specialInstructions"`
}

// Subtotal is menu price times quantity, derived from the current catalog
// price. Requires MenuItem preloaded.
func (ci *CartItem) Subtotal() decimal.Decimal {
	return ci.MenuItem.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
