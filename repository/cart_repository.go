package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/abdul-09/slooze-restaurant/entity"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// GetOrCreate returns the customer's cart, creating an empty one on first
// access. The unique index on customer_id keeps a racing second create from
// producing a duplicate; the loser re-reads.
func (r *CartRepository) GetOrCreate(customerID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("customer_id = ?", customerID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{CustomerID: customerID}
		if createErr := r.DB.Create(&c).Error; createErr != nil {
			if readErr := r.DB.Where("customer_id = ?", customerID).First(&c).Error; readErr != nil {
				return nil, createErr
			}
			return &c, nil
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetWithItems loads the cart and its lines with current menu prices.
func (r *CartRepository) GetWithItems(customerID uint) (*entity.Cart, error) {
	cart, err := r.GetOrCreate(customerID)
	if err != nil {
		return nil, err
	}
	err = r.DB.Preload("Items").Preload("Items.MenuItem").First(cart, cart.ID).Error
	return cart, err
}

// ItemsForUpdate re-reads the cart lines inside tx under a row lock. The
// checkout engine re-applies the empty-cart precondition on this result, so
// two concurrent checkouts of the same cart cannot both proceed.
func (r *CartRepository) ItemsForUpdate(tx *gorm.DB, cartID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("MenuItem").
		Where("cart_id = ?", cartID).
		Order("id").
		Find(&items).Error
	return items, err
}

func (r *CartRepository) FindItem(cartID, itemID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	if err := r.DB.Where("id = ? AND cart_id = ?", itemID, cartID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpsertItem merges into an existing (cart, menu_item) line — quantity added,
// instructions overwritten — or creates a new line.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID, menuItemID uint, qty int, instructions string) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).First(&exist).Error
	if err == nil {
		exist.Quantity += qty
		exist.SpecialInstructions = instructions
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	row := entity.CartItem{
		CartID:              cartID,
		MenuItemID:          menuItemID,
		Quantity:            qty,
		SpecialInstructions: instructions,
	}
	return tx.Create(&row).Error
}

// UpdateQty sets the quantity of one line; reports whether the line existed.
func (r *CartRepository) UpdateQty(tx *gorm.DB, cartID, itemID uint, qty int) (bool, error) {
	res := tx.Model(&entity.CartItem{}).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Update("quantity", qty)
	return res.RowsAffected > 0, res.Error
}

// RemoveItem deletes one line; reports whether the line existed. Cart lines
// are transient, so the delete is unscoped: a soft-deleted row would keep
// occupying the (cart_id, menu_item_id) unique index and block re-adding.
func (r *CartRepository) RemoveItem(tx *gorm.DB, cartID, itemID uint) (bool, error) {
	res := tx.Unscoped().Where("id = ? AND cart_id = ?", itemID, cartID).Delete(&entity.CartItem{})
	return res.RowsAffected > 0, res.Error
}

// ClearItems empties the cart; the cart row stays for reuse. Unscoped for the
// same reason as RemoveItem.
func (r *CartRepository) ClearItems(tx *gorm.DB, cartID uint) error {
	return tx.Unscoped().Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}
