package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/abdul-09/slooze-restaurant/entity"
	"github.com/abdul-09/slooze-restaurant/pkg/apperr"
	"github.com/abdul-09/slooze-restaurant/repository"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

// CartView is the snapshot mutating cart operations hand back: the lines plus
// the derived total, recomputed from current menu prices on every read.
type CartView struct {
	ID    uint              `json:"id"`
	Items []entity.CartItem `json:"items"`
	Total decimal.Decimal   `json:"total"`
}

// Get returns the customer's cart, creating an empty one on first access.
func (s *CartService) Get(customerID uint) (*CartView, error) {
	return s.snapshot(customerID)
}

func (s *CartService) AddItem(customerID, menuItemID uint, qty int, instructions string) (*CartView, error) {
	if qty <= 0 {
		return nil, apperr.New(apperr.InvalidArgument, "quantity must be positive")
	}

	item, err := s.MenuRepo.FindByID(menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "menu item not found")
		}
		return nil, err
	}

	cart, err := s.CartRepo.GetOrCreate(customerID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, cart.ID, item.ID, qty, instructions)
	})
	if err != nil {
		return nil, err
	}
	return s.snapshot(customerID)
}

func (s *CartService) UpdateQuantity(customerID, itemID uint, qty int) (*CartView, error) {
	if qty <= 0 {
		return nil, apperr.New(apperr.InvalidArgument, "quantity must be positive")
	}

	cart, err := s.CartRepo.GetOrCreate(customerID)
	if err != nil {
		return nil, err
	}

	var found bool
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		found, err = s.CartRepo.UpdateQty(tx, cart.ID, itemID, qty)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.New(apperr.NotFound, "cart item not found")
	}
	return s.snapshot(customerID)
}

func (s *CartService) RemoveItem(customerID, itemID uint) (*CartView, error) {
	cart, err := s.CartRepo.GetOrCreate(customerID)
	if err != nil {
		return nil, err
	}

	var found bool
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		found, err = s.CartRepo.RemoveItem(tx, cart.ID, itemID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.New(apperr.NotFound, "cart item not found")
	}
	return s.snapshot(customerID)
}

func (s *CartService) snapshot(customerID uint) (*CartView, error) {
	cart, err := s.CartRepo.GetWithItems(customerID)
	if err != nil {
		return nil, err
	}
	return &CartView{ID: cart.ID, Items: cart.Items, Total: cart.Total()}, nil
}
