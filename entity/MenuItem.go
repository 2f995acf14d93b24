package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"price"`
	ImageURL    string          `json:"imageUrl"`
	IsAvailable bool            `gorm:"index;default:true" json:"isAvailable"`

	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CategoryID uint     `gorm:"index;not null" json:"categoryId"`
	Category   Category `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
