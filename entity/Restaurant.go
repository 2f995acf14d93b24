package entity

import (
	"gorm.io/gorm"
)

// Restaurant regions exclude "global": only users can be global.
func ValidRestaurantRegion(region string) bool {
	return region == RegionIndia || region == RegionAmerica
}

type Restaurant struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	CuisineType string `json:"cuisineType"`
	Region      string `gorm:"index;not null" json:"region"`
	Rating      string `json:"rating"`
	ImageURL    string `json:"imageUrl"`
	IsActive    bool   `gorm:"index;default:true" json:"isActive"`

	CreatedByID *uint `json:"createdById"`
	CreatedBy   *User `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"-"`

	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
}
